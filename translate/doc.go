// Package translate rewrites patterns that use named capture groups into
// patterns a positional-only engine can compile.
//
// The extended syntax understood by [Translate] is:
//
//	(?<name>...)   named capturing group (also (?P<name>...))
//	(?<name>)      named group without a body, rewritten to match one or
//	               more arbitrary characters
//	(?&name)       capturing reference to the sub-pattern of group name
//	(?:&name)      non-capturing reference to the sub-pattern of group name
//
// References are resolved by copying the referenced group's pattern text to
// the reference site, so they match the same rule again rather than the same
// text. Every capturing group of the rewritten pattern is reachable through
// [Result.Groups], either by name or by an ordinal key.
//
// The scanner only tracks parentheses, escapes and character classes. It does
// not validate the rest of the grammar; malformed patterns are rejected later
// by the engine that compiles [Result.Source].
package translate
