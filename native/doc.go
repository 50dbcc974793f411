// Package native is the positional-only regular expression engine that the
// named-group layer compiles its rewritten patterns into.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible engine)
// when possible. When the pattern requires backtracking features that
// coregex cannot execute (lookaround, backreferences, atomic groups...), or
// when the global flag asks for a replay cursor, the package falls back to
// [regexp2].
//
// Flags use the JavaScript alphabet: g (global), i (ignore case) and
// m (multiline). A [Regexp] carries a replay cursor ([Regexp.LastIndex]) that
// [Regexp.Exec] and [Regexp.Test] advance under the global flag. The cursor
// makes a Regexp unsafe for concurrent use.
package native
