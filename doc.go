// Package xregexp adds named capture groups to a positional-only regular
// expression engine.
//
// A pattern such as
//
//	(?<y>\d{4})-(?<m>\d{2})-(?<d>\d{2})
//
// is rewritten by package [translate] into a pattern with plain groups, and
// compiled by package [native]. [Regexp.Exec] then maps every group key back
// to its captured text in [Match.Names]:
//
//	re := xregexp.MustNew(`(?<y>\d{4})-(?<m>\d{2})`)
//	m := re.Exec("2024-05")
//	fmt.Println(m.Names["y"], m.Names["m"]) // 2024 05
//
// Groups that bind no name are keyed by ordinal ("0", "1", ...), so Names
// covers every capturing group.
//
// The string-processing entry points [Substitute], [SubstituteFunc],
// [MatchAgainst], [SplitOn] and [SearchIn] accept a [Pattern], which holds an
// extended Regexp, a [native.Regexp] or plain text. Replacement templates may
// use $<name> to refer to a named group.
//
// A Regexp (like a native one) carries a replay cursor for the global flag
// and must not be shared between goroutines.
package xregexp
