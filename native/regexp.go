package native

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled positional-only regular expression that delegates to
// either coregex (fast, RE2-compatible) or regexp2 (backtracking) depending on
// the pattern features and flags detected at compile time.
type Regexp struct {
	pattern   string
	flags     Flags
	core      *coregex.Regex
	pcre      *regexp2.Regexp
	lastIndex int
}

// Compile parses a regular expression and its flags and returns a compiled
// Regexp. Patterns that require backtracking-only features (detected by
// needsPCRE) and global patterns are compiled with regexp2; everything else
// uses coregex for speed.
func Compile(pattern, flags string) (*Regexp, error) {
	f, err := ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	// coregex has no way to start a search at an offset while keeping the
	// text before it as context, which the replay cursor needs.
	if f.Global || needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, f.options())
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, flags: f, pcre: re}, nil
	}

	re, err := coregex.Compile(f.inline() + pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, flags: f, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern, flags string) *Regexp {
	re, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}
	return re
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// Source returns the pattern used to compile the Regexp, without flags.
func (r *Regexp) Source() string {
	return r.pattern
}

// Flags returns the flags of the Regexp in canonical order.
func (r *Regexp) Flags() string {
	return r.flags.String()
}

// Global reports whether the g flag was set at compile time.
func (r *Regexp) Global() bool { return r.flags.Global }

// IgnoreCase reports whether the i flag was set at compile time.
func (r *Regexp) IgnoreCase() bool { return r.flags.IgnoreCase }

// Multiline reports whether the m flag was set at compile time.
func (r *Regexp) Multiline() bool { return r.flags.Multiline }

// LastIndex returns the byte offset at which the next global match attempt
// starts.
func (r *Regexp) LastIndex() int {
	return r.lastIndex
}

// SetLastIndex moves the replay cursor. It only has an effect on global
// patterns.
func (r *Regexp) SetLastIndex(i int) {
	r.lastIndex = i
}

// String returns the pattern in /source/flags form.
func (r *Regexp) String() string {
	return "/" + r.pattern + "/" + r.flags.String()
}

// Exec returns the byte offsets of the leftmost match and its submatches, in
// the same layout as regexp.FindStringSubmatchIndex. Groups that did not
// participate are reported as -1. Exec returns nil when there is no match.
//
// For global patterns the search starts at LastIndex; a match moves the
// cursor to its end and a failure resets it to 0.
func (r *Regexp) Exec(s string) []int {
	if !r.flags.Global {
		return r.find(s, 0)
	}

	at, ok := r.cursor(s)
	if !ok {
		return nil
	}

	loc := r.find(s, at)
	r.advance(loc)

	return loc
}

// Test reports whether s contains a match. It follows the cursor rules of
// Exec but skips submatch extraction.
func (r *Regexp) Test(s string) bool {
	if !r.flags.Global {
		if r.core != nil {
			return r.core.MatchString(s)
		}

		matched, err := r.pcre.MatchString(s)
		return err == nil && matched
	}

	at, ok := r.cursor(s)
	if !ok {
		return false
	}

	loc := r.findIndex(s, at)
	r.advance(loc)

	return loc != nil
}

// Replace returns a copy of s with the first match (every match for global
// patterns) replaced by template. The template may refer to submatches with
// $n or ${n}; $$ is a literal dollar sign. Global replacement always starts
// at the beginning of s and resets the cursor.
func (r *Regexp) Replace(s, template string) string {
	if r.core != nil {
		loc := r.core.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}

		dst := make([]byte, 0, len(s)+len(template))
		dst = append(dst, s[:loc[0]]...)
		dst = expand(dst, template, s, loc)
		dst = append(dst, s[loc[1]:]...)

		return string(dst)
	}

	replaced, err := r.pcre.Replace(s, template, -1, r.replaceCount())
	if err != nil {
		return s
	}

	return replaced
}

// ReplaceFunc is like Replace but the replacement text is returned by fn,
// which receives the submatch offsets of each match (see Exec).
func (r *Regexp) ReplaceFunc(s string, fn func(loc []int) string) string {
	if r.core != nil {
		loc := r.core.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}

		return s[:loc[0]] + fn(loc) + s[loc[1]:]
	}

	replaced, err := r.pcre.ReplaceFunc(s, func(m regexp2.Match) string {
		return fn(groupsToIndexes(s, m.Groups()))
	}, -1, r.replaceCount())
	if err != nil {
		return s
	}

	return replaced
}

// Split slices s into substrings separated by the Regexp. It mirrors
// regexp.Split: n > 0 returns at most n substrings, n == 0 returns nil and
// n < 0 returns all of them. The cursor is ignored.
func (r *Regexp) Split(s string, n int) []string {
	if r.core != nil {
		return r.core.Split(s, n)
	}

	if n == 0 {
		return nil
	}

	parts := make([]string, 0)
	last := 0
	count := 0

	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && count+1 >= n {
			break
		}

		start, end := runeRangeToByte(s, m.Index, m.Length)
		parts = append(parts, s[last:start])
		last = end
		count++

		m, err = r.pcre.FindNextMatch(m)
	}

	parts = append(parts, s[last:])
	return parts
}

// Search returns the byte offset of the leftmost match in s, or -1. The
// cursor is neither read nor written.
func (r *Regexp) Search(s string) int {
	loc := r.findIndex(s, 0)
	if loc == nil {
		return -1
	}

	return loc[0]
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	max := 0
	for _, v := range r.pcre.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}

	return max
}

// cursor validates the replay cursor against s. A cursor past the end of the
// input fails the match and resets to 0.
func (r *Regexp) cursor(s string) (int, bool) {
	at := max(r.lastIndex, 0)
	if at > len(s) {
		r.lastIndex = 0
		return 0, false
	}

	return at, true
}

func (r *Regexp) advance(loc []int) {
	if loc == nil {
		r.lastIndex = 0
		return
	}

	r.lastIndex = loc[1]
}

// replaceCount returns the regexp2 replacement count. Global replacement
// resets the cursor, as a full scan always starts over.
func (r *Regexp) replaceCount() int {
	if r.flags.Global {
		r.lastIndex = 0
		return -1
	}

	return 1
}

// find returns submatch offsets of the leftmost match starting at byte offset
// at. Only global patterns search from a non-zero offset, and those are
// always backed by regexp2.
func (r *Regexp) find(s string, at int) []int {
	if r.core != nil {
		return r.core.FindStringSubmatchIndex(s)
	}

	m, err := r.pcre.FindStringMatchStartingAt(s, byteToRuneOffset(s, at))
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(s, m.Groups())
}

func (r *Regexp) findIndex(s string, at int) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.pcre.FindStringMatchStartingAt(s, byteToRuneOffset(s, at))
	if err != nil || m == nil {
		return nil
	}

	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}
}
