package native

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// pcreTokens lists constructs that coregex (RE2 syntax) rejects but regexp2
// executes.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreTokens = []string{
	// Lookahead/lookbehind assertions
	"(?=", "(?!", "(?<=", "(?<!",
	// Atomic groups
	"(?>",
	// Conditional group
	"(?(",
	// Comment
	"(?#",
	// Recursion/subroutine calls
	"(?R)", "(?P>", "(?&",
	// Named backreferences
	`\k<`, `\k'`, `\k{`, "(?P=",
	// Anchors (Go supports ^ and $ only)
	`\A`, `\Z`, `\z`, `\G`,
	// Escapes RE2 does not know
	`\u`, `\c`, `\h`, `\H`, `\R`, `\X`, `\K`, `\o{`,
}

// needsPCRE checks if the pattern contains constructs that only the
// backtracking engine can execute.
func needsPCRE(pattern string) bool {
	for _, v := range pcreTokens {
		if strings.Contains(pattern, v) {
			return true
		}
	}

	// Check for backreferences: \1, \2, ... (Go does not support these)
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\\' {
			if !escaped && i+1 < len(pattern) {
				next := pattern[i+1]
				if next >= '1' && next <= '9' {
					return true
				}
			}
			escaped = !escaped
		} else {
			escaped = false
		}
	}

	return false
}

// groupsToIndexes converts regexp2 groups (rune based) into byte offset
// pairs. Groups without captures did not participate and map to -1.
func groupsToIndexes(s string, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}

		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}
	return out
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}

// byteToRuneOffset converts a byte offset into a rune index. An offset inside
// a multi-byte sequence counts the partial rune.
func byteToRuneOffset(s string, byteIndex int) int {
	if byteIndex <= 0 {
		return 0
	}
	if byteIndex >= len(s) {
		return utf8.RuneCountInString(s)
	}

	return utf8.RuneCountInString(s[:byteIndex])
}
