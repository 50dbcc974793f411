package native

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrInvalidFlags indicates that a flag string contains an unknown or a
// repeated flag.
var ErrInvalidFlags = errors.New("invalid regular expression flags")

// Flags is the parsed form of a flag string.
type Flags struct {
	Global     bool
	IgnoreCase bool
	Multiline  bool
}

// ParseFlags parses a flag string made of g, i and m, in any order.
func ParseFlags(s string) (Flags, error) {
	var f Flags

	for _, c := range s {
		var dst *bool

		switch c {
		case 'g':
			dst = &f.Global
		case 'i':
			dst = &f.IgnoreCase
		case 'm':
			dst = &f.Multiline
		default:
			return Flags{}, fmt.Errorf("%w: %q", ErrInvalidFlags, s)
		}

		if *dst {
			return Flags{}, fmt.Errorf("%w: %q", ErrInvalidFlags, s)
		}
		*dst = true
	}

	return f, nil
}

// String returns the flags in canonical order.
func (f Flags) String() string {
	var b strings.Builder
	if f.Global {
		b.WriteByte('g')
	}
	if f.IgnoreCase {
		b.WriteByte('i')
	}
	if f.Multiline {
		b.WriteByte('m')
	}

	return b.String()
}

// inline returns the RE2 inline flag group for f, or "" when none applies.
func (f Flags) inline() string {
	if !f.IgnoreCase && !f.Multiline {
		return ""
	}

	s := "(?"
	if f.IgnoreCase {
		s += "i"
	}
	if f.Multiline {
		s += "m"
	}

	return s + ")"
}

// options returns the regexp2 options for f. RE2 keeps regexp2 in line with
// coregex: ASCII \d, \w and \s, and $ only at the end of the input.
func (f Flags) options() regexp2.RegexOptions {
	var opts regexp2.RegexOptions = regexp2.RE2
	if f.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if f.Multiline {
		opts |= regexp2.Multiline
	}

	return opts
}
