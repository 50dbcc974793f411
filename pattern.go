package xregexp

import "go.dw1.io/xregexp/native"

// Kind tells what a [Pattern] holds.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Pattern.
	KindInvalid Kind = iota
	// KindExtended is a [Regexp] with named groups.
	KindExtended
	// KindNative is a [native.Regexp].
	KindNative
	// KindText is plain text.
	KindText
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindExtended:
		return "extended"
	case KindNative:
		return "native"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Pattern is the first argument of the string-processing entry points.
type Pattern struct {
	kind   Kind
	ext    *Regexp
	native *native.Regexp
	text   string
}

// Extended wraps a Regexp. A nil re gives an invalid Pattern.
func Extended(re *Regexp) Pattern {
	if re == nil {
		return Pattern{}
	}

	return Pattern{kind: KindExtended, ext: re}
}

// Native wraps a native pattern. A nil re gives an invalid Pattern.
func Native(re *native.Regexp) Pattern {
	if re == nil {
		return Pattern{}
	}

	return Pattern{kind: KindNative, native: re}
}

// Text wraps plain text.
func Text(s string) Pattern {
	return Pattern{kind: KindText, text: s}
}

// PatternOf classifies v. *Regexp, *native.Regexp, string and Pattern values
// are recognised; anything else gives an invalid Pattern, which the entry
// points reject with [ErrInvalidArgument].
func PatternOf(v any) Pattern {
	switch p := v.(type) {
	case Pattern:
		return p
	case *Regexp:
		return Extended(p)
	case *native.Regexp:
		return Native(p)
	case string:
		return Text(p)
	default:
		return Pattern{}
	}
}

// Kind returns what p holds.
func (p Pattern) Kind() Kind {
	return p.kind
}
