package translate

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.dw1.io/xregexp/cast"
)

// ErrInvalidPattern indicates that a pattern argument could not be turned
// into pattern text.
var ErrInvalidPattern = errors.New("invalid pattern")

// Compiled is implemented by compiled patterns that can be translated again.
// Source must return the pattern as the caller wrote it.
type Compiled interface {
	Source() string
	Flags() string
}

// Result is the outcome of a translation.
type Result struct {
	// Source is the rewritten, positional-only pattern.
	Source string `json:"source"`
	// Flags are the flags passed along with the pattern, verbatim.
	Flags string `json:"flags"`
	// Original is the pattern before rewriting.
	Original string `json:"original"`
	// Groups maps group keys to 1-based capture positions in Source. A key
	// is either a group name or an ordinal key (see Ordinal).
	Groups map[string]int `json:"groups"`
	// Named maps each bound name to the rewritten text of its group.
	Named map[string]string `json:"named"`
	// Keys lists the keys of Groups by ascending capture position.
	Keys []string `json:"keys"`
}

// Ordinal returns the key under which the n-th (0-based) capturing group
// that did not bind a name is recorded.
func Ordinal(n int) string {
	return strconv.Itoa(n)
}

// IsOrdinal reports whether key is an ordinal key rather than a name.
func IsOrdinal(key string) bool {
	return key != "" && key[0] >= '0' && key[0] <= '9'
}

// NumGroups returns the number of capturing groups in the rewritten pattern.
func (r *Result) NumGroups() int {
	return len(r.Keys)
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	c := *r
	c.Groups = maps.Clone(r.Groups)
	c.Named = maps.Clone(r.Named)
	c.Keys = slices.Clone(r.Keys)

	return &c
}

// Translate rewrites pattern into a positional-only pattern.
//
// A [Compiled] pattern contributes its source, and its flags when no flags
// are given. Any other value is coerced to text. Several flags arguments are
// concatenated. Translate never validates the pattern grammar; it only fails
// when pattern cannot be coerced to text.
func Translate(pattern any, flags ...string) (*Result, error) {
	var src, fl string

	switch p := pattern.(type) {
	case Compiled:
		src, fl = p.Source(), p.Flags()
	default:
		text, err := cast.Text(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		src = text
	}

	if len(flags) > 0 {
		fl = strings.Join(flags, "")
	}

	res := &Result{
		Flags:    fl,
		Original: src,
		Groups:   make(map[string]int),
		Named:    make(map[string]string),
	}

	s := scanner{res: res, out: make([]byte, 0, len(src)+8)}
	s.scan(split(src))
	res.Source = string(s.out)

	return res, nil
}

// MustTranslate is like Translate but panics on error.
func MustTranslate(pattern any, flags ...string) *Result {
	res, err := Translate(pattern, flags...)
	if err != nil {
		panic(err)
	}

	return res
}
