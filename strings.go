package xregexp

import (
	"strconv"
	"strings"

	"github.com/coregx/coregex"

	"go.dw1.io/xregexp/native"
	"go.dw1.io/xregexp/translate"
)

var placeholder = coregex.MustCompile(`\$<(` + translate.NamePattern + `)>`)

// Substitute returns a copy of s with the first match of p (every match for
// global patterns) replaced by template.
//
// For an extended pattern every $<name> in template is first rewritten to the
// position of that group; a name the pattern does not know becomes the empty
// string. The template then follows the native syntax ($n, ${n}, $$). Text
// patterns replace their first literal occurrence.
func Substitute(s string, p Pattern, template string) (string, error) {
	switch p.kind {
	case KindExtended:
		return p.ext.native.Replace(s, p.ext.expandNames(template)), nil
	case KindNative:
		return p.native.Replace(s, template), nil
	case KindText:
		re, err := literal(p.text)
		if err != nil {
			return "", err
		}
		return re.Replace(s, template), nil
	default:
		return "", invalidArgument("replace")
	}
}

// SubstituteFunc is like Substitute but the replacement text is returned by
// fn. For extended patterns the match passed to fn has Names filled in.
func SubstituteFunc(s string, p Pattern, fn func(*Match) string) (string, error) {
	var (
		re     *native.Regexp
		groups map[string]int
	)

	switch p.kind {
	case KindExtended:
		re, groups = p.ext.native, p.ext.res.Groups
	case KindNative:
		re = p.native
	case KindText:
		var err error
		if re, err = literal(p.text); err != nil {
			return "", err
		}
	default:
		return "", invalidArgument("replace")
	}

	return re.ReplaceFunc(s, func(loc []int) string {
		return fn(newMatch(s, loc, groups))
	}), nil
}

// MatchAgainst returns the leftmost match of p in s, or nil. Extended and
// native patterns follow their own cursor rules. Text is compiled as an
// extended pattern without flags.
func MatchAgainst(s string, p Pattern) (*Match, error) {
	switch p.kind {
	case KindExtended:
		return p.ext.Exec(s), nil
	case KindNative:
		loc := p.native.Exec(s)
		if loc == nil {
			return nil, nil
		}
		return newMatch(s, loc, nil), nil
	case KindText:
		re, err := Cached(p.text, "")
		if err != nil {
			return nil, err
		}
		return re.Exec(s), nil
	default:
		return nil, invalidArgument("match")
	}
}

// SplitOn slices s around the matches of p, with the semantics of
// regexp.Split for n. Names play no part in splitting, so extended patterns
// split with their native pattern. Text splits on its literal occurrences.
func SplitOn(s string, p Pattern, n int) ([]string, error) {
	switch p.kind {
	case KindExtended:
		return p.ext.native.Split(s, n), nil
	case KindNative:
		return p.native.Split(s, n), nil
	case KindText:
		re, err := literal(p.text)
		if err != nil {
			return nil, err
		}
		return re.Split(s, n), nil
	default:
		return nil, invalidArgument("split")
	}
}

// SearchIn returns the byte offset of the first match of p in s, or -1. The
// replay cursor is ignored. Text is compiled as an extended pattern without
// flags.
func SearchIn(s string, p Pattern) (int, error) {
	switch p.kind {
	case KindExtended:
		return p.ext.native.Search(s), nil
	case KindNative:
		return p.native.Search(s), nil
	case KindText:
		re, err := Cached(p.text, "")
		if err != nil {
			return 0, err
		}
		return re.native.Search(s), nil
	default:
		return 0, invalidArgument("search")
	}
}

// expandNames rewrites $<name> placeholders into ${n}. A placeholder preceded
// by an odd number of dollar signs is escaped and kept.
func (r *Regexp) expandNames(template string) string {
	locs := placeholder.FindAllStringSubmatchIndex(template, -1)
	if len(locs) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	last := 0
	for _, loc := range locs {
		if escaped(template, loc[0]) {
			continue
		}

		b.WriteString(template[last:loc[0]])
		if i, ok := r.res.Groups[template[loc[2]:loc[3]]]; ok {
			b.WriteString("${")
			b.WriteString(strconv.Itoa(i))
			b.WriteByte('}')
		}
		last = loc[1]
	}
	b.WriteString(template[last:])

	return b.String()
}

func escaped(template string, i int) bool {
	n := 0
	for i > 0 && template[i-1] == '$' {
		n++
		i--
	}

	return n%2 == 1
}

func literal(text string) (*native.Regexp, error) {
	return native.Compile(native.QuoteMeta(text), "")
}
