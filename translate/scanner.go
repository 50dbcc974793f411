package translate

import "slices"

type tokenKind uint8

const (
	literal tokenKind = iota
	open
	closing
)

type token struct {
	kind tokenKind
	text string
}

// split cuts pattern at every unescaped parenthesis that is not inside a
// character class. Tokens alternate between literals and delimiters, so an
// open token is always followed by a literal, possibly empty.
func split(pattern string) []token {
	toks := make([]token, 0, 8)
	start := 0
	inClass := false

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		switch {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// a ']' right after '[' or '[^' is a class member
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				i++
			}
		case c == '(' || c == ')':
			kind := open
			if c == ')' {
				kind = closing
			}

			toks = append(toks,
				token{kind: literal, text: pattern[start:i]},
				token{kind: kind, text: pattern[i : i+1]},
			)
			start = i + 1
		}
	}

	return append(toks, token{kind: literal, text: pattern[start:]})
}

// frame is an open group.
type frame struct {
	// open is the offset of the group's '(' in the output.
	open int
	// body is the offset where the group's pattern text starts.
	body int
	// name is set when the group binds a name.
	name string
	// capture reports whether the group was counted.
	capture bool
	// unresolved marks a reference to an unknown name.
	unresolved bool
}

type scanner struct {
	res     *Result
	out     []byte
	stack   []frame
	index   int
	ordinal int
}

func (s *scanner) scan(toks []token) {
	for i, tok := range toks {
		switch tok.kind {
		case open:
			s.stack = append(s.stack, frame{open: len(s.out), body: len(s.out) + 1})
			s.out = append(s.out, '(')
		case closing:
			s.close()
		default:
			if i > 0 && toks[i-1].kind == open {
				closesNext := i+1 < len(toks) && toks[i+1].kind == closing
				s.opener(tok.text, closesNext)
				continue
			}

			s.out = append(s.out, tok.text...)
		}
	}
}

// opener handles the literal right after an opening parenthesis.
func (s *scanner) opener(seg string, closesNext bool) {
	f := &s.stack[len(s.stack)-1]

	if name, rest, ok := namedGroup(seg); ok {
		s.index++
		if _, seen := s.res.Groups[name]; seen {
			s.bindOrdinal()
		} else {
			s.bind(name)
			f.name = name
		}
		f.capture = true

		if rest == "" && closesNext {
			rest = anyPlaceholder
		}
		s.out = append(s.out, rest...)

		return
	}

	if name, rest, capture, ok := backreference(seg); ok {
		if capture {
			s.index++
			s.bindOrdinal()
			f.capture = true
		} else {
			s.out = append(s.out, "?:"...)
			f.body = len(s.out)
		}

		sub, known := s.res.Named[name]
		if known {
			s.out = append(s.out, sub...)
			s.countGroups(sub)
		}
		f.unresolved = !known
		s.out = append(s.out, rest...)

		return
	}

	if capturing(seg) {
		s.index++
		s.bindOrdinal()
		f.capture = true
	}
	s.out = append(s.out, seg...)
}

func (s *scanner) close() {
	if len(s.stack) == 0 {
		s.out = append(s.out, ')')
		return
	}

	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	// A reference to an unknown name leaves an empty group behind; drop it
	// along with its key so positions stay aligned.
	if f.unresolved && len(s.out) == f.body {
		s.out = s.out[:f.open]
		if f.capture {
			s.unbindLast()
		}

		return
	}

	if f.name != "" {
		s.res.Named[f.name] = string(s.out[f.body:])
	}
	s.out = append(s.out, ')')
}

// countGroups assigns ordinal keys to the capturing groups of a spliced
// sub-pattern. Its named groups were already stripped of their markers.
func (s *scanner) countGroups(sub string) {
	toks := split(sub)
	for i, tok := range toks {
		if tok.kind == literal && i > 0 && toks[i-1].kind == open && capturing(tok.text) {
			s.index++
			s.bindOrdinal()
		}
	}
}

func (s *scanner) bind(key string) {
	s.res.Groups[key] = s.index
	s.res.Keys = append(s.res.Keys, key)
}

func (s *scanner) bindOrdinal() {
	s.bind(Ordinal(s.ordinal))
	s.ordinal++
}

func (s *scanner) unbindLast() {
	last := s.res.Keys[len(s.res.Keys)-1]
	delete(s.res.Groups, last)
	s.res.Keys = slices.Delete(s.res.Keys, len(s.res.Keys)-1, len(s.res.Keys))
	s.index--
	s.ordinal--
}
