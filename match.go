package xregexp

import "go.dw1.io/xregexp/json"

// Match is a successful match.
type Match struct {
	// Input is the text that was searched.
	Input string
	// Index is the byte offset of the match in Input.
	Index int
	// Names maps every group key of the pattern to its captured text.
	// Groups that did not participate map to "", the same as an empty
	// capture; Named tells the two apart.
	Names map[string]string

	loc    []int
	groups map[string]int
}

func newMatch(input string, loc []int, groups map[string]int) *Match {
	m := &Match{Input: input, Index: loc[0], loc: loc, groups: groups}

	if groups != nil {
		m.Names = make(map[string]string, len(groups))
		for key, i := range groups {
			m.Names[key], _ = m.Group(i)
		}
	}

	return m
}

// String returns the matched text.
func (m *Match) String() string {
	return m.Input[m.loc[0]:m.loc[1]]
}

// End returns the byte offset just past the match.
func (m *Match) End() int {
	return m.loc[1]
}

// Len returns the number of entries of Submatches: the whole match plus one
// per capturing group.
func (m *Match) Len() int {
	return len(m.loc) / 2
}

// Group returns the text captured by group i; 0 is the whole match. The
// boolean is false when the group did not participate or does not exist.
func (m *Match) Group(i int) (string, bool) {
	if i < 0 || 2*i+1 >= len(m.loc) || m.loc[2*i] < 0 {
		return "", false
	}

	return m.Input[m.loc[2*i]:m.loc[2*i+1]], true
}

// Named is like Group but takes a group key.
func (m *Match) Named(key string) (string, bool) {
	i, ok := m.groups[key]
	if !ok {
		return "", false
	}

	return m.Group(i)
}

// Submatches returns the whole match followed by every capture, positionally.
func (m *Match) Submatches() []string {
	out := make([]string, m.Len())
	for i := range out {
		out[i], _ = m.Group(i)
	}

	return out
}

// SubmatchIndex returns the byte offset pairs of the match and its groups, in
// the layout of regexp.FindStringSubmatchIndex.
func (m *Match) SubmatchIndex() []int {
	return append([]int(nil), m.loc...)
}

type matchJSON struct {
	Index    int                `json:"index"`
	Match    string             `json:"match"`
	Captures []*string          `json:"captures"`
	Names    map[string]*string `json:"names,omitempty"`
}

// MarshalJSON encodes the match with its captures; groups that did not
// participate are null.
func (m *Match) MarshalJSON() ([]byte, error) {
	v := matchJSON{
		Index:    m.Index,
		Match:    m.String(),
		Captures: make([]*string, 0, m.Len()-1),
	}

	for i := 1; i < m.Len(); i++ {
		v.Captures = append(v.Captures, capture(m.Group(i)))
	}

	if m.groups != nil {
		v.Names = make(map[string]*string, len(m.groups))
		for key := range m.groups {
			v.Names[key] = capture(m.Named(key))
		}
	}

	return json.Marshal(v)
}

func capture(s string, ok bool) *string {
	if !ok {
		return nil
	}

	return &s
}
