package translate

import "github.com/coregx/coregex"

// anyPlaceholder replaces the body of a named group written without one, so
// the group never matches the empty string.
const anyPlaceholder = `[\s\S]+`

// NamePattern is the shape of a group name.
const NamePattern = `[A-Za-z_$][A-Za-z0-9_$]{0,50}`

var (
	groupMarker   = coregex.MustCompile(`^\?P?<(` + NamePattern + `)>`)
	backrefMarker = coregex.MustCompile(`^\?(:?)&(` + NamePattern + `)`)
)

// namedGroup matches a segment of the form ?<name>rest.
func namedGroup(seg string) (name, rest string, ok bool) {
	loc := groupMarker.FindStringSubmatchIndex(seg)
	if loc == nil {
		return "", "", false
	}

	return seg[loc[2]:loc[3]], seg[loc[1]:], true
}

// backreference matches a segment of the form ?&name or ?:&name. capturing
// is false for the ?:& form.
func backreference(seg string) (name, rest string, capturing, ok bool) {
	loc := backrefMarker.FindStringSubmatchIndex(seg)
	if loc == nil {
		return "", "", false, false
	}

	return seg[loc[4]:loc[5]], seg[loc[1]:], loc[3] == loc[2], true
}

// capturing reports whether the segment that follows an opening parenthesis
// starts a plain capturing group. Every ?-prefixed form (non-capturing
// groups, lookaround, inline flags, atomic groups...) is left to the caller
// or treated as non-capturing.
func capturing(seg string) bool {
	return len(seg) == 0 || seg[0] != '?'
}
