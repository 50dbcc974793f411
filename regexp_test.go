package xregexp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.dw1.io/xregexp/native"
	"go.dw1.io/xregexp/translate"
)

func TestExecNamedDate(t *testing.T) {
	re := MustNew(`(?<y>\d{4})-(?<m>\d{2})-(?<d>\d{2})`)

	m := re.Exec("2024-05-01")
	if m == nil {
		t.Fatalf("Exec: expected a match")
	}

	want := map[string]string{"y": "2024", "m": "05", "d": "01"}
	if diff := cmp.Diff(want, m.Names); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}

	wantSub := []string{"2024-05-01", "2024", "05", "01"}
	if diff := cmp.Diff(wantSub, m.Submatches()); diff != "" {
		t.Fatalf("Submatches mismatch (-want +got):\n%s", diff)
	}

	if m.Index != 0 || m.End() != 10 || m.String() != "2024-05-01" {
		t.Fatalf("match bounds: index=%d end=%d text=%q", m.Index, m.End(), m.String())
	}
}

func TestGroupKeysCoverEveryCapture(t *testing.T) {
	re := MustNew(`(?<a>x)(y)(?:z)(?<b>w)(v)`)

	if re.NumSubexp() != 4 || re.Native().NumSubexp() != 4 {
		t.Fatalf("NumSubexp: adapter=%d native=%d", re.NumSubexp(), re.Native().NumSubexp())
	}

	want := []string{"a", "0", "b", "1"}
	if diff := cmp.Diff(want, re.Keys()); diff != "" {
		t.Fatalf("Keys mismatch (-want +got):\n%s", diff)
	}

	for i, key := range re.Keys() {
		if got := re.SubexpIndex(key); got != i+1 {
			t.Fatalf("SubexpIndex(%q) = %d, want %d", key, got, i+1)
		}
	}
	if re.SubexpIndex("missing") != -1 {
		t.Fatalf("SubexpIndex(missing): expected -1")
	}

	m := re.Exec("xyzwv")
	wantNames := map[string]string{"a": "x", "0": "y", "b": "w", "1": "v"}
	if diff := cmp.Diff(wantNames, m.Names); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyNamedGroupCapturesSomething(t *testing.T) {
	re := MustNew(`(?<tag>)`)

	m := re.Exec("x")
	if m == nil {
		t.Fatalf("Exec: expected a match")
	}
	if got := m.Names["tag"]; len(got) == 0 {
		t.Fatalf("Names[tag] is empty")
	}

	if re.Test("") {
		t.Fatalf("Test(\"\"): an empty named group must not match zero-width")
	}
}

func TestNamedBackreferenceIsSubstitution(t *testing.T) {
	re := MustNew(`^(?<w>[a-z]+)-(?:&w)$`)

	if !re.Test("ab-ab") {
		t.Fatalf("Test(ab-ab): expected a match")
	}

	// The reference repeats the rule [a-z]+, not the captured text.
	if !re.Test("ab-cd") {
		t.Fatalf("Test(ab-cd): expected a match")
	}

	if re.Test("ab-12") {
		t.Fatalf("Test(ab-12): expected no match")
	}
}

func TestDuplicateNameFallsBackToOrdinal(t *testing.T) {
	re := MustNew(`(?<g>a)(?<g>b)`)

	m := re.Exec("ab")
	if m.Names["g"] != "a" {
		t.Fatalf("Names[g] = %q, want %q", m.Names["g"], "a")
	}
	if got := m.Names[translate.Ordinal(0)]; got != "b" {
		t.Fatalf("Names[0] = %q, want %q", got, "b")
	}
}

func TestNonParticipatingGroups(t *testing.T) {
	re := MustNew(`(?<a>x)|(?<b>y)`)

	m := re.Exec("y")
	if _, ok := m.Named("a"); ok {
		t.Fatalf("Named(a): expected non-participating")
	}
	if v, ok := m.Names["a"]; !ok || v != "" {
		t.Fatalf("Names[a] = %q (present=%v), want empty and present", v, ok)
	}
	if v, ok := m.Named("b"); !ok || v != "y" {
		t.Fatalf("Named(b) = %q, %v", v, ok)
	}
	if _, ok := m.Named("missing"); ok {
		t.Fatalf("Named(missing): expected false")
	}
	if _, ok := m.Group(9); ok {
		t.Fatalf("Group(9): expected false")
	}
}

func TestBracketFirstInClassKeepsPositions(t *testing.T) {
	re := MustNew(`[]()](?<v>b)`)

	if got := re.NumSubexp(); got != re.Native().NumSubexp() {
		t.Fatalf("NumSubexp: translated %d, native %d", got, re.Native().NumSubexp())
	}

	m := re.Exec("(b")
	if m == nil {
		t.Fatalf("Exec: expected match")
	}
	if v, ok := m.Named("v"); !ok || v != "b" {
		t.Fatalf("Named(v) = %q, %v", v, ok)
	}
}

func TestNonParticipatingVersusEmptyCapture(t *testing.T) {
	re := MustNew(`(?<a>x)?(?<b>y*)`)

	m := re.Exec("")
	if m == nil {
		t.Fatalf("Exec: expected match")
	}
	if m.Names["a"] != "" || m.Names["b"] != "" {
		t.Fatalf("Names = %v, want both empty", m.Names)
	}
	if _, ok := m.Named("a"); ok {
		t.Fatalf("Named(a): expected non-participating")
	}
	if v, ok := m.Named("b"); !ok || v != "" {
		t.Fatalf("Named(b) = %q, %v, want empty capture", v, ok)
	}
}

func TestTestDoesNotAffectExec(t *testing.T) {
	re := MustNew(`(?<n>\d)`)

	if !re.Test("a1b2") {
		t.Fatalf("Test: expected a match")
	}

	m := re.Exec("a1b2")
	if m.Index != 1 || m.Names["n"] != "1" {
		t.Fatalf("Exec after Test: index=%d n=%q", m.Index, m.Names["n"])
	}
	if re.LastIndex() != 0 {
		t.Fatalf("LastIndex non-global: got %d", re.LastIndex())
	}
}

func TestExecGlobalCursor(t *testing.T) {
	re := MustNew(`(?<n>\d)`, "g")
	input := "1 2"

	if m := re.Exec(input); m == nil || m.Names["n"] != "1" || re.LastIndex() != 1 {
		t.Fatalf("first Exec: %v lastIndex=%d", m, re.LastIndex())
	}
	if m := re.Exec(input); m == nil || m.Names["n"] != "2" || re.LastIndex() != 3 {
		t.Fatalf("second Exec: %v lastIndex=%d", m, re.LastIndex())
	}
	if m := re.Exec(input); m != nil || re.LastIndex() != 0 {
		t.Fatalf("third Exec: %v lastIndex=%d", m, re.LastIndex())
	}

	re.SetLastIndex(2)
	if re.Native().LastIndex() != 2 {
		t.Fatalf("SetLastIndex is not forwarded")
	}
	if m := re.Exec(input); m == nil || m.Index != 2 {
		t.Fatalf("Exec from cursor: %v", m)
	}
}

func TestAccessors(t *testing.T) {
	re := MustNew(`(?<a>x)`, "ig")

	if re.Source() != `(?<a>x)` {
		t.Fatalf("Source: got %q", re.Source())
	}
	if re.Flags() != "gi" {
		t.Fatalf("Flags: got %q", re.Flags())
	}
	if !re.Global() || !re.IgnoreCase() || re.Multiline() {
		t.Fatalf("flag accessors: g=%v i=%v m=%v", re.Global(), re.IgnoreCase(), re.Multiline())
	}
	if re.String() != "/(?<a>x)/gi" {
		t.Fatalf("String: got %q", re.String())
	}
	if re.Native().Source() != "(x)" {
		t.Fatalf("native source: got %q", re.Native().Source())
	}

	tr := re.Translation()
	tr.Groups["a"] = 7
	if re.SubexpIndex("a") != 1 {
		t.Fatalf("Translation must return a copy")
	}
}

func TestNewFromCompiled(t *testing.T) {
	re := MustNew(`(?<a>x)`, "i")

	again := MustNew(re)
	if again.Source() != re.Source() || again.Flags() != "i" {
		t.Fatalf("New(Regexp): source=%q flags=%q", again.Source(), again.Flags())
	}

	withFlags := MustNew(re, "m")
	if withFlags.Flags() != "m" {
		t.Fatalf("New(Regexp, m): flags=%q", withFlags.Flags())
	}

	fromNative := MustNew(native.MustCompile(`(\d)`, "g"))
	if fromNative.Flags() != "g" || fromNative.Keys()[0] != "0" {
		t.Fatalf("New(native): flags=%q keys=%v", fromNative.Flags(), fromNative.Keys())
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(`(?<a>x`); err == nil {
		t.Fatalf("New(unbalanced): expected error")
	}

	if _, err := New("a", "q"); !errors.Is(err, native.ErrInvalidFlags) {
		t.Fatalf("New(bad flags): got %v, want ErrInvalidFlags", err)
	}

	if _, err := New(nil); !errors.Is(err, translate.ErrInvalidPattern) {
		t.Fatalf("New(nil): got %v, want ErrInvalidPattern", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew: expected panic")
		}
	}()
	MustNew(`(`)
}

func TestLookaroundUsesBacktrackingEngine(t *testing.T) {
	re := MustNew(`(?<=\$)(?<amount>\d+)(?!\d)`)

	m := re.Exec("cost: $120")
	if m == nil || m.Names["amount"] != "120" {
		t.Fatalf("Exec lookaround: %v", m)
	}
}

func TestCached(t *testing.T) {
	a, err := Cached(`(?<n>\d+)`, "g")
	if err != nil {
		t.Fatalf("Cached: %v", err)
	}
	b, err := Cached(`(?<n>\d+)`, "g")
	if err != nil {
		t.Fatalf("Cached (hit): %v", err)
	}
	if a == b {
		t.Fatalf("Cached must return distinct Regexp values")
	}

	a.Exec("1 2")
	if b.LastIndex() != 0 {
		t.Fatalf("cached Regexps share a cursor")
	}
	if m := b.Exec("1 2"); m == nil || m.Names["n"] != "1" {
		t.Fatalf("Exec on cached Regexp: %v", m)
	}

	if _, err := Cached(`(`, ""); err == nil {
		t.Fatalf("Cached(invalid): expected error")
	}
}
