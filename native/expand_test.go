package native

import "testing"

func TestExpand(t *testing.T) {
	src := "2024-05"
	match := []int{0, 7, 0, 4, 5, 7, -1, -1}

	cases := []struct {
		template string
		want     string
	}{
		{"$1/$2", "2024/05"},
		{"${2}${1}", "052024"},
		{"$0", "2024-05"},
		{"$$1", "$1"},
		{"$3", ""},
		{"$9", ""},
		{"${1", "${1"},
		{"$x", "$x"},
		{"cost: $", "cost: $"},
		{"plain", "plain"},
	}

	for _, tc := range cases {
		t.Run(tc.template, func(t *testing.T) {
			if got := string(expand(nil, tc.template, src, match)); got != tc.want {
				t.Fatalf("expand(%q) = %q, want %q", tc.template, got, tc.want)
			}
		})
	}
}
