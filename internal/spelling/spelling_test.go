package spelling

import "testing"

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"apple", "apple", 0},
		{"aple", "apple", 1},
		{"appel", "apple", 2},
		{"xyz", "apple", 5},
		{"koe", "kat", 2},
		{"één", "een", 2},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIsAcceptable(t *testing.T) {
	cases := []struct {
		user, correct string
		want          bool
	}{
		{"appel", "Appel", true},    // case insensitive
		{"  appel ", "appel", true}, // trimmed
		{"aple", "apple", true},     // distance 1
		{"appell", "appel", true},   // distance 1
		{"apfel", "appel", true},    // distance 2
		{"xyz", "apple", false},     // distance > 2
		{"", "appel", false},
		{"ja", "nee", false},
	}
	for _, tc := range cases {
		if got := IsAcceptable(tc.user, tc.correct); got != tc.want {
			t.Errorf("IsAcceptable(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
		}
	}
}

// Two-character answers sit inside the fixed tolerance, so nearly anything
// of similar length matches. Pin that behavior down so a future "fix"
// is a conscious decision.
func TestIsAcceptable_ShortWordTolerance(t *testing.T) {
	if !IsAcceptable("ui", "ei") {
		t.Error("IsAcceptable(ui, ei) = false; fixed tolerance should accept distance <= 2")
	}
}
