package common

import "testing"

// RequireMembership checks every word against contains and fails on the first
// word whose answer differs from want, or on any error.
func RequireMembership(t *testing.T, contains func(string) (bool, error), words []string, want bool) {
	t.Helper()

	for i, w := range words {
		got, err := contains(w)
		if err != nil {
			t.Fatalf("unexpected error for word %d (%q): %v", i, w, err)
		}
		if got != want {
			t.Fatalf("membership mismatch at %d: word %q got %v want %v", i, w, got, want)
		}
	}
}
