package randutil

import (
	"strings"
	"testing"
)

func TestRandHex(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := RandHex(8)
		if len(s) != 8 {
			t.Fatalf("length %d, want 8", len(s))
		}
		for _, c := range s {
			if !strings.ContainsRune(hexdigits, c) {
				t.Fatalf("unexpected character %q in %q", c, s)
			}
		}
		seen[s] = true
	}
	if len(seen) < 90 {
		t.Fatalf("too many collisions: %d distinct of 100", len(seen))
	}
}
