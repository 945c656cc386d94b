package room

import (
	"strings"
	"testing"
)

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := NewRoomCode()
		if len(code) != codeLength {
			t.Fatalf("code %q has length %d, expected %d", code, len(code), codeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q, not in alphabet", code, r)
			}
		}
		seen[code] = true
	}
	// 100 draws from a 36^6 space colliding down to a handful would mean the
	// generator is broken.
	if len(seen) < 90 {
		t.Errorf("only %d distinct codes out of 100", len(seen))
	}
}

func TestNormalizeRoomCode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ab12cd", "AB12CD"},
		{" AB12CD ", "AB12CD"},
		{"\tab12cd\n", "AB12CD"},
		{"AB12CD", "AB12CD"},
	}
	for _, tc := range cases {
		if got := NormalizeRoomCode(tc.in); got != tc.want {
			t.Errorf("NormalizeRoomCode(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
