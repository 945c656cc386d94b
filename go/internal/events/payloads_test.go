package events

import "testing"

func TestCompatibilityPercent(t *testing.T) {
	cases := []struct {
		matches, rounds, want int
	}{
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{1, 3, 33},
		{7, 10, 70},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := CompatibilityPercent(tc.matches, tc.rounds); got != tc.want {
			t.Errorf("CompatibilityPercent(%d, %d) = %d, expected %d", tc.matches, tc.rounds, got, tc.want)
		}
	}
}
