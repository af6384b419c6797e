package testutil

import "testing"

func TestRoundedSineQuarterPeriod(t *testing.T) {
	got := RoundedSine(1, 4, 4096, 8)
	RequireSliceEqual(t, got, []float64{0, 4096, 0, -4096, 0, 4096, 0, -4096})
}

func TestRoundedSineRoundsToIntegers(t *testing.T) {
	for i, v := range RoundedSine(440, 8000, 1000, 64) {
		if v != float64(int64(v)) {
			t.Fatalf("sample %d = %v, want an integer value", i, v)
		}
	}
}

func TestRoundedSineEmpty(t *testing.T) {
	if got := RoundedSine(440, 8000, 1, 0); got != nil {
		t.Fatalf("RoundedSine(len 0) = %v, want nil", got)
	}
}

func TestFrequencyLadder(t *testing.T) {
	RequireSliceEqual(t, FrequencyLadder(100, 4), []float64{100, 200, 300, 400})
	if got := FrequencyLadder(100, 0); got != nil {
		t.Fatalf("FrequencyLadder(n=0) = %v, want nil", got)
	}
}
