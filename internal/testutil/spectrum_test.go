package testutil

import (
	"math"
	"testing"
)

func TestDominantFrequency(t *testing.T) {
	const rate = 1024.0
	x := make([]float64, 1024)
	for i := range x {
		x[i] = math.Sin(2*math.Pi*100*float64(i)/rate) + 0.2*math.Sin(2*math.Pi*300*float64(i)/rate)
	}

	got, err := DominantFrequency(x, rate)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	if got != 100 {
		t.Fatalf("dominant = %v, want 100", got)
	}
}

func TestDominantFrequencyRejectsShortInput(t *testing.T) {
	if _, err := DominantFrequency([]float64{1}, 8000); err == nil {
		t.Fatal("expected error for single sample")
	}
	if _, err := DominantFrequency([]float64{1, 0}, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ in, want int }{{1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {8192, 8192}}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
