package testutil

import (
	"errors"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// DominantFrequency returns the centre frequency of the strongest
// non-DC bin of x, zero-padded to the next power of two.
func DominantFrequency(x []float64, sampleRate float64) (float64, error) {
	if len(x) < 2 {
		return 0, errors.New("dominant frequency needs at least two samples")
	}
	if sampleRate <= 0 {
		return 0, errors.New("dominant frequency needs a positive sample rate")
	}

	n := nextPowerOf2(len(x))
	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, err
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, err
	}

	best, bestMag := 0, 0.0
	for k := 1; k <= n/2; k++ {
		if m := cmplx.Abs(out[k]); m > bestMag {
			best, bestMag = k, m
		}
	}
	return float64(best) * sampleRate / float64(n), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
