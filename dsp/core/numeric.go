package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// SampleRange returns the inclusive signed range of a bitDepth-bit sample.
// 16 bits yields [-32768, 32767].
func SampleRange(bitDepth int) (min, max float64) {
	if bitDepth <= 0 || bitDepth > 32 {
		bitDepth = DefaultBitDepth
	}
	half := math.Ldexp(1, bitDepth-1)
	return -half, half - 1
}

// InSampleRange reports whether v fits a signed bitDepth-bit sample.
func InSampleRange(v float64, bitDepth int) bool {
	lo, hi := SampleRange(bitDepth)
	return v >= lo && v <= hi
}

// IsPositiveFinite reports whether x is a usable frequency, rate or duration.
func IsPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Cents converts a frequency ratio to cents (1200 per octave).
// Returns NaN for non-positive ratios.
func Cents(ratio float64) float64 {
	if ratio <= 0 {
		return math.NaN()
	}
	return 1200 * math.Log2(ratio)
}
