package testutil

import "math"

// RoundedSine returns length samples of round(amplitude*sin(2*pi*freqHz*i/sampleRate)),
// the integer-valued sine the tone generator is expected to emit.
func RoundedSine(freqHz float64, sampleRate int, amplitude float64, length int) []float64 {
	if length <= 0 {
		return nil
	}
	out := make([]float64, length)
	rate := float64(sampleRate)
	for i := range out {
		out[i] = math.Round(amplitude * math.Sin(2*math.Pi*freqHz*float64(i)/rate))
	}
	return out
}

// FrequencyLadder returns n frequencies base, 2*base, ..., n*base.
func FrequencyLadder(base float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = base * float64(i+1)
	}
	return out
}
