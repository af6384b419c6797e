package signal

import (
	"math"
	"time"

	"github.com/cwbudde/algo-harmonic/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Waveform is a mono buffer of signed integer samples. It is not modified
// after construction; accessors hand out copies.
type Waveform struct {
	samples    []int16
	sampleRate int
	channels   int
	bitDepth   int
}

// Len returns the number of frames.
func (w Waveform) Len() int {
	return len(w.samples)
}

// SampleRate returns the rate in Hz.
func (w Waveform) SampleRate() int {
	return w.sampleRate
}

// Channels returns the channel count the waveform is formatted for.
func (w Waveform) Channels() int {
	return w.channels
}

// BitDepth returns the signed sample width in bits.
func (w Waveform) BitDepth() int {
	return w.bitDepth
}

// Duration returns the playback length.
func (w Waveform) Duration() time.Duration {
	if w.sampleRate <= 0 {
		return 0
	}
	return time.Duration(len(w.samples)) * time.Second / time.Duration(w.sampleRate)
}

// At returns frame i.
func (w Waveform) At(i int) int16 {
	return w.samples[i]
}

// Samples returns a copy of the mono samples.
func (w Waveform) Samples() []int16 {
	out := make([]int16, len(w.samples))
	copy(out, w.samples)
	return out
}

// Interleaved returns the samples duplicated across every channel,
// frame by frame (L R L R for stereo).
func (w Waveform) Interleaved() []int16 {
	return core.Duplicate(w.samples, w.channels)
}

// Floats returns the samples scaled to [-1, 1) by the bit depth.
func (w Waveform) Floats() []float64 {
	scale := math.Ldexp(1, w.bitDepth-1)
	out := core.IntToFloat(nil, w.samples)
	for i := range out {
		out[i] /= scale
	}
	return out
}

// Peak returns the largest absolute sample value, or 0 for an empty waveform.
func (w Waveform) Peak() int {
	if len(w.samples) == 0 {
		return 0
	}
	f := core.IntToFloat(nil, w.samples)
	return int(math.Max(floats.Max(f), -floats.Min(f)))
}

// IsSilent reports whether every sample is zero.
func (w Waveform) IsSilent() bool {
	for _, v := range w.samples {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both waveforms share format and samples.
func (w Waveform) Equal(o Waveform) bool {
	if w.sampleRate != o.sampleRate || w.channels != o.channels ||
		w.bitDepth != o.bitDepth || len(w.samples) != len(o.samples) {
		return false
	}
	for i := range w.samples {
		if w.samples[i] != o.samples[i] {
			return false
		}
	}
	return true
}
