package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-harmonic/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Generator synthesizes waveforms from a shared sample format.
type Generator struct {
	cfg core.ToneConfig
}

// NewGenerator creates a configured tone generator.
func NewGenerator(opts ...core.ToneOption) *Generator {
	return &Generator{cfg: core.ApplyToneOptions(opts...)}
}

// Config returns the generator tone configuration.
func (g *Generator) Config() core.ToneConfig {
	return g.cfg
}

// Tone renders round(amplitude * sin(2*pi*freq*i/sampleRate)) for every
// frame of the configured duration. A zero frequency yields silence.
func (g *Generator) Tone(freq float64) (Waveform, error) {
	if freq < 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return Waveform{}, fmt.Errorf("%w: tone frequency must be >= 0: %v", ErrInvalidArgument, freq)
	}
	buf, err := g.render(freq)
	if err != nil {
		return Waveform{}, err
	}
	return g.quantize(buf)
}

// Validate reports whether the configuration can synthesize at least one
// sample.
func (g *Generator) Validate() error {
	_, err := g.validate()
	return err
}

func (g *Generator) validate() (int, error) {
	if g.cfg.SampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidArgument, g.cfg.SampleRate)
	}
	if g.cfg.Amplitude < 0 {
		return 0, fmt.Errorf("%w: amplitude must be >= 0: %d", ErrInvalidArgument, g.cfg.Amplitude)
	}
	if g.cfg.Duration <= 0 {
		return 0, fmt.Errorf("%w: duration must be > 0: %v", ErrInvalidArgument, g.cfg.Duration)
	}
	n := g.cfg.Samples()
	if n <= 0 {
		return 0, fmt.Errorf("%w: duration %v shorter than one sample", ErrInvalidArgument, g.cfg.Duration)
	}
	return n, nil
}

// render returns the rounded, not yet range-checked samples.
func (g *Generator) render(freq float64) ([]float64, error) {
	n, err := g.validate()
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if freq == 0 || g.cfg.Amplitude == 0 {
		return out, nil
	}

	amp := float64(g.cfg.Amplitude)
	rate := float64(g.cfg.SampleRate)
	for i := range out {
		out[i] = math.Round(amp * math.Sin(2*math.Pi*freq*float64(i)/rate))
	}
	return out, nil
}

// quantize converts rounded samples to the integer type, failing on any
// value outside the signed range of the configured bit depth.
func (g *Generator) quantize(buf []float64) (Waveform, error) {
	lo, hi := core.SampleRange(g.cfg.BitDepth)
	if maxV, minV := floats.Max(buf), floats.Min(buf); maxV > hi || minV < lo {
		return Waveform{}, fmt.Errorf("%w: peak [%v, %v] outside %d-bit range [%v, %v] (amplitude %d)",
			ErrOverflow, minV, maxV, g.cfg.BitDepth, lo, hi, g.cfg.Amplitude)
	}

	samples := make([]int16, len(buf))
	for i, v := range buf {
		samples[i] = int16(v)
	}
	return Waveform{
		samples:    samples,
		sampleRate: g.cfg.SampleRate,
		channels:   g.cfg.Channels,
		bitDepth:   g.cfg.BitDepth,
	}, nil
}
