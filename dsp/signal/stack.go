package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-harmonic/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Stack renders each frequency as its own tone and averages them sample by
// sample. Every partial gets weight 1/len(freqs) regardless of its place in
// the harmonic series, so quieter upper partials are not emphasized.
func (g *Generator) Stack(freqs []float64) (Waveform, error) {
	if len(freqs) == 0 {
		return Waveform{}, fmt.Errorf("%w: stack needs at least one frequency", ErrInvalidArgument)
	}

	var sum, partial []float64
	for i, f := range freqs {
		w, err := g.Tone(f)
		if err != nil {
			return Waveform{}, fmt.Errorf("stack partial %d: %w", i, err)
		}
		if sum == nil {
			sum = make([]float64, w.Len())
		}
		partial = core.IntToFloat(partial, w.samples)
		vecmath.AddBlockInPlace(sum, partial)
	}

	count := float64(len(freqs))
	for i := range sum {
		sum[i] = math.Round(sum[i] / count)
	}
	return g.quantize(sum)
}
