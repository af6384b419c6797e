package interval

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-harmonic/dsp/core"
)

// DefaultBaseFrequency is concert A.
const DefaultBaseFrequency = 440.0

// Series is a table scaled by a base frequency. It is immutable; build a
// new one to change the base.
type Series struct {
	base  float64
	names []string
	freqs []float64
	index map[string]int
}

// Build scales every ratio in table by baseFreq, preserving table order.
func Build(baseFreq float64, table Table) (Series, error) {
	if !core.IsPositiveFinite(baseFreq) {
		return Series{}, fmt.Errorf("%w: base frequency must be > 0: %v", ErrInvalidArgument, baseFreq)
	}

	s := Series{
		base:  baseFreq,
		names: make([]string, 0, table.Len()),
		freqs: make([]float64, 0, table.Len()),
		index: make(map[string]int, table.Len()),
	}
	for _, e := range table.entries {
		s.index[e.Name] = len(s.freqs)
		s.names = append(s.names, e.Name)
		s.freqs = append(s.freqs, float64(e.Ratio)*baseFreq)
	}
	return s, nil
}

// Harmonic builds the series over NamedTable.
func Harmonic(baseFreq float64) (Series, error) {
	return Build(baseFreq, NamedTable())
}

// OrderedHarmonic builds the series over OrderedTable.
func OrderedHarmonic(baseFreq float64) (Series, error) {
	return Build(baseFreq, OrderedTable())
}

// Base returns the base frequency in Hz.
func (s Series) Base() float64 {
	return s.base
}

// Len returns the number of intervals.
func (s Series) Len() int {
	return len(s.freqs)
}

// Frequency returns the absolute frequency of the named interval.
func (s Series) Frequency(name string) (float64, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.freqs[i], true
}

// Frequencies returns the frequencies in table order.
func (s Series) Frequencies() []float64 {
	out := make([]float64, len(s.freqs))
	copy(out, s.freqs)
	return out
}

// Names returns the interval names in table order.
func (s Series) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s Series) String() string {
	var b strings.Builder
	for i, name := range s.names {
		fmt.Fprintf(&b, "%-14s %10.3f Hz\n", name+":", s.freqs[i])
	}
	return b.String()
}
