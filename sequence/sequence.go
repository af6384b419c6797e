// Package sequence orders a frequency sequence for playback.
//
// Sequential plays the frequencies as given. Stutter returns to the first
// (base) frequency between every interval so each one is heard against it:
//
//	Stutter([256 512 768 1024]) == [256 512 256 768 256 1024]
package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports an empty frequency sequence.
var ErrInvalidArgument = errors.New("sequence: invalid argument")

// Sequential returns a copy of freqs in their original order.
func Sequential(freqs []float64) ([]float64, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: empty frequency sequence", ErrInvalidArgument)
	}
	out := make([]float64, len(freqs))
	copy(out, freqs)
	return out, nil
}

// Interpose places sep between every pair of adjacent elements of seq.
func Interpose(sep float64, seq []float64) []float64 {
	if len(seq) == 0 {
		return []float64{}
	}
	out := make([]float64, 0, 2*len(seq)-1)
	for i, v := range seq {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, v)
	}
	return out
}

// Stutter interposes freqs[0] through freqs and drops the leading element,
// yielding 2*(n-1) frequencies. A single frequency yields none.
func Stutter(freqs []float64) ([]float64, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: empty frequency sequence", ErrInvalidArgument)
	}
	return Interpose(freqs[0], freqs)[1:], nil
}

// Mode selects a playback ordering.
type Mode int

const (
	ModeSequential Mode = iota
	ModeStutter
)

func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeStutter:
		return "stutter"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a mode name to its Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "sequential", "scale":
		return ModeSequential, nil
	case "stutter":
		return ModeStutter, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, name)
	}
}

// Apply orders freqs according to m.
func (m Mode) Apply(freqs []float64) ([]float64, error) {
	switch m {
	case ModeSequential:
		return Sequential(freqs)
	case ModeStutter:
		return Stutter(freqs)
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidArgument, int(m))
	}
}
