package playback

import (
	"fmt"

	"github.com/cwbudde/algo-harmonic/dsp/signal"
)

// waveStreamer exposes a Waveform as a seekable beep stream.
// Mono samples are written to both speaker channels.
type waveStreamer struct {
	samples []float64
	pos     int
}

func newWaveStreamer(w signal.Waveform) *waveStreamer {
	return &waveStreamer{samples: w.Floats()}
}

func (s *waveStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.samples) {
			return i, true
		}
		v := s.samples[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *waveStreamer) Err() error { return nil }

func (s *waveStreamer) Len() int { return len(s.samples) }

func (s *waveStreamer) Position() int { return s.pos }

func (s *waveStreamer) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, len(s.samples))
	}
	s.pos = p
	return nil
}
