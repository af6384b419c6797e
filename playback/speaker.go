package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cwbudde/algo-harmonic/dsp/signal"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays waveforms on the default system audio device.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	bitDepth    int
	channels    int
	bufferSize  int
	current     *beep.Ctrl
	initialized bool
}

// NewSpeaker returns an uninitialized speaker output.
func NewSpeaker() *Speaker {
	return &Speaker{}
}

// Init opens the device. beep mixes in float64 stereo, so channels must be
// 1 or 2 and bitDepth 8 or 16; samples are widened on the way out.
//
// The device is opened once per process. Calling Init again with the same
// format is a no-op; a different format fails with ErrFormat.
func (s *Speaker) Init(sampleRate, bitDepth, channels, bufferSize int) error {
	if sampleRate <= 0 || bufferSize <= 0 {
		return fmt.Errorf("%w: rate %d, buffer %d", ErrFormat, sampleRate, bufferSize)
	}
	if bitDepth != 8 && bitDepth != 16 {
		return fmt.Errorf("%w: %d-bit samples", ErrFormat, bitDepth)
	}
	if channels != 1 && channels != 2 {
		return fmt.Errorf("%w: %d channels", ErrFormat, channels)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rate := beep.SampleRate(sampleRate)
	if s.initialized {
		if rate != s.rate || bitDepth != s.bitDepth || channels != s.channels || bufferSize != s.bufferSize {
			return fmt.Errorf("%w: already open at %d Hz / %d bit / %d ch / %d buf",
				ErrFormat, int(s.rate), s.bitDepth, s.channels, s.bufferSize)
		}
		return nil
	}

	if err := speaker.Init(rate, bufferSize); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	s.rate = rate
	s.bitDepth = bitDepth
	s.channels = channels
	s.bufferSize = bufferSize
	s.initialized = true
	return nil
}

// Play starts w on the device, replacing anything already playing.
func (s *Speaker) Play(w signal.Waveform, loop bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	if beep.SampleRate(w.SampleRate()) != s.rate {
		return fmt.Errorf("%w: waveform at %d Hz, device at %d Hz", ErrFormat, w.SampleRate(), int(s.rate))
	}

	var stream beep.Streamer = newWaveStreamer(w)
	if loop {
		stream = beep.Loop(-1, newWaveStreamer(w))
	}

	speaker.Clear()
	s.current = &beep.Ctrl{Streamer: stream, Paused: false}
	speaker.Play(s.current)
	return nil
}

// Stop pauses and removes the current stream.
func (s *Speaker) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	if s.current != nil {
		speaker.Lock()
		s.current.Paused = true
		speaker.Unlock()
		s.current = nil
	}
	speaker.Clear()
	return nil
}

// Delay blocks for d or until ctx is done.
func (s *Speaker) Delay(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}
