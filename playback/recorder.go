package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cwbudde/algo-harmonic/dsp/signal"
)

// EventKind identifies a recorded output call.
type EventKind int

const (
	EventPlay EventKind = iota
	EventStop
	EventDelay
)

func (k EventKind) String() string {
	switch k {
	case EventPlay:
		return "play"
	case EventStop:
		return "stop"
	case EventDelay:
		return "delay"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one call made against a Recorder.
type Event struct {
	Kind     EventKind
	Waveform signal.Waveform
	Loop     bool
	Delay    time.Duration
}

// Recorder is an in-memory Output. Delay returns immediately unless the
// context is already done.
type Recorder struct {
	mu     sync.Mutex
	events []Event

	SampleRate int
	BitDepth   int
	Channels   int
	BufferSize int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Init(sampleRate, bitDepth, channels, bufferSize int) error {
	if sampleRate <= 0 || bitDepth <= 0 || channels <= 0 || bufferSize <= 0 {
		return fmt.Errorf("%w: rate %d, %d-bit, %d ch, buffer %d", ErrFormat, sampleRate, bitDepth, channels, bufferSize)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SampleRate, r.BitDepth, r.Channels, r.BufferSize = sampleRate, bitDepth, channels, bufferSize
	return nil
}

func (r *Recorder) Play(w signal.Waveform, loop bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SampleRate == 0 {
		return ErrNotInitialized
	}
	r.events = append(r.events, Event{Kind: EventPlay, Waveform: w, Loop: loop})
	return nil
}

func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SampleRate == 0 {
		return ErrNotInitialized
	}
	r.events = append(r.events, Event{Kind: EventStop})
	return nil
}

func (r *Recorder) Delay(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: EventDelay, Delay: d})
	return nil
}

// Events returns a copy of the recorded calls.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Played returns the waveforms passed to Play, in order.
func (r *Recorder) Played() []signal.Waveform {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []signal.Waveform
	for _, e := range r.events {
		if e.Kind == EventPlay {
			out = append(out, e.Waveform)
		}
	}
	return out
}

// Elapsed sums all recorded delays.
func (r *Recorder) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total time.Duration
	for _, e := range r.events {
		total += e.Delay
	}
	return total
}
