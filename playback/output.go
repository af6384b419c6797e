// Package playback hands synthesized waveforms to an audio device.
//
// Output is the device boundary: it is initialized once with the sample
// format, then asked to play, wait and stop. Speaker drives the system
// audio device through beep; Recorder keeps everything in memory for tests
// and dry runs. Player combines a signal.Generator with an Output to play
// scales, stutters and stacks.
package playback

import (
	"context"
	"errors"
	"time"

	"github.com/cwbudde/algo-harmonic/dsp/signal"
)

// Errors returned by outputs.
var (
	ErrNotInitialized = errors.New("playback: output not initialized")
	ErrFormat         = errors.New("playback: unsupported sample format")
)

// Output is an audio device that plays one waveform at a time.
type Output interface {
	// Init opens the device. bitDepth is the signed sample width.
	Init(sampleRate, bitDepth, channels, bufferSize int) error
	// Play starts w, repeating it until Stop when loop is set.
	Play(w signal.Waveform, loop bool) error
	// Stop silences whatever is playing.
	Stop() error
	// Delay blocks for d or until ctx is done.
	Delay(ctx context.Context, d time.Duration) error
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
