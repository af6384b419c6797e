package core

import (
	"math"
	"time"
)

// Sample format defaults. An amplitude of 4096 against a 16-bit signed
// sample leaves 18 dB of headroom, so a single tone can never overflow.
const (
	DefaultSampleRate = 44100
	DefaultAmplitude  = 4096
	DefaultBitDepth   = 16
	DefaultChannels   = 2
	DefaultBufferSize = 512
	DefaultDuration   = time.Second
)

// ToneConfig defines the sample format shared by tone synthesis and output.
type ToneConfig struct {
	SampleRate int
	Amplitude  int
	BitDepth   int
	Channels   int
	BufferSize int
	Duration   time.Duration
}

// ToneOption mutates a ToneConfig.
type ToneOption func(*ToneConfig)

// DefaultToneConfig returns the 44.1 kHz, 16-bit stereo format used for playback.
func DefaultToneConfig() ToneConfig {
	return ToneConfig{
		SampleRate: DefaultSampleRate,
		Amplitude:  DefaultAmplitude,
		BitDepth:   DefaultBitDepth,
		Channels:   DefaultChannels,
		BufferSize: DefaultBufferSize,
		Duration:   DefaultDuration,
	}
}

// WithSampleRate sets the sample rate in Hz. The value is stored as given;
// non-positive rates are rejected at synthesis.
func WithSampleRate(sampleRate int) ToneOption {
	return func(cfg *ToneConfig) {
		cfg.SampleRate = sampleRate
	}
}

// WithAmplitude sets the peak amplitude in integer sample units. Negative
// amplitudes and amplitudes beyond the sample range are stored as given and
// rejected at synthesis.
func WithAmplitude(amplitude int) ToneOption {
	return func(cfg *ToneConfig) {
		cfg.Amplitude = amplitude
	}
}

// WithBitDepth sets the signed sample width in bits (8 or 16).
func WithBitDepth(bits int) ToneOption {
	return func(cfg *ToneConfig) {
		if bits == 8 || bits == 16 {
			cfg.BitDepth = bits
		}
	}
}

// WithChannels sets the output channel count.
func WithChannels(channels int) ToneOption {
	return func(cfg *ToneConfig) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// WithBufferSize sets the output device buffer in samples.
func WithBufferSize(size int) ToneOption {
	return func(cfg *ToneConfig) {
		if size > 0 {
			cfg.BufferSize = size
		}
	}
}

// WithDuration sets the length of each synthesized buffer. Non-positive
// durations are rejected at synthesis.
func WithDuration(d time.Duration) ToneOption {
	return func(cfg *ToneConfig) {
		cfg.Duration = d
	}
}

// ApplyToneOptions applies zero or more options to the default config.
func ApplyToneOptions(opts ...ToneOption) ToneConfig {
	cfg := DefaultToneConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Samples returns the number of frames covered by Duration at SampleRate.
func (c ToneConfig) Samples() int {
	return int(math.Round(float64(c.SampleRate) * c.Duration.Seconds()))
}
