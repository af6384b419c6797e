package main

import (
	"os"
	"strconv"
	"time"

	"github.com/cwbudde/algo-harmonic/dsp/core"
	"github.com/cwbudde/algo-harmonic/interval"
)

// Environment variables read by loadConfig.
const (
	envBaseFreq   = "HARMONICS_BASE_FREQ"
	envSampleRate = "HARMONICS_SAMPLE_RATE"
	envAmplitude  = "HARMONICS_AMPLITUDE"
	envDelayMS    = "HARMONICS_DELAY_MS"
)

// config holds flag defaults; flags override it.
type config struct {
	BaseFreq   float64
	SampleRate int
	Amplitude  int
	Delay      time.Duration // zero means the per-mode default
}

func defaultConfig() config {
	return config{
		BaseFreq:   interval.DefaultBaseFrequency,
		SampleRate: core.DefaultSampleRate,
		Amplitude:  core.DefaultAmplitude,
	}
}

// loadConfig reads overrides from the environment. Unparseable or
// out-of-range values are ignored.
func loadConfig() config {
	cfg := defaultConfig()

	if v := os.Getenv(envBaseFreq); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && core.IsPositiveFinite(f) {
			cfg.BaseFreq = f
		}
	}

	if v := os.Getenv(envSampleRate); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}

	if v := os.Getenv(envAmplitude); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Amplitude = n
		}
	}

	if v := os.Getenv(envDelayMS); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Delay = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}
