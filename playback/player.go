package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/cwbudde/algo-harmonic/dsp/signal"
	"github.com/cwbudde/algo-harmonic/sequence"
	"go.uber.org/zap"
)

// Default hold times per tone.
const (
	DefaultScaleDelay   = 1000 * time.Millisecond
	DefaultStutterDelay = 2000 * time.Millisecond
	DefaultStackDelay   = 5000 * time.Millisecond
)

// Player synthesizes tones and plays them on an Output.
type Player struct {
	out Output
	gen *signal.Generator
	log *zap.Logger

	scaleDelay   time.Duration
	stutterDelay time.Duration
	stackDelay   time.Duration
}

// Option configures a Player.
type Option func(*Player)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// WithScaleDelay sets how long each tone of a sequential scale is held.
func WithScaleDelay(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.scaleDelay = d
		}
	}
}

// WithStutterDelay sets how long each tone of a stutter is held.
func WithStutterDelay(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.stutterDelay = d
		}
	}
}

// WithStackDelay sets how long a stack is held.
func WithStackDelay(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.stackDelay = d
		}
	}
}

// NewPlayer initializes out with the generator's sample format.
func NewPlayer(out Output, gen *signal.Generator, opts ...Option) (*Player, error) {
	if out == nil || gen == nil {
		return nil, fmt.Errorf("playback: player needs an output and a generator")
	}
	p := &Player{
		out:          out,
		gen:          gen,
		log:          zap.NewNop(),
		scaleDelay:   DefaultScaleDelay,
		stutterDelay: DefaultStutterDelay,
		stackDelay:   DefaultStackDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if err := gen.Validate(); err != nil {
		return nil, err
	}

	cfg := gen.Config()
	if err := out.Init(cfg.SampleRate, cfg.BitDepth, cfg.Channels, cfg.BufferSize); err != nil {
		return nil, fmt.Errorf("init output: %w", err)
	}
	p.log.Debug("output initialized",
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Int("bit_depth", cfg.BitDepth),
		zap.Int("channels", cfg.Channels),
		zap.Int("buffer_size", cfg.BufferSize),
		zap.Int("amplitude", cfg.Amplitude),
	)
	return p, nil
}

// PlayTone loops one frequency for d, then stops it.
func (p *Player) PlayTone(ctx context.Context, freq float64, d time.Duration) error {
	w, err := p.gen.Tone(freq)
	if err != nil {
		return err
	}
	return p.hold(ctx, w, d, zap.Float64("freq", freq))
}

// PlayScale plays freqs in order, each for the scale delay.
func (p *Player) PlayScale(ctx context.Context, freqs []float64) error {
	return p.PlaySequence(ctx, sequence.ModeSequential, freqs, p.scaleDelay)
}

// PlayStutter plays freqs with the base tone between intervals, each for
// the stutter delay.
func (p *Player) PlayStutter(ctx context.Context, freqs []float64) error {
	return p.PlaySequence(ctx, sequence.ModeStutter, freqs, p.stutterDelay)
}

// PlaySequence orders freqs by mode, synthesizes every tone up front, then
// plays them one after another for d each.
func (p *Player) PlaySequence(ctx context.Context, mode sequence.Mode, freqs []float64, d time.Duration) error {
	order, err := mode.Apply(freqs)
	if err != nil {
		return err
	}

	tones := make([]signal.Waveform, len(order))
	for i, f := range order {
		if tones[i], err = p.gen.Tone(f); err != nil {
			return fmt.Errorf("tone %d (%v Hz): %w", i, f, err)
		}
	}

	p.log.Info("playing sequence",
		zap.Stringer("mode", mode),
		zap.Int("tones", len(tones)),
		zap.Duration("delay", d),
	)
	for i, w := range tones {
		if err := p.hold(ctx, w, d, zap.Int("index", i), zap.Float64("freq", order[i])); err != nil {
			return err
		}
	}
	return nil
}

// PlayStack mixes freqs into one tone and holds it for the stack delay.
func (p *Player) PlayStack(ctx context.Context, freqs []float64) error {
	w, err := p.gen.Stack(freqs)
	if err != nil {
		return err
	}
	p.log.Info("playing stack", zap.Float64s("freqs", freqs), zap.Duration("delay", p.stackDelay))
	return p.hold(ctx, w, p.stackDelay, zap.Int("partials", len(freqs)))
}

// hold plays w on loop for d and always stops it afterwards.
func (p *Player) hold(ctx context.Context, w signal.Waveform, d time.Duration, fields ...zap.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.log.Debug("tone", append(fields, zap.Duration("delay", d), zap.Int("peak", w.Peak()))...)

	if err := p.out.Play(w, true); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	delayErr := p.out.Delay(ctx, d)
	if err := p.out.Stop(); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return delayErr
}
