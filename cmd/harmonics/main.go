// Command harmonics prints just-intonation interval tables and plays them.
//
// Usage:
//
//	harmonics [flags] [interval-name ...]
//
// Interval names select a subset of the table, kept in table order; hyphens
// stand in for spaces ("major-third"). Without names all thirteen are used.
//
// Examples:
//
//	harmonics
//	harmonics -base 256 -table ordered -mode scale
//	harmonics -mode stutter -delay 500
//	harmonics -mode stack base major-third fifth
//	harmonics -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-harmonic/dsp/core"
	dspsignal "github.com/cwbudde/algo-harmonic/dsp/signal"
	"github.com/cwbudde/algo-harmonic/interval"
	"github.com/cwbudde/algo-harmonic/internal/logging"
	"github.com/cwbudde/algo-harmonic/playback"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, func() playback.Output {
		return playback.NewSpeaker()
	}))
}

// run parses args and executes one mode. newOutput is only called when a
// device is needed.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, newOutput func() playback.Output) int {
	env := loadConfig()

	fs := flag.NewFlagSet("harmonics", flag.ContinueOnError)
	fs.SetOutput(stderr)
	base := fs.Float64("base", env.BaseFreq, "base frequency in Hz")
	table := fs.String("table", "named", "interval table: named (by consonance) or ordered (by pitch)")
	mode := fs.String("mode", "print", "print, scale, stutter or stack")
	delayMS := fs.Int("delay", int(env.Delay/time.Millisecond), "hold time per tone in ms (0 = mode default)")
	rate := fs.Int("rate", env.SampleRate, "sample rate in Hz")
	amplitude := fs.Int("amplitude", env.Amplitude, "peak amplitude of a 16-bit sample")
	dryRun := fs.Bool("dry-run", false, "synthesize and sequence without opening the audio device")
	debug := fs.Bool("debug", false, "log every tone")
	list := fs.Bool("list", false, "list interval names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: harmonics [flags] [interval-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints and plays just-intonation intervals over a base frequency.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  harmonics -base 256 -table ordered\n")
		fmt.Fprintf(stderr, "  harmonics -mode stutter -delay 500\n")
		fmt.Fprintf(stderr, "  harmonics -mode stack base major-third fifth\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	switch *mode {
	case "print", "scale", "sequential", "stutter", "stack":
	default:
		fmt.Fprintf(stderr, "error: unknown mode %q (use print, scale, stutter or stack)\n", *mode)
		return 2
	}

	log := logging.NewWithWriter(stderr, *debug)
	defer func() { _ = logging.Sync(log) }()

	tbl, err := resolveTable(*table)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if *list {
		for _, name := range tbl.Names() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	series, err := interval.Build(*base, tbl)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	names, freqs, err := selectIntervals(series, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if *mode == "print" {
		if err := printSeries(stdout, tbl, series, names); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	var out playback.Output
	if *dryRun {
		out = playback.NewRecorder()
	} else {
		out = newOutput()
	}

	gen := dspsignal.NewGenerator(core.WithSampleRate(*rate), core.WithAmplitude(*amplitude))
	delay := time.Duration(*delayMS) * time.Millisecond
	player, err := playback.NewPlayer(out, gen,
		playback.WithLogger(log),
		playback.WithScaleDelay(delay),
		playback.WithStutterDelay(delay),
		playback.WithStackDelay(delay),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log.Info("harmonics",
		zap.String("mode", *mode),
		zap.String("table", *table),
		zap.Float64("base", series.Base()),
		zap.Strings("intervals", names),
	)

	switch *mode {
	case "scale", "sequential":
		err = player.PlayScale(ctx, freqs)
	case "stutter":
		err = player.PlayStutter(ctx, freqs)
	case "stack":
		err = player.PlayStack(ctx, freqs)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("interrupted")
			return 130
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if rec, ok := out.(*playback.Recorder); ok {
		fmt.Fprintf(stdout, "dry run: %d tone(s), %v total\n", len(rec.Played()), rec.Elapsed())
	}
	return 0
}

func resolveTable(name string) (interval.Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "named", "harmonic":
		return interval.NamedTable(), nil
	case "ordered", "pitch":
		return interval.OrderedTable(), nil
	default:
		return interval.Table{}, fmt.Errorf("unknown table %q (use named or ordered)", name)
	}
}

// selectIntervals returns the requested subset of series in table order.
func selectIntervals(series interval.Series, requested []string) ([]string, []float64, error) {
	if len(requested) == 0 {
		return series.Names(), series.Frequencies(), nil
	}

	want := make(map[string]bool, len(requested))
	for _, r := range requested {
		name := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(r, "-", " ")))
		if _, ok := series.Frequency(name); !ok {
			return nil, nil, fmt.Errorf("unknown interval %q (use -list to see available)", r)
		}
		want[name] = true
	}

	var names []string
	var freqs []float64
	for _, name := range series.Names() {
		if want[name] {
			f, _ := series.Frequency(name)
			names = append(names, name)
			freqs = append(freqs, f)
		}
	}
	return names, freqs, nil
}

func printSeries(w io.Writer, tbl interval.Table, series interval.Series, names []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Interval\tRatio\tCents\tFrequency [Hz]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t-----\t-----\t--------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, name := range names {
		r, _ := tbl.Lookup(name)
		f, _ := series.Frequency(name)
		if _, err := fmt.Fprintf(tw, "%s\t%.6f\t%.2f\t%.3f\n", name, float64(r), r.Cents(), f); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
