package sequence

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-harmonic/internal/testutil"
)

func TestStutterDocumentedExample(t *testing.T) {
	got, err := Stutter([]float64{256, 512, 768, 1024})
	if err != nil {
		t.Fatalf("Stutter() error = %v", err)
	}
	testutil.RequireSliceEqual(t, got, []float64{256, 512, 256, 768, 256, 1024})
}

func TestStutterLength(t *testing.T) {
	for n := 1; n <= 13; n++ {
		got, err := Stutter(testutil.FrequencyLadder(100, n))
		if err != nil {
			t.Fatalf("Stutter(n=%d) error = %v", n, err)
		}
		if len(got) != 2*(n-1) {
			t.Fatalf("len(Stutter(n=%d)) = %d, want %d", n, len(got), 2*(n-1))
		}
	}
}

func TestStutterSingleIsEmpty(t *testing.T) {
	got, err := Stutter([]float64{256})
	if err != nil {
		t.Fatalf("Stutter() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Stutter([256]) = %v, want empty", got)
	}
}

func TestEmptyInputRejected(t *testing.T) {
	if _, err := Stutter(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Stutter(nil) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Sequential([]float64{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Sequential([]) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSequentialIsIdentityCopy(t *testing.T) {
	in := []float64{440, 880, 660}
	got, err := Sequential(in)
	if err != nil {
		t.Fatalf("Sequential() error = %v", err)
	}
	testutil.RequireSliceEqual(t, got, in)

	got[0] = 0
	if in[0] != 440 {
		t.Fatal("Sequential() aliased its input")
	}
}

func TestInterpose(t *testing.T) {
	tests := []struct {
		name string
		seq  []float64
		want []float64
	}{
		{name: "empty", seq: nil, want: []float64{}},
		{name: "single", seq: []float64{1}, want: []float64{1}},
		{name: "three", seq: []float64{1, 2, 3}, want: []float64{1, 0, 2, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireSliceEqual(t, Interpose(0, tt.seq), tt.want)
		})
	}
}

func TestModes(t *testing.T) {
	freqs := []float64{100, 200, 300}

	tests := []struct {
		name string
		want []float64
	}{
		{name: "sequential", want: []float64{100, 200, 300}},
		{name: "scale", want: []float64{100, 200, 300}},
		{name: "stutter", want: []float64{100, 200, 100, 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMode(tt.name)
			if err != nil {
				t.Fatalf("ParseMode() error = %v", err)
			}
			got, err := m.Apply(freqs)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			testutil.RequireSliceEqual(t, got, tt.want)
		})
	}

	if _, err := ParseMode("reverse"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ParseMode(reverse) error = %v, want ErrInvalidArgument", err)
	}
	if ModeStutter.String() != "stutter" {
		t.Fatalf("String() = %q, want stutter", ModeStutter.String())
	}
}
