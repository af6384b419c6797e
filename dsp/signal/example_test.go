package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-harmonic/dsp/core"
	"github.com/cwbudde/algo-harmonic/dsp/signal"
)

func ExampleGenerator_Tone() {
	g := signal.NewGenerator(core.WithSampleRate(4))
	w, err := g.Tone(1)
	if err != nil {
		panic(err)
	}

	fmt.Println(w.Samples())

	// Output:
	// [0 4096 0 -4096]
}

func ExampleGenerator_Stack() {
	g := signal.NewGenerator(core.WithSampleRate(4))
	w, err := g.Stack([]float64{1, 0})
	if err != nil {
		panic(err)
	}

	fmt.Println(w.Samples())

	// Output:
	// [0 2048 0 -2048]
}
