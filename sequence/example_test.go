package sequence_test

import (
	"fmt"

	"github.com/cwbudde/algo-harmonic/sequence"
)

func ExampleStutter() {
	out, err := sequence.Stutter([]float64{256, 512, 768, 1024})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	// Output:
	// [256 512 256 768 256 1024]
}
