package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-bars/dsp/filter/biquad"
)

func ExampleHighpass() {
	c, err := biquad.Highpass(1000, biquad.ButterworthQ, 48000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("corner: %.2f dB\n", c.MagnitudeDB(1000, 48000))

	// Output:
	// corner: -3.01 dB
}
