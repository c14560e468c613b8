package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// FlatSpectrum returns bins complex bins that all have magnitude amplitude.
func FlatSpectrum(bins int, amplitude float64) []complex128 {
	out := make([]complex128, bins)
	for i := range out {
		out[i] = complex(amplitude, 0)
	}
	return out
}

// ToneSpectrum returns a spectrum of bins zeros with a single bin k set to
// amplitude (with equal real and imaginary parts).
func ToneSpectrum(bins, k int, amplitude float64) []complex128 {
	out := make([]complex128, bins)
	if k >= 0 && k < bins {
		part := amplitude / math.Sqrt2
		out[k] = complex(part, part)
	}
	return out
}

// Interleave32 interleaves equally long channel signals into float32 frames.
func Interleave32(channels ...[]float64) []float32 {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	out := make([]float32, frames*len(channels))
	for f := 0; f < frames; f++ {
		for c, ch := range channels {
			out[f*len(channels)+c] = float32(ch[f])
		}
	}
	return out
}
