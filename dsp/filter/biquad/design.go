package biquad

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDesign reports a corner frequency outside (0, Nyquist) or a
// non-finite sample rate.
var ErrInvalidDesign = errors.New("biquad: invalid design parameters")

// ButterworthQ is the quality factor of a maximally flat second-order
// section.
const ButterworthQ = 1 / math.Sqrt2

// Highpass designs an RBJ cookbook highpass at freq (Hz) with quality factor
// q. A non-positive q selects [ButterworthQ].
func Highpass(freq, q, sampleRate float64) (Coefficients, error) {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}, fmt.Errorf("%w: highpass at %g Hz, sample rate %g Hz", ErrInvalidDesign, freq, sampleRate)
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2), nil
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return ButterworthQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
