package window

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Table is a precomputed analysis window for repeated framing of
// fixed-size blocks.
//
// The stored coefficients are scaled by 2/(N·coherentGain), so a windowed
// sinusoid of amplitude A that falls on a bin yields a one-sided FFT
// magnitude of about A regardless of N or window type.
type Table struct {
	typ    Type
	coeffs []float64
	scaled []float64
	scale  float64
}

// NewTable builds a Table of size coefficients.
func NewTable(t Type, size int, opts ...Option) (*Table, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	if err := validateLength(size); err != nil {
		return nil, err
	}

	coeffs := Generate(t, size, opts...)
	gain, err := CoherentGain(coeffs)
	if err != nil {
		return nil, err
	}

	scale := 2 / (float64(size) * gain)
	scaled := make([]float64, size)
	for i, c := range coeffs {
		scaled[i] = c * scale
	}
	return &Table{typ: t, coeffs: coeffs, scaled: scaled, scale: scale}, nil
}

// Type returns the window type.
func (w *Table) Type() Type { return w.typ }

// Len returns the number of coefficients.
func (w *Table) Len() int { return len(w.coeffs) }

// Coefficients returns a copy of the unscaled window.
func (w *Table) Coefficients() []float64 {
	return append([]float64(nil), w.coeffs...)
}

// Scale returns the amplitude normalization folded into [Table.ApplyTo].
func (w *Table) Scale() float64 { return w.scale }

// ApplyTo writes src multiplied by the normalized window into dst.
func (w *Table) ApplyTo(dst, src []float64) error {
	if len(dst) != len(w.scaled) || len(src) != len(w.scaled) {
		return fmt.Errorf("%w: dst=%d src=%d window=%d", errMismatchedLength, len(dst), len(src), len(w.scaled))
	}
	vecmath.MulBlock(dst, src, w.scaled)
	return nil
}
