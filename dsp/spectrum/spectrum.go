package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Scratch holds reusable real/imaginary unpacking buffers so that magnitude
// extraction in a per-frame loop does not allocate.
//
// A Scratch must not be shared between goroutines.
type Scratch struct {
	re []float64
	im []float64
}

func (s *Scratch) grow(n int) (re, im []float64) {
	if cap(s.re) < n {
		s.re = make([]float64, n)
		s.im = make([]float64, n)
	}
	return s.re[:n], s.im[:n]
}

// MagnitudeInto computes |X[k]| for in into dst using the SIMD kernels of
// algo-vecmath. Only min(len(dst), len(in)) bins are written.
func (s *Scratch) MagnitudeInto(dst []float64, in []complex128) {
	n := len(dst)
	if len(in) < n {
		n = len(in)
	}
	if n == 0 {
		return
	}
	re, im := s.grow(n)
	for i, c := range in[:n] {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Magnitude(dst[:n], re, im)
}

var scratchPool = sync.Pool{
	New: func() any { return &Scratch{} },
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice. Hot loops should own a [Scratch] instead.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	s := scratchPool.Get().(*Scratch)
	s.MagnitudeInto(out, in)
	scratchPool.Put(s)
	return out
}
