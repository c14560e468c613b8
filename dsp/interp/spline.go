package interp

import "github.com/cwbudde/algo-bars/dsp/core"

// cubicSpline holds the factored curvature system and per-frame scratch.
//
// With section widths w the second derivatives γ solve
//
//	w[i-1]·γ[i-1] + 2(w[i-1]+w[i])·γ[i] + w[i]·γ[i+1] = 6·d[i]
//
// where d is the difference of neighbouring gradients and the end rows use
// zero end slopes (d[0] = g[0], d[n-1] = -g[n-2]).
type cubicSpline struct {
	widths    []float32
	factor    Cholesky
	gradients []float32
	gamma     []float32
}

func newCubicSpline(xs []int) (cubicSpline, error) {
	n := len(xs)
	if n < 2 {
		return cubicSpline{}, nil
	}

	widths := make([]float32, n-1)
	for i := range widths {
		widths[i] = float32(xs[i+1] - xs[i])
	}

	diag := make([]float32, n)
	off := make([]float32, n-1)
	for i := 0; i < n; i++ {
		var w float32
		if i > 0 {
			w += widths[i-1]
		}
		if i < n-1 {
			w += widths[i]
			off[i] = widths[i] / 6
		}
		diag[i] = 2 * w / 6
	}

	factor, err := FactorTridiagonal(diag, off)
	if err != nil {
		return cubicSpline{}, err
	}

	return cubicSpline{
		widths:    widths,
		factor:    factor,
		gradients: make([]float32, n-1),
		gamma:     make([]float32, n),
	}, nil
}

func (s *cubicSpline) builtFor(xs []int) bool {
	if len(xs) < 2 {
		return len(s.widths) == 0
	}
	if len(s.widths) != len(xs)-1 {
		return false
	}
	for i, w := range s.widths {
		if w != float32(xs[i+1]-xs[i]) {
			return false
		}
	}
	return true
}

func (s *cubicSpline) update(ys []float32) {
	n := len(s.gamma)
	if n < 2 {
		return
	}

	for i, w := range s.widths {
		s.gradients[i] = (core.Finite32(ys[i+1]) - core.Finite32(ys[i])) / w
	}

	// Right-hand side is assembled in gamma and solved in place.
	s.gamma[0] = s.gradients[0]
	for i := 1; i < n-1; i++ {
		s.gamma[i] = s.gradients[i] - s.gradients[i-1]
	}
	s.gamma[n-1] = -s.gradients[n-2]

	s.factor.Solve(s.gamma, s.gamma)
}

func (s *cubicSpline) fill(buf []float32, xs []int, ys []float32, sections []Section) {
	if len(s.gamma) < 2 {
		return
	}

	for _, sec := range sections {
		i := sec.Left
		h := s.widths[i]
		yl := core.Finite32(ys[i])
		g := s.gradients[i]
		gl := s.gamma[i]
		var gr float32
		if i+1 < len(s.gamma) {
			gr = s.gamma[i+1]
		}

		slope := g - h*(2*gl+gr)/6
		quad := gl / 2
		cubic := (gr - gl) / (6 * h)

		for k := 1; k <= sec.Gap; k++ {
			idx := xs[i] + k
			if idx >= len(buf) {
				return
			}
			t := float32(k)
			buf[idx] = core.Finite32(yl + t*(slope+t*(quad+t*cubic)))
		}
	}
}
