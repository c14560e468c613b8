package interp

import (
	"fmt"
	"math"
)

// Cholesky is the factor L of a symmetric positive-definite tridiagonal
// matrix A = L·Lᵀ. L is lower bidiagonal, so only its diagonal and
// sub-diagonal are stored.
type Cholesky struct {
	diag []float32
	sub  []float32
}

// FactorTridiagonal factors the symmetric tridiagonal matrix with main
// diagonal diag and off-diagonal off. len(off) must be len(diag)-1.
func FactorTridiagonal(diag, off []float32) (Cholesky, error) {
	n := len(diag)
	if n == 0 {
		if len(off) != 0 {
			return Cholesky{}, errDimensionMismatch
		}
		return Cholesky{}, nil
	}
	if len(off) != n-1 {
		return Cholesky{}, fmt.Errorf("%w: diag=%d off=%d", errDimensionMismatch, n, len(off))
	}

	c := Cholesky{
		diag: make([]float32, n),
		sub:  make([]float32, n-1),
	}

	pivot := diag[0]
	for i := 0; i < n; i++ {
		if i > 0 {
			c.sub[i-1] = off[i-1] / c.diag[i-1]
			pivot = diag[i] - c.sub[i-1]*c.sub[i-1]
		}
		if !(pivot > 0) {
			return Cholesky{}, fmt.Errorf("%w: pivot %d = %v", errNotPositiveDefinite, i, pivot)
		}
		c.diag[i] = float32(math.Sqrt(float64(pivot)))
	}
	return c, nil
}

// Size returns the dimension of the factored matrix.
func (c Cholesky) Size() int {
	return len(c.diag)
}

// Solve writes x with A·x = rhs into dst. dst may alias rhs.
// Both slices must have length [Cholesky.Size].
func (c Cholesky) Solve(dst, rhs []float32) {
	n := len(c.diag)
	if n == 0 {
		return
	}

	// L·z = rhs
	dst[0] = rhs[0] / c.diag[0]
	for i := 1; i < n; i++ {
		dst[i] = (rhs[i] - c.sub[i-1]*dst[i-1]) / c.diag[i]
	}

	// Lᵀ·x = z
	dst[n-1] /= c.diag[n-1]
	for i := n - 2; i >= 0; i-- {
		dst[i] = (dst[i] - c.sub[i]*dst[i+1]) / c.diag[i]
	}
}
