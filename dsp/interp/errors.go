package interp

import "errors"

var (
	// ErrUnsortedPoints reports supporting points that are negative or not
	// strictly increasing in X.
	ErrUnsortedPoints = errors.New("supporting points must be non-negative and strictly increasing")
	// ErrUnknownMode reports an interpolation mode outside the closed set.
	ErrUnknownMode = errors.New("unknown interpolation mode")

	errNotPositiveDefinite = errors.New("tridiagonal matrix is not positive definite")
	errDimensionMismatch   = errors.New("tridiagonal off-diagonal length must be len(diag)-1")
)
