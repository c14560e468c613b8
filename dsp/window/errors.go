package window

import (
	"errors"
	"fmt"
)

// ErrUnknownType reports a window name or value outside the supported set.
var ErrUnknownType = errors.New("unknown window type")

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and window must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}
