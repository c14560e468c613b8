package source

import "errors"

// ErrInvalidConfig reports a rejected sample rate, FFT size, channel count
// or window.
var ErrInvalidConfig = errors.New("invalid spectrum source configuration")
