package bars

import "errors"

var (
	// ErrInvalidFrequencyRange reports a frequency window that is malformed
	// or leaves no usable FFT bins at the given sample rate and FFT size.
	ErrInvalidFrequencyRange = errors.New("invalid frequency range")
	// ErrPaddingOverflow reports a padded bar count above MaxBars.
	ErrPaddingOverflow = errors.New("padded bar count overflows")
	// ErrInvalidConfig reports any other rejected configuration value.
	ErrInvalidConfig = errors.New("invalid bar processor configuration")
)
