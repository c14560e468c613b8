package decode

import "errors"

var (
	// ErrUnsupportedFormat reports a file extension or sample encoding that
	// no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrNotWavFile reports input that lacks a valid RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrNotAiffFile reports input that lacks a valid FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")
	// ErrInvalidDstSize reports a destination that does not hold whole frames.
	ErrInvalidDstSize = errors.New("dst size must be a multiple of channels")
)
