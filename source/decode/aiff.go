package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
)

// AiffDecoder decodes AIFF files through go-audio/aiff.
type AiffDecoder struct{}

// Decode implements [Decoder].
func (AiffDecoder) Decode(rs io.ReadSeeker) (Source, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrNotAiffFile
	}
	src, err := newPCMSource(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %d-bit AIFF", err, dec.BitDepth)
	}
	return src, nil
}
