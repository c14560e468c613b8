package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

const (
	wavFormatPCM = 1
	// wavUnsignedOffset is the zero level of 8-bit WAV samples.
	wavUnsignedOffset = 128
)

// WavDecoder decodes integer PCM WAV files through go-audio/wav.
type WavDecoder struct{}

// Decode implements [Decoder].
func (WavDecoder) Decode(rs io.ReadSeeker) (Source, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: WAV encoding %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	src, err := newPCMSource(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %d-bit WAV", err, dec.BitDepth)
	}
	if dec.BitDepth == 8 {
		src.offset = wavUnsignedOffset
	}
	return src, nil
}
