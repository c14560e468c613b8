package decode

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader used for streaming.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// VorbisDecoder decodes Ogg Vorbis through oggvorbis.
type VorbisDecoder struct{}

// Decode implements [Decoder].
func (VorbisDecoder) Decode(rs io.ReadSeeker) (Source, error) {
	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	return newVorbisSource(dec)
}

type vorbisSource struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func newVorbisSource(dec oggReader) (*vorbisSource, error) {
	if dec.Channels() < 1 {
		return nil, fmt.Errorf("%w: vorbis stream with %d channels", ErrUnsupportedFormat, dec.Channels())
	}
	return &vorbisSource{dec: dec, sampleRate: dec.SampleRate(), channels: dec.Channels()}, nil
}

func (s *vorbisSource) SampleRate() int { return s.sampleRate }
func (s *vorbisSource) Channels() int   { return s.channels }
func (s *vorbisSource) Close() error    { return nil }

// ReadSamples reads whole frames. oggvorbis returns interleaved samples
// already in [-1, 1].
func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst)
	switch {
	case err == io.EOF:
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("vorbis: %w", err)
	}
	return n, nil
}
