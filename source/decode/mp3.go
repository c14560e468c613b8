package decode

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Reader is the part of gomp3.Decoder used for streaming.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// MP3Decoder decodes MPEG-1/2 Layer III through go-mp3. Output is always
// stereo.
type MP3Decoder struct{}

// Decode implements [Decoder].
func (MP3Decoder) Decode(rs io.ReadSeeker) (Source, error) {
	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	return newMP3Source(dec), nil
}

type mp3Source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func newMP3Source(dec mp3Reader) *mp3Source {
	return &mp3Source{dec: dec, sampleRate: dec.SampleRate()}
}

func (s *mp3Source) SampleRate() int { return s.sampleRate }
func (s *mp3Source) Channels() int   { return 2 }
func (s *mp3Source) Close() error    { return nil }

// ReadSamples converts the 16-bit little-endian PCM go-mp3 produces.
func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.dec, s.buf)
	samples := n / 2
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) / 32768
	}

	switch {
	case err == io.ErrUnexpectedEOF:
		return samples, io.EOF
	case err == io.EOF:
		return 0, io.EOF
	case err != nil:
		return samples, fmt.Errorf("mp3: %w", err)
	}
	return samples, nil
}
