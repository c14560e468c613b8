package decode

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// pcmReader is the part of the go-audio WAV and AIFF decoders used for
// streaming, so tests can substitute fakes.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// pcmSource converts go-audio integer PCM to float32.
type pcmSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	scale      float32
	// offset is subtracted before scaling. 8-bit WAV stores unsigned
	// samples centred on 128.
	offset int
	intBuf *goaudio.IntBuffer
}

func newPCMSource(dec pcmReader, sampleRate, channels, bitDepth int) (*pcmSource, error) {
	scale, ok := pcmScale(bitDepth)
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return &pcmSource{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      scale,
	}, nil
}

func pcmScale(bitDepth int) (float32, bool) {
	switch bitDepth {
	case 8:
		return 1.0 / 128, true
	case 16:
		return 1.0 / 32768, true
	case 24:
		return 1.0 / 8388608, true
	case 32:
		return 1.0 / 2147483648, true
	default:
		return 0, false
	}
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v-s.offset) * s.scale
	}
	return n, err
}
