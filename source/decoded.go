package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-bars/source/decode"
)

// Decoded feeds an Analyzer from a decoded audio stream.
type Decoded struct {
	*Analyzer

	src decode.Source
	buf []float32
	eof bool
}

// NewDecoded wraps src. The channel count always follows src.
func NewDecoded(src decode.Source, fftSize int, opts ...Option) (*Decoded, error) {
	if src.Channels() < 1 {
		return nil, fmt.Errorf("%w: decoded stream has %d channels", ErrInvalidConfig, src.Channels())
	}
	opts = append(opts, WithChannels(src.Channels()))
	a, err := NewAnalyzer(src.SampleRate(), fftSize, opts...)
	if err != nil {
		return nil, err
	}
	return &Decoded{Analyzer: a, src: src}, nil
}

// OpenFile opens path with [decode.Open] and wraps it.
func OpenFile(path string, fftSize int, opts ...Option) (*Decoded, error) {
	src, err := decode.Open(path)
	if err != nil {
		return nil, err
	}
	d, err := NewDecoded(src, fftSize, opts...)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	return d, nil
}

// Advance reads up to frames frames and pushes them into the analyzer. It
// returns io.EOF once the stream is exhausted; frames read before the end
// are still pushed.
func (d *Decoded) Advance(frames int) error {
	if d.eof {
		return io.EOF
	}
	if frames <= 0 {
		return nil
	}
	want := frames * d.channels
	if cap(d.buf) < want {
		d.buf = make([]float32, want)
	}
	buf := d.buf[:want]

	got := 0
	for got < want {
		n, err := d.src.ReadSamples(buf[got:])
		got += n
		if errors.Is(err, io.EOF) {
			d.eof = true
			break
		}
		if err != nil {
			d.Push(buf[:got])
			return fmt.Errorf("read decoded audio: %w", err)
		}
		if n == 0 {
			break
		}
	}
	d.Push(buf[:got])
	if d.eof {
		return io.EOF
	}
	return nil
}

// Close closes the underlying stream.
func (d *Decoded) Close() error {
	return d.src.Close()
}
