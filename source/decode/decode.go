package decode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Source is a decoded audio stream.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the number
	// of float32 values written, not frames. n == 0 with io.EOF ends the
	// stream.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from seekable input.
type Decoder interface {
	Decode(rs io.ReadSeeker) (Source, error)
}

// DecoderFunc adapts a function to [Decoder].
type DecoderFunc func(rs io.ReadSeeker) (Source, error)

// Decode calls f(rs).
func (f DecoderFunc) Decode(rs io.ReadSeeker) (Source, error) { return f(rs) }

// Registry maps lower-case file extensions (with dot) to decoders.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// DefaultRegistry returns a registry with every built-in decoder.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".wav", WavDecoder{})
	r.Register(".wave", WavDecoder{})
	r.Register(".aif", AiffDecoder{})
	r.Register(".aiff", AiffDecoder{})
	r.Register(".mp3", MP3Decoder{})
	r.Register(".ogg", VorbisDecoder{})
	r.Register(".oga", VorbisDecoder{})
	return r
}

// Register adds or replaces the decoder for ext.
func (r *Registry) Register(ext string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[normalizeExt(ext)] = d
}

// Get returns the decoder for ext.
func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

// Extensions lists the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		out = append(out, ext)
	}
	slices.Sort(out)
	return out
}

// Open decodes the file at path. Closing the returned Source closes the file.
func (r *Registry) Open(path string) (Source, error) {
	ext := filepath.Ext(path)
	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	src, err := d.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &fileSource{Source: src, f: f}, nil
}

// Open decodes path with [DefaultRegistry].
func Open(path string) (Source, error) {
	return DefaultRegistry().Open(path)
}

type fileSource struct {
	Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
