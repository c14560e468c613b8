package source

import (
	"fmt"

	"github.com/cwbudde/algo-bars/dsp/core"
	"github.com/cwbudde/algo-bars/dsp/signal"
)

// Simulated feeds an Analyzer from the demo multitone generator. Every
// channel carries the same signal.
type Simulated struct {
	*Analyzer

	gen   *signal.Multitone
	mono  []float64
	inter []float32
}

// NewSimulated returns a simulated source playing tones, or
// [signal.DemoTones] when tones is nil. Tones at or above Nyquist are
// dropped.
func NewSimulated(sampleRate, fftSize int, tones []signal.Tone, opts ...Option) (*Simulated, error) {
	a, err := NewAnalyzer(sampleRate, fftSize, opts...)
	if err != nil {
		return nil, err
	}
	if tones == nil {
		tones = signal.DemoTones()
	}
	audible := make([]signal.Tone, 0, len(tones))
	for _, t := range tones {
		if t.Freq < float64(sampleRate)/2 {
			audible = append(audible, t)
		}
	}
	g := signal.NewGenerator(core.WithSampleRate(float64(sampleRate)))
	gen, err := g.Multitone(audible)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &Simulated{Analyzer: a, gen: gen}, nil
}

// Advance generates frames more frames and pushes them into the analyzer.
func (s *Simulated) Advance(frames int) {
	if frames <= 0 {
		return
	}
	if cap(s.mono) < frames {
		s.mono = make([]float64, frames)
		s.inter = make([]float32, frames*s.channels)
	}
	mono := s.mono[:frames]
	inter := s.inter[:frames*s.channels]

	s.gen.Read(mono)
	for f, v := range mono {
		for ch := range s.channels {
			inter[f*s.channels+ch] = float32(v)
		}
	}
	s.Push(inter)
}
