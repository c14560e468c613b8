package source

import "fmt"

// Looped feeds an Analyzer from a mono buffer played over and over. Every
// channel carries the same signal.
type Looped struct {
	*Analyzer

	loop  []float64
	pos   int
	inter []float32
}

// NewLooped returns a source that repeats loop forever.
func NewLooped(sampleRate, fftSize int, loop []float64, opts ...Option) (*Looped, error) {
	if len(loop) == 0 {
		return nil, fmt.Errorf("%w: empty loop", ErrInvalidConfig)
	}
	a, err := NewAnalyzer(sampleRate, fftSize, opts...)
	if err != nil {
		return nil, err
	}
	return &Looped{Analyzer: a, loop: loop}, nil
}

// Advance pushes the next frames frames of the loop into the analyzer.
func (l *Looped) Advance(frames int) {
	if frames <= 0 {
		return
	}
	if cap(l.inter) < frames*l.channels {
		l.inter = make([]float32, frames*l.channels)
	}
	inter := l.inter[:frames*l.channels]

	for f := range frames {
		v := float32(l.loop[l.pos])
		for ch := range l.channels {
			inter[f*l.channels+ch] = v
		}
		l.pos++
		if l.pos == len(l.loop) {
			l.pos = 0
		}
	}
	l.Push(inter)
}
