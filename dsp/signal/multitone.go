package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Tone is one oscillator of a [Multitone]. Amplitude and frequency are
// slowly modulated so that bar displays have something to follow.
type Tone struct {
	Freq float64
	Amp  float64
	// AmpMod is the modulation depth in [0,1]; AmpModRate its rate in Hz.
	AmpMod     float64
	AmpModRate float64
	// FreqMod is the vibrato depth in Hz; FreqModRate its rate in Hz.
	FreqMod     float64
	FreqModRate float64
}

// DemoTones returns a bass-heavy mix spread across the audible range.
func DemoTones() []Tone {
	return []Tone{
		{Freq: 55, Amp: 0.8, AmpMod: 0.9, AmpModRate: 2.1, FreqMod: 10, FreqModRate: 2.1},
		{Freq: 80, Amp: 0.6, AmpMod: 0.8, AmpModRate: 1.05},
		{Freq: 150, Amp: 0.4, AmpMod: 0.7, AmpModRate: 3.3},
		{Freq: 220, Amp: 0.35, AmpMod: 0.6, AmpModRate: 1.7},
		{Freq: 440, Amp: 0.3, AmpMod: 0.8, AmpModRate: 0.8},
		{Freq: 554, Amp: 0.25, AmpMod: 0.7, AmpModRate: 1.2},
		{Freq: 660, Amp: 0.25, AmpMod: 0.75, AmpModRate: 0.6},
		{Freq: 880, Amp: 0.2, AmpMod: 0.6, AmpModRate: 1.5},
		{Freq: 1200, Amp: 0.15, AmpMod: 0.5, AmpModRate: 2.5},
		{Freq: 1800, Amp: 0.1, AmpMod: 0.6, AmpModRate: 3.0},
		{Freq: 2400, Amp: 0.08, AmpMod: 0.5, AmpModRate: 1.8},
		{Freq: 3600, Amp: 0.06, AmpMod: 0.4, AmpModRate: 2.2},
		{Freq: 5000, Amp: 0.04, AmpMod: 0.3, AmpModRate: 4.0},
		{Freq: 8000, Amp: 0.03, AmpMod: 0.4, AmpModRate: 5.5},
		{Freq: 12000, Amp: 0.02, AmpMod: 0.3, AmpModRate: 3.5},
	}
}

// MultitoneOption configures a Multitone.
type MultitoneOption func(*Multitone)

// WithNoiseSeed seeds the background noise.
func WithNoiseSeed(seed int64) MultitoneOption {
	return func(m *Multitone) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoiseLevel sets the peak amplitude of the background noise before
// the output gain. Negative values are ignored.
func WithNoiseLevel(level float64) MultitoneOption {
	return func(m *Multitone) {
		if level >= 0 {
			m.noise = level
		}
	}
}

// WithGain sets the output gain. Negative values are ignored.
func WithGain(gain float64) MultitoneOption {
	return func(m *Multitone) {
		if gain >= 0 {
			m.gain = gain
		}
	}
}

// Multitone streams a sum of modulated sines plus a little noise. Phase
// carries over between calls, so consecutive reads form one signal.
type Multitone struct {
	sampleRate float64
	tones      []Tone
	phases     []float64
	pos        int64
	noise      float64
	gain       float64
	rng        *rand.Rand
}

// NewMultitone creates a generator for tones at sampleRate.
func NewMultitone(sampleRate float64, tones []Tone, opts ...MultitoneOption) (*Multitone, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("multitone sample rate must be > 0: %f", sampleRate)
	}
	for i, t := range tones {
		if t.Freq <= 0 || t.Freq >= sampleRate/2 {
			return nil, fmt.Errorf("multitone tone %d frequency must be in (0, %g): %g", i, sampleRate/2, t.Freq)
		}
		if t.AmpMod < 0 || t.AmpMod > 1 {
			return nil, fmt.Errorf("multitone tone %d modulation depth must be in [0,1]: %g", i, t.AmpMod)
		}
	}
	m := &Multitone{
		sampleRate: sampleRate,
		tones:      append([]Tone(nil), tones...),
		phases:     make([]float64, len(tones)),
		noise:      0.01,
		gain:       0.3,
		rng:        rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// SampleRate returns the output sample rate in Hz.
func (m *Multitone) SampleRate() float64 { return m.sampleRate }

// Read fills dst with the next len(dst) samples.
func (m *Multitone) Read(dst []float64) {
	dt := 1 / m.sampleRate
	for i := range dst {
		t := float64(m.pos) * dt
		sample := 0.0
		for j := range m.tones {
			tone := &m.tones[j]
			amp := tone.Amp * (1 - tone.AmpMod + tone.AmpMod*math.Abs(math.Sin(2*math.Pi*tone.AmpModRate*t)))
			freq := tone.Freq + tone.FreqMod*math.Sin(2*math.Pi*tone.FreqModRate*t)
			sample += amp * math.Sin(m.phases[j])
			m.phases[j] = math.Mod(m.phases[j]+2*math.Pi*freq*dt, 2*math.Pi)
		}
		sample += (m.rng.Float64()*2 - 1) * m.noise
		dst[i] = sample * m.gain
		m.pos++
	}
}

// Peak returns an upper bound for the absolute value of any sample.
func (m *Multitone) Peak() float64 {
	sum := m.noise
	for _, t := range m.tones {
		sum += math.Abs(t.Amp)
	}
	return sum * m.gain
}
