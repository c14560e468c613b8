package source

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-bars/dsp/core"
	"github.com/cwbudde/algo-bars/dsp/filter/biquad"
	"github.com/cwbudde/algo-bars/dsp/spectrum"
	"github.com/cwbudde/algo-bars/dsp/window"
	"github.com/cwbudde/algo-bars/stats/level"
)

const minFFTSize = 4

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	window   window.Type
	channels int
	highPass float64
}

// WithWindow selects the analysis window. Default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithChannels sets the number of interleaved input channels. Default is 2.
func WithChannels(n int) Option {
	return func(c *config) {
		c.channels = n
	}
}

// WithHighPass runs every channel through a Butterworth highpass at hz
// before buffering, removing DC offset and rumble. 0 disables it, which is
// the default.
func WithHighPass(hz float64) Option {
	return func(c *config) {
		c.highPass = hz
	}
}

// Analyzer keeps the newest FFTSize samples of every channel and turns them
// into one-sided spectra on demand.
//
// Push may be called from any goroutine. FFTOut reuses its output slices
// and must be called from a single goroutine.
type Analyzer struct {
	sampleRate int
	fftSize    int
	channels   int
	win        *window.Table
	plan       *algofft.Plan[complex128]
	filters    []*biquad.Section

	mu     sync.Mutex
	rings  [][]float64
	write  int
	filled int

	frame    []float64
	windowed []float64
	input    []complex128
	output   []complex128
	spectra  [][]complex128
	levels   []level.Level
}

// IsPowerOf2 reports whether n is a positive power of two. Analyzer only
// accepts such transform lengths.
func IsPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// NewAnalyzer returns an Analyzer for fftSize-point transforms at sampleRate.
func NewAnalyzer(sampleRate, fftSize int, opts ...Option) (*Analyzer, error) {
	cfg := config{window: window.TypeHann, channels: 2}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidConfig, sampleRate)
	}
	if fftSize < minFFTSize || !IsPowerOf2(fftSize) {
		return nil, fmt.Errorf("%w: fft size must be a power of two >= %d: %d", ErrInvalidConfig, minFFTSize, fftSize)
	}
	if cfg.channels < 1 {
		return nil, fmt.Errorf("%w: channels must be > 0: %d", ErrInvalidConfig, cfg.channels)
	}

	win, err := window.NewTable(cfg.window, fftSize, window.WithPeriodic())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyzer init fft plan: %w", err)
	}

	a := &Analyzer{
		sampleRate: sampleRate,
		fftSize:    fftSize,
		channels:   cfg.channels,
		win:        win,
		plan:       plan,
		rings:      make([][]float64, cfg.channels),
		frame:      make([]float64, fftSize),
		windowed:   make([]float64, fftSize),
		input:      make([]complex128, fftSize),
		output:     make([]complex128, fftSize),
		spectra:    make([][]complex128, cfg.channels),
		levels:     make([]level.Level, cfg.channels),
	}
	if cfg.highPass != 0 {
		coeffs, err := biquad.Highpass(cfg.highPass, biquad.ButterworthQ, float64(sampleRate))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		a.filters = make([]*biquad.Section, cfg.channels)
		for ch := range a.filters {
			a.filters[ch] = biquad.NewSection(coeffs)
		}
	}
	for ch := range a.rings {
		a.rings[ch] = make([]float64, fftSize)
		a.spectra[ch] = make([]complex128, spectrum.OneSidedLen(fftSize))
	}
	return a, nil
}

// SampleRate returns the input sample rate in Hz.
func (a *Analyzer) SampleRate() int { return a.sampleRate }

// FFTSize returns the transform length.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// Channels returns the number of input channels.
func (a *Analyzer) Channels() int { return a.channels }

// Window returns the analysis window type.
func (a *Analyzer) Window() window.Type { return a.win.Type() }

// Push appends interleaved samples. A trailing partial frame is dropped.
// Non-finite samples are stored as silence.
func (a *Analyzer) Push(interleaved []float32) {
	frames := len(interleaved) / a.channels
	if frames == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Only the newest fftSize frames can survive. The highpass still has to
	// see the dropped ones to keep its state continuous.
	if frames > a.fftSize {
		drop := frames - a.fftSize
		if a.filters != nil {
			for f := range drop {
				for ch, flt := range a.filters {
					flt.ProcessSample(float64(core.Finite32(interleaved[f*a.channels+ch])))
				}
			}
		}
		interleaved = interleaved[drop*a.channels:]
		frames = a.fftSize
	}
	for f := range frames {
		base := f * a.channels
		for ch, ring := range a.rings {
			x := float64(core.Finite32(interleaved[base+ch]))
			if a.filters != nil {
				x = a.filters[ch].ProcessSample(x)
			}
			ring[a.write] = x
		}
		a.write++
		if a.write == a.fftSize {
			a.write = 0
		}
	}
	a.filled = min(a.filled+frames, a.fftSize)
}

// Buffered returns how many frames of the analysis window hold pushed
// audio, at most FFTSize.
func (a *Analyzer) Buffered() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.filled
}

// Reset discards all buffered audio.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, ring := range a.rings {
		core.Zero(ring)
	}
	for _, flt := range a.filters {
		flt.Reset()
	}
	a.write = 0
	a.filled = 0
}

// FFTOut returns one spectrum of FFTSize/2+1 bins per channel, computed
// from the newest FFTSize frames. Frames not yet pushed count as silence.
// A sinusoid of amplitude A centred on a bin yields a magnitude of about A.
//
// The returned slices are overwritten by the next call.
func (a *Analyzer) FFTOut() [][]complex128 {
	for ch := range a.spectra {
		a.snapshot(ch)
		a.levels[ch] = level.Measure(a.frame)
		// Buffer lengths are fixed to FFTSize at construction, so these
		// calls cannot fail on valid state.
		if err := a.win.ApplyTo(a.windowed, a.frame); err != nil {
			panic("source: analyzer window: " + err.Error())
		}
		for i, v := range a.windowed {
			a.input[i] = complex(v, 0)
		}
		if err := a.plan.Forward(a.output, a.input); err != nil {
			panic("source: analyzer fft: " + err.Error())
		}
		copy(a.spectra[ch], a.output)
	}
	return a.spectra
}

// Levels returns the level of every channel's analysis window as of the
// last FFTOut call. The slice is overwritten by the next call.
func (a *Analyzer) Levels() []level.Level { return a.levels }

// snapshot copies channel ch oldest-first into a.frame.
func (a *Analyzer) snapshot(ch int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ring := a.rings[ch]
	n := copy(a.frame, ring[a.write:])
	copy(a.frame[n:], ring[:a.write])
}
