package bars

import (
	"fmt"

	"github.com/cwbudde/algo-bars/dsp/buffer"
	"github.com/cwbudde/algo-bars/dsp/interp"
)

// SpectrumSource provides one complex spectrum per channel and tick.
//
// FFTOut must return Channels() spectra of at least FFTSize()/2+1 bins each.
type SpectrumSource interface {
	SampleRate() int
	FFTSize() int
	Channels() int
	FFTOut() [][]complex128
}

// BarProcessor owns the per-channel processors and their output bars.
type BarProcessor struct {
	sampleRate int
	fftSize    int

	cfg      Config
	plan     Plan
	channels []*ChannelProcessor
	bars     *buffer.Grid
}

// New builds a BarProcessor for spectra of fftSize points sampled at
// sampleRate.
func New(cfg Config, sampleRate, fftSize, channels int) (*BarProcessor, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channels must be > 0: %d", ErrInvalidConfig, channels)
	}
	bp := &BarProcessor{
		sampleRate: sampleRate,
		fftSize:    fftSize,
		channels:   make([]*ChannelProcessor, channels),
	}
	if err := bp.rebuild(cfg); err != nil {
		return nil, err
	}
	return bp, nil
}

// NewFromSource builds a BarProcessor matching src.
func NewFromSource(cfg Config, src SpectrumSource) (*BarProcessor, error) {
	return New(cfg, src.SampleRate(), src.FFTSize(), src.Channels())
}

// rebuild prepares a complete new state before swapping it in, so a failure
// leaves the processor as it was.
//
// Interpolators whose positions and mode are unchanged are carried over
// with their values cleared.
func (bp *BarProcessor) rebuild(cfg Config) error {
	cfg = cfg.clone()
	plan, err := PlanSupportingPoints(cfg, bp.sampleRate, bp.fftSize)
	if err != nil {
		return err
	}
	channels := make([]*ChannelProcessor, len(bp.channels))
	for ch := range channels {
		var prev *interp.Interpolator
		if old := bp.channels[ch]; old != nil {
			prev = old.ip
		}
		cp, err := newChannelProcessor(plan, cfg.Interpolation, cfg.Sensitivity, prev)
		if err != nil {
			return err
		}
		channels[ch] = cp
	}
	for _, cp := range channels {
		clear(cp.ip.Values())
	}

	bp.cfg = cfg
	bp.plan = plan
	bp.channels = channels
	bp.bars = buffer.NewGrid(len(channels), plan.TotalBars)
	return nil
}

// ProcessBars runs one frame from src through every channel and returns the
// bars, one row per channel. The rows are owned by bp and overwritten by the
// next call.
func (bp *BarProcessor) ProcessBars(src SpectrumSource) [][]float32 {
	return bp.ProcessSpectra(src.FFTOut())
}

// ProcessSpectra is [BarProcessor.ProcessBars] for spectra already at hand.
// Channels without a spectrum keep their previous bars.
func (bp *BarProcessor) ProcessSpectra(spectra [][]complex128) [][]float32 {
	for ch, cp := range bp.channels {
		if ch >= len(spectra) {
			break
		}
		cp.Process(spectra[ch], bp.bars.Row(ch))
	}
	return bp.bars.Rows()
}

// Bars returns the bars of the last processed frame.
func (bp *BarProcessor) Bars() [][]float32 { return bp.bars.Rows() }

// Config returns the active configuration.
func (bp *BarProcessor) Config() Config { return bp.cfg.clone() }

// Plan returns the active supporting point plan.
func (bp *BarProcessor) Plan() Plan { return bp.plan }

// Channels returns the number of channels.
func (bp *BarProcessor) Channels() int { return len(bp.channels) }

// SampleRate returns the sample rate the plan was built for.
func (bp *BarProcessor) SampleRate() int { return bp.sampleRate }

// FFTSize returns the FFT size the plan was built for.
func (bp *BarProcessor) FFTSize() int { return bp.fftSize }

// NormalizeFactors returns the automatic gain of every channel.
func (bp *BarProcessor) NormalizeFactors() []float32 {
	out := make([]float32, len(bp.channels))
	for ch, cp := range bp.channels {
		out[ch] = cp.NormalizeFactor()
	}
	return out
}

// SetAmountBars rebuilds the processor for n bars. Smoothing and gain
// history is discarded.
func (bp *BarProcessor) SetAmountBars(n int) error {
	cfg := bp.cfg
	cfg.AmountBars = n
	return bp.Reconfigure(cfg)
}

// Reconfigure rebuilds the processor for cfg. On error the previous
// configuration stays active.
func (bp *BarProcessor) Reconfigure(cfg Config) error {
	return bp.rebuild(cfg)
}
