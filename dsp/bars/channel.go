package bars

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bars/dsp/core"
	"github.com/cwbudde/algo-bars/dsp/interp"
	"github.com/cwbudde/algo-bars/dsp/spectrum"
)

const (
	// fallStep is added to a bar's fall speed on every decaying frame.
	fallStep = 0.028
	// memoryDecay is the weight of the previous output in the integrator.
	memoryDecay = 0.77
	// correctionFloor lifts the lowest bars in the frequency correction curve.
	correctionFloor = 0.05

	gainDown = 0.98
	gainUp   = 1.002

	minNormalizeFactor = 1e-12
	maxNormalizeFactor = 1e12
	maxMagnitude       = 1e12
)

// ChannelProcessor turns one channel's spectrum into bar magnitudes.
//
// Every supporting point is measured as the mean magnitude of its bin range,
// weighted towards high frequencies, smoothed with gravity-style decay and a
// short integrator, and scaled by a gain that adapts slowly so the loudest
// bars hover just below 1.
//
// A ChannelProcessor is not safe for concurrent use.
type ChannelProcessor struct {
	ip          *interp.Interpolator
	xs          []int
	ranges      []BinRange
	corrections []float32
	span        BinRange

	normalizeFactor float32
	sensitivity     float32

	prev []float32
	peak []float32
	fall []float32
	mem  []float32

	mags    []float64
	scratch spectrum.Scratch
}

// NewChannelProcessor builds the per-channel state for plan.
func NewChannelProcessor(plan Plan, mode interp.Mode, sensitivity float32) (*ChannelProcessor, error) {
	return newChannelProcessor(plan, mode, sensitivity, nil)
}

// newChannelProcessor takes over prev when it was built with mode for the
// plan's positions, keeping its spline factorization.
func newChannelProcessor(plan Plan, mode interp.Mode, sensitivity float32, prev *interp.Interpolator) (*ChannelProcessor, error) {
	if !(sensitivity > 0) {
		return nil, fmt.Errorf("%w: sensitivity must be > 0: %v", ErrInvalidConfig, sensitivity)
	}
	if len(plan.Points) != len(plan.Ranges) {
		return nil, fmt.Errorf("%w: %d points but %d bin ranges", ErrInvalidConfig, len(plan.Points), len(plan.Ranges))
	}
	if plan.TotalBars < 1 {
		return nil, fmt.Errorf("%w: total bars must be > 0: %d", ErrInvalidConfig, plan.TotalBars)
	}

	ip := prev
	if ip == nil || ip.Mode() != mode || !ip.ValidFor(plan.Positions()) {
		points := make([]interp.Point, len(plan.Points))
		copy(points, plan.Points)
		for i := range points {
			points[i].Y = 0
		}
		var err error
		if ip, err = interp.New(mode, points); err != nil {
			return nil, err
		}
	}

	n := plan.TotalBars
	cp := &ChannelProcessor{
		ip:              ip,
		xs:              ip.Positions(),
		ranges:          append([]BinRange(nil), plan.Ranges...),
		corrections:     make([]float32, len(plan.Points)),
		span:            plan.BinRange,
		normalizeFactor: 1,
		sensitivity:     sensitivity,
		prev:            make([]float32, n),
		peak:            make([]float32, n),
		fall:            make([]float32, n),
		mem:             make([]float32, n),
		mags:            make([]float64, plan.BinRange.Len()),
	}

	for i, x := range cp.xs {
		if x >= n {
			return nil, fmt.Errorf("%w: supporting point %d outside %d bars", ErrInvalidConfig, x, n)
		}
		r := cp.ranges[i]
		if !r.Empty() && (r.Start < cp.span.Start || r.End > cp.span.End) {
			return nil, fmt.Errorf("%w: bin range [%d,%d) outside [%d,%d)",
				ErrInvalidConfig, r.Start, r.End, cp.span.Start, cp.span.End)
		}
		pos := float32(x) / float32(n)
		cp.corrections[i] = pos*pos + correctionFloor
	}
	return cp, nil
}

// NormalizeFactor returns the current automatic gain.
func (cp *ChannelProcessor) NormalizeFactor() float32 { return cp.normalizeFactor }

// Points returns the supporting points with their latest magnitudes.
func (cp *ChannelProcessor) Points() []SupportingPoint { return cp.ip.Points() }

// Interpolator returns the interpolator that fills out.
func (cp *ChannelProcessor) Interpolator() *interp.Interpolator { return cp.ip }

// Process consumes one frame of spectrum and writes len(out) bars. out is
// expected to hold the plan's TotalBars entries.
//
// Bins missing from a short spectrum and non-finite magnitudes count as
// silence.
func (cp *ChannelProcessor) Process(spectrumFrame []complex128, out []float32) {
	cp.measure(spectrumFrame)

	ys := cp.ip.Values()
	silent := true
	overshoot := false

	for i, r := range cp.ranges {
		if r.Empty() {
			ys[i] = 0
			continue
		}

		sum := 0.0
		for _, m := range cp.mags[r.Start-cp.span.Start : r.End-cp.span.Start] {
			if !(m <= math.MaxFloat64) {
				continue
			}
			if m > 0 {
				silent = false
			}
			sum += m
		}
		raw := float32(sum / float64(r.Len()))

		x := cp.xs[i]
		candidate := core.Clamp32(raw*cp.normalizeFactor*cp.corrections[i], 0, maxMagnitude)

		if candidate < cp.prev[x] {
			fall := cp.fall[x]
			candidate = max(0, cp.peak[x]*(1-fall*fall*cp.sensitivity))
			cp.fall[x] = fall + fallStep
		} else {
			cp.peak[x] = candidate
			cp.fall[x] = 0
		}
		cp.prev[x] = candidate

		y := core.FlushDenormals32(cp.mem[x]*memoryDecay + candidate)
		y = min(y, maxMagnitude)
		cp.mem[x] = y
		ys[i] = y

		if y > 1 {
			overshoot = true
		}
	}

	switch {
	case overshoot:
		cp.normalizeFactor *= gainDown
	case !silent:
		cp.normalizeFactor *= gainUp
	}
	cp.normalizeFactor = core.Clamp32(cp.normalizeFactor, minNormalizeFactor, maxNormalizeFactor)

	cp.ip.Interpolate(out)
}

func (cp *ChannelProcessor) measure(frame []complex128) {
	n := 0
	if len(frame) > cp.span.Start {
		n = min(len(frame)-cp.span.Start, len(cp.mags))
		cp.scratch.MagnitudeInto(cp.mags[:n], frame[cp.span.Start:])
	}
	core.Zero(cp.mags[n:])
}
