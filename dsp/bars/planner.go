package bars

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bars/dsp/interp"
	"github.com/cwbudde/algo-bars/dsp/spectrum"
)

// SupportingPoint is a bar index with a measured magnitude.
type SupportingPoint = interp.Point

// BinRange is a half-open range [Start, End) of absolute FFT bin indices.
type BinRange struct {
	Start int
	End   int
}

// Len returns the number of bins in r.
func (r BinRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether r covers no bins.
func (r BinRange) Empty() bool { return r.Len() == 0 }

// Plan maps supporting points onto FFT bins.
//
// Points and Ranges are parallel. Padding anchors carry an empty range.
type Plan struct {
	Points    []SupportingPoint
	Ranges    []BinRange
	TotalBars int
	// BinRange is the span of FFT bins inside the configured frequency window.
	BinRange BinRange
}

// Positions returns the bar index of every supporting point.
func (p Plan) Positions() []int {
	xs := make([]int, len(p.Points))
	for i, pt := range p.Points {
		xs[i] = pt.X
	}
	return xs
}

// PlanSupportingPoints distributes cfg.AmountBars bars over the FFT bins of
// the configured frequency window. Bar boundaries follow the mel scale over
// the audible range, so low bars cover few bins and high bars many. Bars
// that would not get a bin range of their own are skipped and left to the
// interpolator.
func PlanSupportingPoints(cfg Config, sampleRate, fftSize int) (Plan, error) {
	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}
	binHz, err := spectrum.BinHz(sampleRate, fftSize)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	start, end := spectrum.BinRange(cfg.FreqRange.Low, cfg.FreqRange.High, binHz, spectrum.OneSidedLen(fftSize))
	amountBins := end - start
	if amountBins <= 0 {
		return Plan{}, fmt.Errorf("%w: no FFT bins in [%g, %g] Hz at %d Hz / %d bins",
			ErrInvalidFrequencyRange, cfg.FreqRange.Low, cfg.FreqRange.High, sampleRate, fftSize)
	}

	n := cfg.AmountBars
	points := make([]SupportingPoint, 0, n+2)
	ranges := make([]BinRange, 0, n+2)

	prevEnd := 0
	for i := range n {
		endBin := amountBins
		if i < n-1 {
			weight := spectrum.MelLerp(spectrum.MinAudibleHz, spectrum.MaxAudibleHz, float64(i+1)/float64(n+1))
			endBin = int(math.Ceil(weight / spectrum.MaxAudibleHz * float64(amountBins)))
			endBin = min(max(endBin, 0), amountBins)
		}
		if endBin <= prevEnd {
			continue
		}
		r := BinRange{Start: start + prevEnd, End: start + endBin}
		if len(ranges) > 0 && ranges[len(ranges)-1] == r {
			continue
		}
		points = append(points, SupportingPoint{X: i})
		ranges = append(ranges, r)
		prevEnd = endBin
	}

	if n > 1 && len(ranges) < 2 {
		return Plan{}, fmt.Errorf("%w: %d bars need at least 2 FFT bins in [%g, %g] Hz, got %d",
			ErrInvalidFrequencyRange, n, cfg.FreqRange.Low, cfg.FreqRange.High, amountBins)
	}

	if last := len(points) - 1; points[last].X != n-1 {
		points = append(points, SupportingPoint{X: n - 1})
		ranges = append(ranges, ranges[last])
	}

	if cfg.Distribution == DistributionUniform {
		k := len(points)
		for j := 0; j < k-1; j++ {
			points[j].X = j * n / k
		}
	}

	if lead := cfg.Padding.leading(); lead > 0 {
		for i := range points {
			points[i].X += lead
		}
		points = append([]SupportingPoint{{X: 0}}, points...)
		ranges = append([]BinRange{{}}, ranges...)
	}
	if trail := cfg.Padding.trailing(); trail > 0 {
		points = append(points, SupportingPoint{X: points[len(points)-1].X + trail})
		ranges = append(ranges, BinRange{})
	}

	return Plan{
		Points:    points,
		Ranges:    ranges,
		TotalBars: cfg.TotalBars(),
		BinRange:  BinRange{Start: start, End: end},
	}, nil
}
