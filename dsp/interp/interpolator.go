package interp

import (
	"fmt"

	"github.com/cwbudde/algo-bars/dsp/core"
)

// Point is a supporting point: bar index X with magnitude Y.
type Point struct {
	X int
	Y float32
}

// Section is a gap between supporting point Left and Left+1 that holds Gap
// bars without a supporting point of their own.
type Section struct {
	Left int
	Gap  int
}

// Interpolator fills a bar buffer from a fixed set of supporting points.
//
// It is not safe for concurrent use.
type Interpolator struct {
	mode     Mode
	xs       []int
	ys       []float32
	sections []Section
	spline   cubicSpline
}

// New builds an interpolator for points. Zero points are allowed and leave
// every buffer untouched. The cubic spline system is factored here once.
func New(mode Mode, points []Point) (*Interpolator, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	ip := &Interpolator{
		mode: mode,
		xs:   make([]int, len(points)),
		ys:   make([]float32, len(points)),
	}
	for i, p := range points {
		if p.X < 0 || (i > 0 && p.X <= points[i-1].X) {
			return nil, fmt.Errorf("%w: index %d has x=%d", ErrUnsortedPoints, i, p.X)
		}
		ip.xs[i] = p.X
		ip.ys[i] = p.Y
	}

	for i := 0; i+1 < len(ip.xs); i++ {
		if gap := ip.xs[i+1] - ip.xs[i] - 1; gap > 0 {
			ip.sections = append(ip.sections, Section{Left: i, Gap: gap})
		}
	}

	if mode == ModeCubicSpline {
		spline, err := newCubicSpline(ip.xs)
		if err != nil {
			return nil, err
		}
		ip.spline = spline
	}
	return ip, nil
}

// Mode returns the interpolation variant.
func (ip *Interpolator) Mode() Mode { return ip.mode }

// Len returns the number of supporting points.
func (ip *Interpolator) Len() int { return len(ip.xs) }

// Values returns the supporting point magnitudes for in-place update before
// the next [Interpolator.Interpolate] call.
func (ip *Interpolator) Values() []float32 { return ip.ys }

// Positions returns a copy of the supporting point bar indices.
func (ip *Interpolator) Positions() []int {
	return append([]int(nil), ip.xs...)
}

// Points returns a copy of the supporting points with their current values.
func (ip *Interpolator) Points() []Point {
	out := make([]Point, len(ip.xs))
	for i := range ip.xs {
		out[i] = Point{X: ip.xs[i], Y: ip.ys[i]}
	}
	return out
}

// Sections returns a copy of the gaps between supporting points.
func (ip *Interpolator) Sections() []Section {
	return append([]Section(nil), ip.sections...)
}

// ValidFor reports whether the cached state, including the spline
// factorization, was built for exactly these positions.
func (ip *Interpolator) ValidFor(positions []int) bool {
	if len(positions) != len(ip.xs) {
		return false
	}
	for i, x := range positions {
		if ip.xs[i] != x {
			return false
		}
	}
	if ip.mode == ModeCubicSpline {
		return ip.spline.builtFor(positions)
	}
	return true
}

// Interpolate writes the bar buffer. Supporting point indices receive their
// exact value. Linear and cubic modes also fill every gap and hold the first
// and last value over the leading and trailing bars; ModeNone leaves those
// bars as they are. Indices past len(buf) are ignored.
func (ip *Interpolator) Interpolate(buf []float32) {
	if len(ip.xs) == 0 || len(buf) == 0 {
		return
	}

	switch ip.mode {
	case ModeNone:
	case ModeLinear:
		ip.fillEdges(buf)
		ip.linear(buf)
	case ModeCubicSpline:
		ip.fillEdges(buf)
		ip.spline.update(ip.ys)
		ip.spline.fill(buf, ip.xs, ip.ys, ip.sections)
	}
	ip.writePoints(buf)
}

func (ip *Interpolator) writePoints(buf []float32) {
	for i, x := range ip.xs {
		if x >= len(buf) {
			return
		}
		buf[x] = core.Finite32(ip.ys[i])
	}
}

func (ip *Interpolator) fillEdges(buf []float32) {
	first := core.Finite32(ip.ys[0])
	for i := 0; i < ip.xs[0] && i < len(buf); i++ {
		buf[i] = first
	}
	last := core.Finite32(ip.ys[len(ip.ys)-1])
	for i := ip.xs[len(ip.xs)-1] + 1; i < len(buf); i++ {
		buf[i] = last
	}
}

func (ip *Interpolator) linear(buf []float32) {
	for _, s := range ip.sections {
		left := ip.xs[s.Left]
		ly := core.Finite32(ip.ys[s.Left])
		ry := core.Finite32(ip.ys[s.Left+1])
		denom := float32(s.Gap + 1)
		for k := 1; k <= s.Gap; k++ {
			idx := left + k
			if idx >= len(buf) {
				return
			}
			t := float32(k) / denom
			buf[idx] = t*ry + (1-t)*ly
		}
	}
}
