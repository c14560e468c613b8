package bars

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bars/dsp/interp"
	"github.com/cwbudde/algo-bars/dsp/spectrum"
	"github.com/cwbudde/algo-bars/internal/testutil"
)

const (
	testRate = 44100
	testFFT  = 2048
)

func newTestChannel(t *testing.T, cfg Config) (*ChannelProcessor, Plan) {
	t.Helper()
	plan := mustPlan(t, cfg, testRate, testFFT)
	cp, err := NewChannelProcessor(plan, cfg.Interpolation, cfg.Sensitivity)
	if err != nil {
		t.Fatalf("NewChannelProcessor: %v", err)
	}
	return cp, plan
}

func flat(amp float64) []complex128 {
	return testutil.FlatSpectrum(spectrum.OneSidedLen(testFFT), amp)
}

func TestNewChannelProcessorErrors(t *testing.T) {
	plan := mustPlan(t, DefaultConfig(), testRate, testFFT)
	if _, err := NewChannelProcessor(plan, interp.ModeLinear, 0); err == nil {
		t.Fatal("expected error for zero sensitivity")
	}
	if _, err := NewChannelProcessor(plan, interp.Mode(9), 0.2); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	broken := plan
	broken.Ranges = broken.Ranges[:1]
	if _, err := NewChannelProcessor(broken, interp.ModeLinear, 0.2); err == nil {
		t.Fatal("expected error for mismatched ranges")
	}
}

func TestGainControl(t *testing.T) {
	tests := []struct {
		name  string
		amp   float64
		check func(before, after float32) bool
	}{
		{"overshoot decreases", 1000, func(b, a float32) bool { return a < b }},
		{"silence keeps", 0, func(b, a float32) bool { return a == b }},
		{"moderate increases", 1e-4, func(b, a float32) bool { return a > b }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, plan := newTestChannel(t, DefaultConfig())
			out := make([]float32, plan.TotalBars)
			in := flat(tt.amp)
			for range 5 {
				before := cp.NormalizeFactor()
				cp.Process(in, out)
				if after := cp.NormalizeFactor(); !tt.check(before, after) {
					t.Fatalf("normalize factor %v -> %v", before, after)
				}
			}
		})
	}
}

func TestGainControlConverges(t *testing.T) {
	cp, plan := newTestChannel(t, DefaultConfig())
	out := make([]float32, plan.TotalBars)
	in := flat(50)
	for range 2000 {
		cp.Process(in, out)
	}
	peak := float32(0)
	for _, v := range out {
		peak = max(peak, v)
	}
	if peak > 1.1 || peak < 0.5 {
		t.Fatalf("steady-state peak = %v, want close to 1", peak)
	}
}

func TestDecayAfterSilence(t *testing.T) {
	cfg := ApplyOptions(WithInterpolation(interp.ModeLinear))
	cp, plan := newTestChannel(t, cfg)
	out := make([]float32, plan.TotalBars)

	for range 30 {
		cp.Process(flat(0.5), out)
	}

	silence := flat(0)
	const frames = 2000
	history := make([][]float32, 0, frames)
	candidates := make([][]float32, 0, frames)
	for range frames {
		cp.Process(silence, out)
		history = append(history, append([]float32(nil), out...))
		candidates = append(candidates, append([]float32(nil), cp.prev...))
	}

	for _, pt := range plan.Points {
		x := pt.X
		for f := 1; f < frames; f++ {
			if candidates[f][x] > candidates[f-1][x] {
				t.Fatalf("bar %d: candidate rose at frame %d: %v -> %v", x, f, candidates[f-1][x], candidates[f][x])
			}
		}

		settled := -1
		for f := 1; f < frames; f++ {
			if history[f][x] <= history[f-1][x] {
				settled = f
				break
			}
		}
		if settled < 0 {
			t.Fatalf("bar %d never stopped rising", x)
		}
		for f := settled + 1; f < frames; f++ {
			if history[f][x] > history[f-1][x] {
				t.Fatalf("bar %d rose again at frame %d: %v -> %v", x, f, history[f-1][x], history[f][x])
			}
		}
		if final := history[frames-1][x]; final != 0 {
			t.Fatalf("bar %d settled at %v, want exactly 0", x, final)
		}
	}
}

func TestSupportingPointsAuthoritative(t *testing.T) {
	for _, mode := range []interp.Mode{interp.ModeNone, interp.ModeLinear, interp.ModeCubicSpline} {
		t.Run(mode.String(), func(t *testing.T) {
			cp, plan := newTestChannel(t, ApplyOptions(WithInterpolation(mode), WithAmountBars(200)))
			out := make([]float32, plan.TotalBars)
			noise := testutil.DeterministicNoise(7, 1, len(flat(0)))
			in := make([]complex128, len(noise))
			for frame := range 20 {
				for k, v := range noise {
					in[k] = complex(v*float64(frame%4), 0)
				}
				cp.Process(in, out)
				for _, pt := range cp.Points() {
					if out[pt.X] != pt.Y {
						t.Fatalf("frame %d: out[%d] = %v, point says %v", frame, pt.X, out[pt.X], pt.Y)
					}
				}
			}
		})
	}
}

func TestProcessNonFiniteSpectrum(t *testing.T) {
	cp, plan := newTestChannel(t, DefaultConfig())
	out := make([]float32, plan.TotalBars)

	in := flat(1e300)
	for k := range in {
		switch k % 3 {
		case 0:
			in[k] = complex(math.NaN(), 0)
		case 1:
			in[k] = complex(math.Inf(1), math.Inf(-1))
		}
	}
	for range 50 {
		cp.Process(in, out)
		testutil.RequireFinite32(t, out)
	}
	if nf := cp.NormalizeFactor(); !(nf > 0) || math.IsInf(float64(nf), 0) {
		t.Fatalf("normalize factor = %v", nf)
	}

	allNaN := flat(0)
	for k := range allNaN {
		allNaN[k] = complex(math.NaN(), math.NaN())
	}
	before := cp.NormalizeFactor()
	cp.Process(allNaN, out)
	testutil.RequireFinite32(t, out)
	if cp.NormalizeFactor() > before {
		t.Fatalf("NaN spectrum raised gain: %v -> %v", before, cp.NormalizeFactor())
	}
}

func TestProcessShortSpectrum(t *testing.T) {
	cp, plan := newTestChannel(t, DefaultConfig())
	out := make([]float32, plan.TotalBars)

	cp.Process(nil, out)
	cp.Process(flat(1)[:plan.BinRange.Start+3], out)
	testutil.RequireFinite32(t, out)
	if out[plan.TotalBars-1] != 0 {
		t.Fatalf("high bar = %v, want 0 for missing bins", out[plan.TotalBars-1])
	}
}

func TestPaddingAnchorsStaySilent(t *testing.T) {
	cfg := ApplyOptions(WithAmountBars(12), WithPadding(PaddingBoth, 4), WithInterpolation(interp.ModeLinear))
	cp, plan := newTestChannel(t, cfg)
	out := make([]float32, plan.TotalBars)
	for range 10 {
		cp.Process(flat(0.3), out)
		if out[0] != 0 || out[plan.TotalBars-1] != 0 {
			t.Fatalf("padding edges = %v, %v", out[0], out[plan.TotalBars-1])
		}
		if out[4] <= 0 {
			t.Fatalf("first real bar = %v, want > 0", out[4])
		}
	}
}

func TestHighFrequencyCorrection(t *testing.T) {
	cp, plan := newTestChannel(t, ApplyOptions(WithInterpolation(interp.ModeNone)))
	out := make([]float32, plan.TotalBars)
	cp.Process(flat(0.1), out)

	first := plan.Points[0].X
	last := plan.Points[len(plan.Points)-1].X
	if out[last] <= out[first] {
		t.Fatalf("flat spectrum: bar %d = %v not above bar %d = %v", last, out[last], first, out[first])
	}
}
