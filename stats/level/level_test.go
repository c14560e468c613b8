package level

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestMeasure(t *testing.T) {
	tests := []struct {
		name     string
		signal   []float64
		wantRMS  float64
		wantPeak float64
	}{
		{"empty", nil, 0, 0},
		{"silence", make([]float64, 16), 0, 0},
		{"dc", []float64{0.5, 0.5, 0.5, 0.5}, 0.5, 0.5},
		{"square", []float64{1, -1, 1, -1}, 1, 1},
		{"negative peak", []float64{0.1, -0.8, 0.2}, math.Sqrt((0.01 + 0.64 + 0.04) / 3), 0.8},
		{"non-finite skipped", []float64{1, math.NaN(), math.Inf(1), -1}, math.Sqrt(0.5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Measure(tt.signal)
			if math.Abs(got.RMS-tt.wantRMS) > tolerance {
				t.Errorf("RMS = %v, want %v", got.RMS, tt.wantRMS)
			}
			if math.Abs(got.Peak-tt.wantPeak) > tolerance {
				t.Errorf("Peak = %v, want %v", got.Peak, tt.wantPeak)
			}
		})
	}
}

func TestSineLevel(t *testing.T) {
	const n = 4800
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 100 * float64(i) / 48000)
	}
	l := Measure(signal)
	if math.Abs(l.RMS-1/math.Sqrt2) > 1e-6 {
		t.Fatalf("RMS = %v, want %v", l.RMS, 1/math.Sqrt2)
	}
	if math.Abs(l.CrestFactor()-math.Sqrt2) > 1e-3 {
		t.Fatalf("CrestFactor = %v, want sqrt(2)", l.CrestFactor())
	}
	if math.Abs(l.RMSdB()-(-3.0103)) > 1e-3 {
		t.Fatalf("RMSdB = %v, want -3.01", l.RMSdB())
	}
}

func TestDecibels(t *testing.T) {
	silent := Level{}
	if !math.IsInf(silent.RMSdB(), -1) || !math.IsInf(silent.PeakdB(), -1) {
		t.Fatalf("silent dB = %v / %v, want -Inf", silent.RMSdB(), silent.PeakdB())
	}
	if silent.CrestFactor() != 0 {
		t.Fatalf("silent crest factor = %v, want 0", silent.CrestFactor())
	}
	full := Level{RMS: 1, Peak: 1}
	if full.PeakdB() != 0 {
		t.Fatalf("full scale PeakdB = %v, want 0", full.PeakdB())
	}
	if got := (Level{Peak: 0.1}).PeakdB(); math.Abs(got+20) > tolerance {
		t.Fatalf("PeakdB(0.1) = %v, want -20", got)
	}
}

func BenchmarkMeasure(b *testing.B) {
	signal := make([]float64, 2048)
	for i := range signal {
		signal[i] = math.Sin(float64(i) * 0.01)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Measure(signal)
	}
}
