package biquad

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSampleImpulse(t *testing.T) {
	// DF-II-T impulse response traced by hand for
	// B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Fatalf("n=%d: got %v, want %v", i, y, w)
		}
	}
	if st := s.State(); !almostEqual(st[0], -0.0044, eps) || !almostEqual(st[1], -0.00192, eps) {
		t.Fatalf("state = %v", st)
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	c, err := Highpass(100, 0, 8000)
	if err != nil {
		t.Fatalf("Highpass() error = %v", err)
	}
	input := []float64{1, -0.5, 0.25, 0, 0.75, -1, 0.3, 0.1, -0.2}

	ref := NewSection(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	blk := NewSection(c)
	got := append([]float64(nil), input...)
	blk.ProcessBlock(got[:4])
	blk.ProcessBlock(got[4:])
	for i := range got {
		if !almostEqual(got[i], want[i], eps) {
			t.Fatalf("sample %d: block %v, per-sample %v", i, got[i], want[i])
		}
	}
	if blk.State() != ref.State() {
		t.Fatalf("state diverged: %v vs %v", blk.State(), ref.State())
	}

	blk.Reset()
	if blk.State() != [2]float64{} {
		t.Fatalf("Reset left state %v", blk.State())
	}
}

func TestHighpassResponse(t *testing.T) {
	const fs = 48000
	c, err := Highpass(1000, ButterworthQ, fs)
	if err != nil {
		t.Fatalf("Highpass() error = %v", err)
	}
	if db := c.MagnitudeDB(1000, fs); !almostEqual(db, -3.0103, 1e-3) {
		t.Errorf("gain at corner = %v dB, want -3.01", db)
	}
	if db := c.MagnitudeDB(fs/4, fs); math.Abs(db) > 0.1 {
		t.Errorf("passband gain = %v dB, want about 0", db)
	}
	if db := c.MagnitudeDB(100, fs); db > -39 {
		t.Errorf("gain a decade below corner = %v dB, want < -39", db)
	}
	if g := c.MagnitudeSquared(0, fs); g > 1e-9 {
		t.Errorf("DC gain = %v, want 0", g)
	}
}

func TestHighpassRemovesDC(t *testing.T) {
	c, err := Highpass(20, 0, 44100)
	if err != nil {
		t.Fatalf("Highpass() error = %v", err)
	}
	s := NewSection(c)
	var y float64
	for range 44100 {
		y = s.ProcessSample(0.5)
	}
	if math.Abs(y) > 1e-6 {
		t.Fatalf("DC after one second = %v, want about 0", y)
	}
}

func TestHighpassInvalid(t *testing.T) {
	tests := []struct {
		name       string
		freq, rate float64
	}{
		{"zero freq", 0, 48000},
		{"at nyquist", 24000, 48000},
		{"above nyquist", 30000, 48000},
		{"nan freq", math.NaN(), 48000},
		{"zero rate", 100, 0},
		{"inf rate", 100, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Highpass(tt.freq, 0, tt.rate); !errors.Is(err, ErrInvalidDesign) {
				t.Fatalf("err = %v, want ErrInvalidDesign", err)
			}
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	c, _ := Highpass(20, 0, 48000)
	s := NewSection(c)
	buf := make([]float64, 1024)
	for i := range buf {
		buf[i] = math.Sin(float64(i) * 0.1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ProcessBlock(buf)
	}
}
