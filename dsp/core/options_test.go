package core

import (
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if got := ApplyProcessorOptions(); got.SampleRate != 44100 {
		t.Fatalf("default sample rate = %v, want 44100", got.SampleRate)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	for _, rate := range []float64{0, -48000, math.NaN(), math.Inf(1)} {
		cfg := ApplyProcessorOptions(WithSampleRate(rate), nil)
		if cfg != DefaultProcessorConfig() {
			t.Fatalf("WithSampleRate(%v): cfg = %#v, want defaults", rate, cfg)
		}
	}
}
