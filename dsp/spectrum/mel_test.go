package spectrum

import (
	"math"
	"testing"
)

func TestMelRoundTrip(t *testing.T) {
	for _, hz := range []float64{20, 100, 440, 1000, 8000, 20000} {
		got := MelToHz(HzToMel(hz))
		if math.Abs(got-hz) > 1e-6*hz {
			t.Fatalf("MelToHz(HzToMel(%f)) = %f", hz, got)
		}
	}
}

func TestHzToMelReference(t *testing.T) {
	// 1000 Hz is close to 1000 mel on the 2595·log10 scale.
	if got := HzToMel(1000); math.Abs(got-1000) > 0.5 {
		t.Fatalf("HzToMel(1000) = %f, want ~1000", got)
	}
}

func TestMelLerpEndpointsAndDensity(t *testing.T) {
	if got := MelLerp(MinAudibleHz, MaxAudibleHz, 0); math.Abs(got-MinAudibleHz) > 1e-9 {
		t.Fatalf("MelLerp(t=0) = %f", got)
	}
	if got := MelLerp(MinAudibleHz, MaxAudibleHz, 1); math.Abs(got-MaxAudibleHz) > 1e-6 {
		t.Fatalf("MelLerp(t=1) = %f", got)
	}

	// The midpoint in mel sits far below the linear midpoint.
	mid := MelLerp(MinAudibleHz, MaxAudibleHz, 0.5)
	if mid >= (MinAudibleHz+MaxAudibleHz)/2 {
		t.Fatalf("mel midpoint %f not below linear midpoint", mid)
	}

	prev := 0.0
	for i := 0; i <= 10; i++ {
		f := MelLerp(MinAudibleHz, MaxAudibleHz, float64(i)/10)
		if f <= prev {
			t.Fatalf("MelLerp not increasing at step %d: %f <= %f", i, f, prev)
		}
		prev = f
	}
}
