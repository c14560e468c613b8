package testutil

import (
	"math"
	"testing"
)

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual32(t, []float32{0.25, 0.5}, []float32{0.25, 0.5 + 1e-7}, 1e-6)
	RequireSliceNearlyEqual32(t, nil, nil, 0)
	RequireFinite32(t, []float32{0, 1, float32(math.MaxFloat32), -float32(math.MaxFloat32)})
}
