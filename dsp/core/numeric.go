package core

import "math"

// denormalThreshold32 is the magnitude below which float32 values are
// treated as zero in feedback loops.
const denormalThreshold32 = 1e-30

// Clamp32 limits value to the inclusive range [min, max].
// NaN is mapped to min.
func Clamp32(value, min, max float32) float32 {
	if min > max {
		min, max = max, min
	}
	if value != value || value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FlushDenormals32 converts tiny denormal-like values to exact zero.
// Geometric decays such as y *= 0.77 otherwise stall on the smallest
// subnormal instead of reaching zero.
func FlushDenormals32(x float32) float32 {
	if x > -denormalThreshold32 && x < denormalThreshold32 {
		return 0
	}
	return x
}

// IsFinite32 reports whether x is neither NaN nor an infinity.
func IsFinite32(x float32) bool {
	return x == x && x <= math.MaxFloat32 && x >= -math.MaxFloat32
}

// Finite32 returns x, or 0 when x is NaN or infinite.
func Finite32(x float32) float32 {
	if !IsFinite32(x) {
		return 0
	}
	return x
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
