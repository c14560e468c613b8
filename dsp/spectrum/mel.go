package spectrum

import "math"

// Audible range used as the reference frame for mel warping.
const (
	MinAudibleHz = 20.0
	MaxAudibleHz = 20000.0
)

// HzToMel converts a frequency in Hz to mel (O'Shaughnessy, 2595·log10).
func HzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// MelToHz is the inverse of [HzToMel].
func MelToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// MelLerp returns the frequency found at fraction t in [0,1] of the mel
// interval between loHz and hiHz.
func MelLerp(loHz, hiHz, t float64) float64 {
	lo := HzToMel(loHz)
	hi := HzToMel(hiHz)
	return MelToHz(lo + (hi-lo)*t)
}
