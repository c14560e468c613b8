// Package level measures the signal level of sample blocks.
package level

import "math"

// Level is the level of one block of samples.
type Level struct {
	RMS  float64
	Peak float64 // max |x|
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// RMSdB returns the RMS level in dBFS.
func (l Level) RMSdB() float64 { return ampTodB(l.RMS) }

// PeakdB returns the peak level in dBFS.
func (l Level) PeakdB() float64 { return ampTodB(l.Peak) }

// CrestFactor returns Peak / RMS, or 0 for a silent block.
func (l Level) CrestFactor() float64 {
	if l.RMS == 0 {
		return 0
	}
	return l.Peak / l.RMS
}

// Measure returns the level of signal in a single pass. Non-finite samples
// are skipped but still count towards the block length.
func Measure(signal []float64) Level {
	if len(signal) == 0 {
		return Level{}
	}

	var sumSq, peak float64
	for _, x := range signal {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		sumSq += x * x
		peak = max(peak, math.Abs(x))
	}

	return Level{
		RMS:  math.Sqrt(sumSq / float64(len(signal))),
		Peak: peak,
	}
}
