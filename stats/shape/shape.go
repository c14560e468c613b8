// Package shape describes the spectral shape of a magnitude spectrum.
//
// All functions take a one-sided linear magnitude spectrum (NOT dB) and the
// bin resolution in Hz, so bin i sits at i*binHz.
package shape

import "math"

// DefaultRolloff is the energy fraction used by [Describe] for Rolloff.
const DefaultRolloff = 0.85

// Shape summarises a magnitude spectrum over a bin range.
type Shape struct {
	Centroid float64 // Hz
	Rolloff  float64 // Hz below which DefaultRolloff of the energy lies
	Flatness float64 // Wiener entropy, 0..1
	PeakHz   float64
}

// Describe computes the shape of magnitude[start:end]. The range is clamped
// to the spectrum; an empty or silent range yields the zero Shape.
func Describe(magnitude []float64, binHz float64, start, end int) Shape {
	start = max(start, 0)
	end = min(end, len(magnitude))
	if end <= start {
		return Shape{}
	}
	band := magnitude[start:end]
	offset := float64(start) * binHz

	var sum, energy, peak float64
	peakBin := 0
	for i, v := range band {
		if !(v > 0) || math.IsInf(v, 1) {
			continue
		}
		sum += v
		energy += v * v
		if v > peak {
			peak, peakBin = v, i
		}
	}
	if sum == 0 {
		return Shape{}
	}

	return Shape{
		Centroid: offset + centroid(band, binHz, sum),
		Rolloff:  offset + rolloff(band, binHz, DefaultRolloff, energy),
		Flatness: Flatness(band),
		PeakHz:   offset + float64(peakBin)*binHz,
	}
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, binHz float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		if v > 0 && !math.IsInf(v, 1) {
			sum += v
		}
	}
	return centroid(magnitude, binHz, sum)
}

func centroid(magnitude []float64, binHz, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		if v > 0 && !math.IsInf(v, 1) {
			weightedSum += float64(i) * binHz * v
		}
	}
	return weightedSum / sumMag
}

// Rolloff returns the frequency below which the fraction percent (0..1) of
// the spectral energy lies. Energy is the sum of squared magnitudes.
func Rolloff(magnitude []float64, binHz, percent float64) float64 {
	energy := 0.0
	for _, v := range magnitude {
		if v > 0 && !math.IsInf(v, 1) {
			energy += v * v
		}
	}
	return rolloff(magnitude, binHz, percent, energy)
}

func rolloff(magnitude []float64, binHz, percent, totalEnergy float64) float64 {
	if len(magnitude) == 0 || totalEnergy == 0 {
		return 0
	}
	threshold := percent * totalEnergy
	cumEnergy := 0.0
	for i, v := range magnitude {
		if v > 0 && !math.IsInf(v, 1) {
			cumEnergy += v * v
		}
		if cumEnergy >= threshold {
			return float64(i) * binHz
		}
	}
	return float64(len(magnitude)-1) * binHz
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1:
// the geometric mean of the magnitudes over their arithmetic mean. A single
// zero bin makes the geometric mean, and so the flatness, zero.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) == 0 {
		return 0
	}
	sumLin, sumLog := 0.0, 0.0
	for _, v := range magnitude {
		if !(v > 0) || math.IsInf(v, 1) {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}
	n := float64(len(magnitude))
	return math.Exp(sumLog/n) / (sumLin / n)
}
