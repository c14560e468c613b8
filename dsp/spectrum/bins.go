package spectrum

import (
	"fmt"
	"math"
)

// BinHz returns the frequency resolution of an FFT in Hz per bin.
func BinHz(sampleRate, fftSize int) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("bin resolution sampleRate must be > 0: %d", sampleRate)
	}
	if fftSize <= 0 {
		return 0, fmt.Errorf("bin resolution fftSize must be > 0: %d", fftSize)
	}
	return float64(sampleRate) / float64(fftSize), nil
}

// OneSidedLen returns the number of non-negative-frequency bins [0..Nyquist]
// of a real-input FFT of size fftSize.
func OneSidedLen(fftSize int) int {
	if fftSize <= 0 {
		return 0
	}
	return fftSize/2 + 1
}

// BinRange returns the half-open FFT bin range [start, end) covering
// [loHz, hiHz] at the given resolution. start is at least 1 so the DC bin
// never contributes, and end is clamped to limit.
func BinRange(loHz, hiHz, binHz float64, limit int) (start, end int) {
	start = int(math.Floor(loHz / binHz))
	if start < 1 {
		start = 1
	}
	end = int(math.Ceil(hiHz / binHz))
	if end > limit {
		end = limit
	}
	if end < start {
		end = start
	}
	return start, end
}

// BinFrequency returns the center frequency in Hz of bin k.
func BinFrequency(k int, binHz float64) float64 {
	return float64(k) * binHz
}
