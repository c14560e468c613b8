// Package source produces per-channel FFT spectra for bar processing.
//
// [Analyzer] is the ingestion boundary: audio callbacks push interleaved
// samples from any goroutine while the render loop pulls windowed spectra.
// [Simulated] and [Decoded] feed an Analyzer from the demo signal generator
// or from a decoded file. All three satisfy bars.SpectrumSource.
package source
