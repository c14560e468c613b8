// Package spectrum provides FFT-adjacent spectrum-domain utilities for bar
// extraction.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides
// magnitude extraction, bin/frequency conversion and the mel scale used to
// warp bars toward human pitch perception.
package spectrum
