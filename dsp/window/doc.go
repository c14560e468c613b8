// Package window provides analysis windows for framing audio blocks before
// an FFT.
//
// [Generate] and [Apply] produce raw coefficients. [Table] caches a
// normalized window for the analyzer hot path so that bar magnitudes do not
// depend on the FFT size or window choice.
package window
