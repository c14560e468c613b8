// Package biquad implements second-order IIR sections in Direct Form II
// Transposed and the RBJ cookbook designs used to pre-filter analysis
// input.
package biquad
