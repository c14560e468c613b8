// Package interp fills the bars between supporting points.
//
// A supporting point is a bar whose magnitude is measured directly from the
// spectrum; every other bar is derived from its neighbours. Three modes are
// available, from cheapest to smoothest:
//
//   - [ModeNone]:        only supporting points are written (sparse display)
//   - [ModeLinear]:      straight lines between neighbouring points
//   - [ModeCubicSpline]: a C2 cubic spline with zero end slopes
//
// [Interpolator] is a closed tagged union over [Mode]: the variant is chosen at
// construction and dispatched with a single switch per call. Point positions
// are fixed for the lifetime of an Interpolator; only the values returned by
// [Interpolator.Values] change between frames. This keeps the cubic spline's
// Cholesky factorization (see [FactorTridiagonal]) valid across frames.
package interp
