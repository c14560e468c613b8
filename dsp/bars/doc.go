// Package bars turns complex FFT spectra into smoothed, perceptually weighted
// bar magnitudes for visualizers.
//
// The pipeline has three stages:
//
//   - [PlanSupportingPoints] maps FFT bins onto bars along the mel scale. Bars
//     whose bin range would be too narrow to distinguish collapse into a
//     single supporting point.
//   - [ChannelProcessor] measures each supporting point from the spectrum and
//     applies attack/decay smoothing plus slow automatic gain control, then
//     fills the remaining bars through an [interp.Interpolator].
//   - [BarProcessor] owns one ChannelProcessor per audio channel and the
//     output rows consumers read.
//
// Basic usage:
//
//	bp, err := bars.New(bars.DefaultConfig(), 44100, 2048, 2)
//	if err != nil {
//	    return err
//	}
//	for range ticker.C {
//	    rows := bp.ProcessBars(source) // rows[channel][bar], nominally in [0,1]
//	    draw(rows)
//	}
//
// Processing is synchronous and allocation-free. A BarProcessor must not be
// used from more than one goroutine at a time; serialize access when the
// render loop and the configuration UI run separately.
package bars
