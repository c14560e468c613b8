// Command barinfo prints the supporting-point plan a bar configuration
// produces for a given sample rate and FFT size.
//
// Usage:
//
//	barinfo [flags]
//
// Every row lists one supporting point: its bar index, the FFT bins it
// measures and the frequency span those bins cover.
//
// Examples:
//
//	barinfo
//	barinfo -bars 64 -fft 4096
//	barinfo -bars 16 -rate 48000 -distribution natural
//	barinfo -padding-side both -padding-size 4 -window blackman-harris
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-bars/dsp/bars"
	"github.com/cwbudde/algo-bars/dsp/interp"
	"github.com/cwbudde/algo-bars/dsp/spectrum"
	"github.com/cwbudde/algo-bars/dsp/window"
)

type options struct {
	cfg        bars.Config
	sampleRate int
	fftSize    int
	window     window.Type
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	plan, err := bars.PlanSupportingPoints(opts.cfg, opts.sampleRate, opts.fftSize)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := printPlan(stdout, opts, plan); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := bars.DefaultConfig()
	fs := flag.NewFlagSet("barinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	amount := fs.Int("bars", def.AmountBars, "number of bars")
	low := fs.Float64("low", def.FreqRange.Low, "lowest analysed frequency in Hz")
	high := fs.Float64("high", def.FreqRange.High, "highest analysed frequency in Hz")
	mode := fs.String("interpolation", def.Interpolation.String(), "interpolation: none, linear or cubic-spline")
	sensitivity := fs.Float64("sensitivity", float64(def.Sensitivity), "gain control sensitivity")
	dist := fs.String("distribution", def.Distribution.String(), "bar distribution: uniform or natural")
	padSide := fs.String("padding-side", "", "add silent bars on the left, right or both sides")
	padSize := fs.Int("padding-size", 0, "number of silent bars per padded side")
	rate := fs.Int("rate", 44100, "sample rate in Hz")
	fftSize := fs.Int("fft", 2048, "FFT size in samples")
	win := fs.String("window", window.TypeHann.String(), "analysis window, used for the bandwidth column")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: barinfo [flags]\n\nPrints the supporting points of a bar layout.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := bars.Config{
		AmountBars:  *amount,
		FreqRange:   bars.FreqRange{Low: *low, High: *high},
		Sensitivity: float32(*sensitivity),
	}
	m, err := interp.ParseMode(*mode)
	if err != nil {
		return options{}, err
	}
	cfg.Interpolation = m
	if err := cfg.Distribution.UnmarshalText([]byte(*dist)); err != nil {
		return options{}, err
	}
	if *padSide != "" {
		p := &bars.Padding{Size: *padSize}
		if err := p.Side.UnmarshalText([]byte(*padSide)); err != nil {
			return options{}, err
		}
		cfg.Padding = p
	}
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}

	wt, err := window.ParseType(*win)
	if err != nil {
		return options{}, err
	}
	return options{cfg: cfg, sampleRate: *rate, fftSize: *fftSize, window: wt}, nil
}

func printPlan(w io.Writer, opts options, plan bars.Plan) error {
	binHz, err := spectrum.BinHz(opts.sampleRate, opts.fftSize)
	if err != nil {
		return err
	}
	meta := window.Info(opts.window)

	if _, err := fmt.Fprintf(w, "bars: %d  points: %d  bins: [%d,%d)  resolution: %.2f Hz  %s ENBW: %.2f Hz\n\n",
		plan.TotalBars, len(plan.Points), plan.BinRange.Start, plan.BinRange.End,
		binHz, meta.Name, meta.ENBW*binHz); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bar\tBins\tLow [Hz]\tHigh [Hz]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---\t----\t--------\t---------\n"); err != nil {
		return err
	}
	for i, p := range plan.Points {
		r := plan.Ranges[i]
		if r.Empty() {
			if _, err := fmt.Fprintf(tw, "%d\t-\t-\t-\n", p.X); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(tw, "%d\t[%d,%d)\t%.1f\t%.1f\n",
			p.X, r.Start, r.End,
			spectrum.BinFrequency(r.Start, binHz),
			spectrum.BinFrequency(r.End, binHz),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
