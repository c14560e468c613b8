// Command barviz draws live spectrum bars in the terminal.
//
// Without a file argument it plays a built-in multitone demo signal.
// Supported files are WAV, AIFF, MP3 and Ogg Vorbis.
//
// Keys: + and - change the bar count, i cycles the interpolation mode,
// q quits.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-bars/dsp/bars"
	"github.com/cwbudde/algo-bars/dsp/core"
	"github.com/cwbudde/algo-bars/dsp/signal"
	"github.com/cwbudde/algo-bars/source"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Version       kong.VersionFlag `short:"v" help:"Show version information"`
	Config        string           `short:"c" type:"path" help:"Path to YAML config file (optional)"`
	Bars          int              `short:"b" help:"Number of bars"`
	Interpolation string           `short:"i" help:"Interpolation: none, linear or cubic-spline"`
	FPS           int              `name:"fps" help:"Frames per second"`
	FFTSize       int              `name:"fft-size" help:"FFT size in samples"`
	Window        string           `short:"w" help:"Analysis window"`
	Demo          string           `default:"multitone" enum:"multitone,noise,sine" help:"Demo signal when no file is given: ${enum}"`
	DebugLog      string           `name:"debug-log" type:"path" help:"Write a debug log to this file"`
	File          string           `arg:"" name:"file" help:"Audio file to play (demo signal if omitted)" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("barviz"),
		kong.Description("Terminal spectrum bars"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	if err := run(cliArgs); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func run(cliArgs *CLI) error {
	cfg, err := cliArgs.resolveConfig()
	if err != nil {
		return err
	}

	log, closeLog := openDebugLog(cliArgs.DebugLog)
	defer closeLog()

	src, title, err := openFeeder(cliArgs.File, cliArgs.Demo, cfg)
	if err != nil {
		return err
	}
	defer src.Close()
	log("[MAIN] source %s: %d Hz, %d channels, fft %d", title, src.SampleRate(), src.Channels(), src.FFTSize())

	proc, err := bars.NewFromSource(cfg.Bars, src)
	if err != nil {
		return err
	}

	m := newModel(src, proc, cfg.Visual, title, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// openDebugLog returns a printf-style logger writing to path, or a no-op
// logger when path is empty or cannot be created.
func openDebugLog(path string) (logFunc, func()) {
	if path == "" {
		return func(string, ...any) {}, func() {}
	}
	debugLog, err := os.Create(path)
	if err != nil {
		printError(fmt.Sprintf("debug log disabled: %v", err))
		return func(string, ...any) {}, func() {}
	}
	log := func(format string, args ...any) {
		_, _ = fmt.Fprintf(debugLog, format+"\n", args...)
	}
	return log, func() { _ = debugLog.Close() }
}

func openFeeder(path, demo string, cfg Config) (feeder, string, error) {
	opts := []source.Option{
		source.WithWindow(cfg.Audio.Window),
		source.WithHighPass(cfg.Audio.HighPass),
	}
	if path != "" {
		dec, err := source.OpenFile(path, cfg.Audio.FFTSize, opts...)
		if err != nil {
			return nil, "", err
		}
		return dec, path, nil
	}

	opts = append(opts, source.WithChannels(cfg.Audio.Channels))
	rate, size := cfg.Audio.SampleRate, cfg.Audio.FFTSize
	if demo == "" || demo == "multitone" {
		sim, err := source.NewSimulated(rate, size, nil, opts...)
		if err != nil {
			return nil, "", err
		}
		return simulatedFeeder{sim}, "demo: multitone", nil
	}

	loop, err := demoLoop(demo, rate)
	if err != nil {
		return nil, "", err
	}
	l, err := source.NewLooped(rate, size, loop, opts...)
	if err != nil {
		return nil, "", err
	}
	return loopedFeeder{l}, "demo: " + demo, nil
}

// demoLoop renders one second of a test signal. Whole-hertz tones make the
// loop seamless.
func demoLoop(kind string, sampleRate int) ([]float64, error) {
	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(float64(sampleRate))},
		signal.WithSeed(1),
	)
	switch kind {
	case "noise":
		return g.WhiteNoise(0.5, sampleRate)
	case "sine":
		freqs := []float64{110, 1000}
		if sampleRate > 10000 {
			freqs = append(freqs, 5000)
		}
		mix, err := g.Multisine(freqs, 1, sampleRate)
		if err != nil {
			return nil, err
		}
		return signal.Normalize(mix, 0.5)
	}
	return nil, fmt.Errorf("unknown demo signal %q", kind)
}
