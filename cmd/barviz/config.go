package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-bars/dsp/bars"
	"github.com/cwbudde/algo-bars/dsp/interp"
	"github.com/cwbudde/algo-bars/dsp/window"
	"github.com/cwbudde/algo-bars/source"
)

// Config is the YAML configuration file layout.
type Config struct {
	Bars   bars.Config  `yaml:"bars"`
	Audio  AudioConfig  `yaml:"audio"`
	Visual VisualConfig `yaml:"visual"`
}

// AudioConfig describes the analysis front end.
type AudioConfig struct {
	// SampleRate applies to the simulated source only; files keep their own.
	SampleRate int         `yaml:"sample_rate"`
	FFTSize    int         `yaml:"fft_size"`
	Window     window.Type `yaml:"window"`
	Channels   int         `yaml:"channels"`
	// HighPass is the pre-filter corner in Hz; 0 disables it.
	HighPass float64 `yaml:"high_pass"`
}

// VisualConfig describes the terminal rendering.
type VisualConfig struct {
	FPS        int  `yaml:"fps"`
	ShowStatus bool `yaml:"show_status"`
}

func defaultConfig() Config {
	return Config{
		Bars: bars.DefaultConfig(),
		Audio: AudioConfig{
			SampleRate: 44100,
			FFTSize:    2048,
			Window:     window.TypeHann,
			Channels:   2,
			HighPass:   20,
		},
		Visual: VisualConfig{
			FPS:        60,
			ShowStatus: true,
		},
	}
}

// loadConfig reads path on top of the defaults. Keys missing from the file
// keep their default value.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := c.Bars.Validate(); err != nil {
		return err
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", c.Audio.SampleRate)
	}
	if !source.IsPowerOf2(c.Audio.FFTSize) {
		return fmt.Errorf("fft size must be a power of two: %d", c.Audio.FFTSize)
	}
	if c.Audio.Channels < 1 {
		return fmt.Errorf("channels must be > 0: %d", c.Audio.Channels)
	}
	if c.Audio.HighPass < 0 {
		return fmt.Errorf("high pass must be >= 0: %g", c.Audio.HighPass)
	}
	if !c.Audio.Window.Valid() {
		return fmt.Errorf("%w: %v", window.ErrUnknownType, c.Audio.Window)
	}
	if c.Visual.FPS < 1 || c.Visual.FPS > 1000 {
		return fmt.Errorf("fps must be in [1,1000]: %d", c.Visual.FPS)
	}
	return nil
}

// resolveConfig loads the optional config file and applies the flags on
// top of it. Zero-valued flags leave the file value alone.
func (c *CLI) resolveConfig() (Config, error) {
	cfg := defaultConfig()
	if c.Config != "" {
		var err error
		if cfg, err = loadConfig(c.Config); err != nil {
			return cfg, err
		}
	}

	if c.Bars != 0 {
		cfg.Bars.AmountBars = c.Bars
	}
	if c.Interpolation != "" {
		mode, err := interp.ParseMode(c.Interpolation)
		if err != nil {
			return cfg, err
		}
		cfg.Bars.Interpolation = mode
	}
	if c.FPS != 0 {
		cfg.Visual.FPS = c.FPS
	}
	if c.FFTSize != 0 {
		cfg.Audio.FFTSize = c.FFTSize
	}
	if c.Window != "" {
		t, err := window.ParseType(c.Window)
		if err != nil {
			return cfg, err
		}
		cfg.Audio.Window = t
	}
	return cfg, cfg.validate()
}
