package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-bars/dsp/bars"
	"github.com/cwbudde/algo-bars/dsp/interp"
	"github.com/cwbudde/algo-bars/dsp/window"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "barviz.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
bars:
  amount_bars: 48
  interpolation: linear
  bar_distribution: natural
  freq_range:
    low: 40
    high: 16000
  padding:
    side: both
    size: 2
audio:
  fft_size: 4096
  window: blackman-harris
  high_pass: 0
visual:
  fps: 30
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Bars.AmountBars != 48 || cfg.Bars.Interpolation != interp.ModeLinear {
		t.Errorf("bars = %+v", cfg.Bars)
	}
	if cfg.Bars.Distribution != bars.DistributionNatural {
		t.Errorf("distribution = %v, want natural", cfg.Bars.Distribution)
	}
	if cfg.Bars.FreqRange != (bars.FreqRange{Low: 40, High: 16000}) {
		t.Errorf("freq range = %+v", cfg.Bars.FreqRange)
	}
	if p := cfg.Bars.Padding; p == nil || p.Side != bars.PaddingBoth || p.Size != 2 {
		t.Errorf("padding = %+v", p)
	}
	if cfg.Audio.FFTSize != 4096 || cfg.Audio.Window != window.TypeBlackmanHarris4Term || cfg.Audio.HighPass != 0 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	// untouched keys keep defaults
	if cfg.Bars.Sensitivity != bars.DefaultConfig().Sensitivity || cfg.Audio.SampleRate != 44100 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Visual.FPS != 30 || !cfg.Visual.ShowStatus {
		t.Errorf("visual = %+v", cfg.Visual)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("validate() error = %v", err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	for _, body := range []string{
		"bars:\n  interpolation: bezier\n",
		"bars:\n  bar_distribution: log\n",
		"audio:\n  window: kaiser\n",
		"audio:\n  high_pass: loud\n",
		"bars: [1, 2\n",
	} {
		if _, err := loadConfig(writeConfig(t, body)); err == nil {
			t.Errorf("loadConfig(%q) expected error", body)
		}
	}
}

func TestResolveConfig(t *testing.T) {
	path := writeConfig(t, "bars:\n  amount_bars: 48\nvisual:\n  fps: 30\n")
	oddFFT := writeConfig(t, "audio:\n  fft_size: 800\n")

	tests := []struct {
		name    string
		cli     CLI
		check   func(t *testing.T, cfg Config)
		wantErr bool
	}{
		{
			name: "defaults",
			cli:  CLI{},
			check: func(t *testing.T, cfg Config) {
				if cfg.Bars != bars.DefaultConfig() {
					t.Errorf("bars = %+v, want defaults", cfg.Bars)
				}
			},
		},
		{
			name: "file only",
			cli:  CLI{Config: path},
			check: func(t *testing.T, cfg Config) {
				if cfg.Bars.AmountBars != 48 || cfg.Visual.FPS != 30 {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name: "flags override file",
			cli:  CLI{Config: path, Bars: 12, FPS: 25, Interpolation: "none", FFTSize: 1024, Window: "hamming"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Bars.AmountBars != 12 || cfg.Visual.FPS != 25 {
					t.Errorf("cfg = %+v", cfg)
				}
				if cfg.Bars.Interpolation != interp.ModeNone {
					t.Errorf("interpolation = %v", cfg.Bars.Interpolation)
				}
				if cfg.Audio.FFTSize != 1024 || cfg.Audio.Window != window.TypeHamming {
					t.Errorf("audio = %+v", cfg.Audio)
				}
			},
		},
		{name: "bad interpolation", cli: CLI{Interpolation: "cubic"}, wantErr: true},
		{name: "bad window", cli: CLI{Window: "kaiser"}, wantErr: true},
		{name: "negative bars", cli: CLI{Bars: -3}, wantErr: true},
		{name: "fps too high", cli: CLI{FPS: 5000}, wantErr: true},
		{name: "fft size flag not a power of two", cli: CLI{FFTSize: 1000}, wantErr: true},
		{name: "fft size file not a power of two", cli: CLI{Config: oddFFT}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.cli.resolveConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func assertFileContains(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != want {
		t.Fatalf("%s = %q, want %q", path, data, want)
	}
}
