package main

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-bars/dsp/bars"
	"github.com/cwbudde/algo-bars/dsp/spectrum"
	"github.com/cwbudde/algo-bars/source"
	"github.com/cwbudde/algo-bars/stats/level"
	"github.com/cwbudde/algo-bars/stats/shape"
)

type logFunc func(format string, args ...any)

// feeder is a spectrum source that is driven forward in real time.
type feeder interface {
	bars.SpectrumSource
	Advance(frames int) error
	Levels() []level.Level
	Reset()
	Close() error
}

type simulatedFeeder struct {
	*source.Simulated
}

func (s simulatedFeeder) Advance(frames int) error {
	s.Simulated.Advance(frames)
	return nil
}

func (s simulatedFeeder) Close() error { return nil }

type loopedFeeder struct {
	*source.Looped
}

func (l loopedFeeder) Advance(frames int) error {
	l.Looped.Advance(frames)
	return nil
}

func (l loopedFeeder) Close() error { return nil }

// tickMsg drives one analysis frame.
type tickMsg time.Time

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model is the Bubbletea model for the bar display
type model struct {
	src    feeder
	proc   *bars.BarProcessor
	visual VisualConfig
	title  string
	log    logFunc

	// frames pushed per tick so playback runs in real time
	frames int

	scratch *spectrum.Scratch
	mags    []float64
	binHz   float64
	levels  []level.Level
	shape   shape.Shape

	eof    bool
	status string
	err    error

	width  int
	height int
}

func newModel(src feeder, proc *bars.BarProcessor, visual VisualConfig, title string, log logFunc) model {
	return model{
		src:    src,
		proc:   proc,
		visual: visual,
		title:  title,
		log:    log,
		frames: max(src.SampleRate()/visual.FPS, 1),

		scratch: &spectrum.Scratch{},
		mags:    make([]float64, spectrum.OneSidedLen(src.FFTSize())),
		binHz:   float64(src.SampleRate()) / float64(src.FFTSize()),
	}
}

// Init starts the frame ticker
func (m model) Init() tea.Cmd {
	return tick(m.visual.FPS)
}

// Update handles messages and updates the model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log("[UI] window size: %dx%d", m.width, m.height)

	case tickMsg:
		if !m.eof {
			err := m.src.Advance(m.frames)
			switch {
			case errors.Is(err, io.EOF):
				m.log("[UI] end of stream")
				m.eof = true
				m.status = "end of stream"
				m.src.Reset()
			case err != nil:
				m.log("[UI] advance failed: %v", err)
				m.err = err
				return m, tea.Quit
			}
		}
		m.analyze()
		return m, tick(m.visual.FPS)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "+", "=":
		m.setAmountBars(m.proc.Config().AmountBars + 1)

	case "-", "_":
		if n := m.proc.Config().AmountBars; n > 1 {
			m.setAmountBars(n - 1)
		}

	case "i":
		cfg := m.proc.Config()
		cfg.Interpolation = cfg.Interpolation.Next()
		if err := m.proc.Reconfigure(cfg); err != nil {
			m.status = err.Error()
			m.log("[UI] reconfigure failed: %v", err)
			break
		}
		m.status = "interpolation: " + cfg.Interpolation.String()
		m.log("[UI] %s", m.status)
	}
	return m, nil
}

func (m *model) setAmountBars(n int) {
	if err := m.proc.SetAmountBars(n); err != nil {
		m.status = err.Error()
		m.log("[UI] set amount bars %d failed: %v", n, err)
		return
	}
	m.status = ""
	m.log("[UI] bars: %d, supporting points: %d", n, len(m.proc.Plan().Points))
}

// analyze runs one frame through the bar processor and refreshes the level
// and spectral shape shown in the status line.
func (m *model) analyze() {
	spectra := m.src.FFTOut()
	m.proc.ProcessSpectra(spectra)
	m.levels = m.src.Levels()
	if len(spectra) == 0 {
		return
	}
	m.scratch.MagnitudeInto(m.mags, spectra[0])
	r := m.proc.Plan().BinRange
	m.shape = shape.Describe(m.mags, m.binHz, r.Start, r.End)
}
