package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-bars/dsp/bars"
	"github.com/cwbudde/algo-bars/dsp/interp"
	"github.com/cwbudde/algo-bars/source"
	"github.com/cwbudde/algo-bars/stats/level"
)

type fakeFeeder struct {
	channels int
	spectra  [][]complex128

	advanced []int
	err      error
	resets   int
}

func newFakeFeeder(channels int) *fakeFeeder {
	f := &fakeFeeder{channels: channels, spectra: make([][]complex128, channels)}
	for ch := range f.spectra {
		f.spectra[ch] = make([]complex128, 2048/2+1)
	}
	return f
}

func (f *fakeFeeder) SampleRate() int        { return 44100 }
func (f *fakeFeeder) FFTSize() int           { return 2048 }
func (f *fakeFeeder) Channels() int          { return f.channels }
func (f *fakeFeeder) FFTOut() [][]complex128 { return f.spectra }
func (f *fakeFeeder) Levels() []level.Level  { return make([]level.Level, f.channels) }
func (f *fakeFeeder) Reset()                 { f.resets++ }
func (f *fakeFeeder) Close() error           { return nil }

func (f *fakeFeeder) Advance(frames int) error {
	f.advanced = append(f.advanced, frames)
	return f.err
}

func nopLog(string, ...any) {}

func newTestModel(t *testing.T, src feeder) model {
	t.Helper()
	proc, err := bars.NewFromSource(bars.DefaultConfig(), src)
	if err != nil {
		t.Fatalf("NewFromSource() error = %v", err)
	}
	return newModel(src, proc, VisualConfig{FPS: 60, ShowStatus: true}, "test", nopLog)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return nm, cmd
}

func TestModelFramesPerTick(t *testing.T) {
	m := newTestModel(t, newFakeFeeder(2))
	if m.frames != 735 {
		t.Fatalf("frames = %d, want 735", m.frames)
	}
}

func TestModelBarKeys(t *testing.T) {
	m := newTestModel(t, newFakeFeeder(2))
	want := bars.DefaultConfig().AmountBars

	m, _ = update(t, m, keyMsg("+"))
	if got := m.proc.Config().AmountBars; got != want+1 {
		t.Fatalf("after + bars = %d, want %d", got, want+1)
	}
	if got := len(m.proc.Bars()[0]); got != want+1 {
		t.Fatalf("row length = %d, want %d", got, want+1)
	}

	m, _ = update(t, m, keyMsg("-"))
	m, _ = update(t, m, keyMsg("-"))
	if got := m.proc.Config().AmountBars; got != want-1 {
		t.Fatalf("after - - bars = %d, want %d", got, want-1)
	}
}

func TestModelMinusStopsAtOneBar(t *testing.T) {
	m := newTestModel(t, newFakeFeeder(1))
	if err := m.proc.SetAmountBars(1); err != nil {
		t.Fatalf("SetAmountBars() error = %v", err)
	}
	m, _ = update(t, m, keyMsg("-"))
	if got := m.proc.Config().AmountBars; got != 1 {
		t.Fatalf("bars = %d, want 1", got)
	}
}

func TestModelCyclesInterpolation(t *testing.T) {
	m := newTestModel(t, newFakeFeeder(2))
	want := []interp.Mode{interp.ModeNone, interp.ModeLinear, interp.ModeCubicSpline}
	for _, mode := range want {
		m, _ = update(t, m, keyMsg("i"))
		if got := m.proc.Config().Interpolation; got != mode {
			t.Fatalf("interpolation = %v, want %v", got, mode)
		}
		if m.status != "interpolation: "+mode.String() {
			t.Fatalf("status = %q", m.status)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, newFakeFeeder(2))
	for _, key := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := update(t, m, key)
		if cmd == nil {
			t.Fatalf("%v: no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%v: command is not quit", key)
		}
	}
}

func TestModelTickAdvancesSource(t *testing.T) {
	src := newFakeFeeder(2)
	m := newTestModel(t, src)

	m, cmd := update(t, m, tickMsg{})
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	if len(src.advanced) != 1 || src.advanced[0] != m.frames {
		t.Fatalf("advanced = %v, want [%d]", src.advanced, m.frames)
	}
	for _, v := range m.proc.Bars()[0] {
		if v != 0 {
			t.Fatalf("silent source produced bar %v", v)
		}
	}
}

func TestModelTickEndOfStream(t *testing.T) {
	src := newFakeFeeder(2)
	src.err = io.EOF
	m := newTestModel(t, src)

	m, cmd := update(t, m, tickMsg{})
	if !m.eof || src.resets != 1 || cmd == nil {
		t.Fatalf("eof = %v, resets = %d, cmd = %v", m.eof, src.resets, cmd)
	}
	m, _ = update(t, m, tickMsg{})
	if len(src.advanced) != 1 || src.resets != 1 {
		t.Fatalf("source touched after end of stream: advanced %v, resets %d", src.advanced, src.resets)
	}
	if m.status != "end of stream" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestModelTickError(t *testing.T) {
	src := newFakeFeeder(2)
	src.err = errors.New("disk gone")
	m := newTestModel(t, src)

	m, cmd := update(t, m, tickMsg{})
	if !errors.Is(m.err, src.err) {
		t.Fatalf("err = %v, want %v", m.err, src.err)
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("tick error did not quit")
	}
}

func TestModelWithSimulatedSource(t *testing.T) {
	sim, err := source.NewSimulated(44100, 2048, nil)
	if err != nil {
		t.Fatalf("NewSimulated() error = %v", err)
	}
	m := newTestModel(t, simulatedFeeder{sim})
	for range 30 {
		m, _ = update(t, m, tickMsg{})
	}
	if sim.Buffered() != 2048 {
		t.Fatalf("buffered = %d, want 2048", sim.Buffered())
	}
	var peak float32
	for _, v := range m.proc.Bars()[0] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		t.Fatal("demo signal produced no bars")
	}
	if len(m.levels) != 2 || m.levels[0].Peak <= 0 {
		t.Fatalf("levels = %+v", m.levels)
	}
	if m.shape.Centroid <= 0 || m.shape.PeakHz <= 0 {
		t.Fatalf("shape = %+v", m.shape)
	}
	if view := m.View(); !strings.Contains(view, "centroid") {
		t.Fatalf("view without status meters:\n%s", view)
	}
}
