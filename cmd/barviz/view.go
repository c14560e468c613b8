package main

import (
	"fmt"
	"strings"
)

var blockChars = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const defaultBarHeight = 8

// View renders the UI
func (m model) View() string {
	var b strings.Builder

	cfg := m.proc.Config()
	b.WriteString(titleStyle.Render("barviz"))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s | %d bars | %s | %.0f-%.0f Hz",
		m.title, cfg.TotalBars(), cfg.Interpolation, cfg.FreqRange.Low, cfg.FreqRange.High)))
	b.WriteString("\n\n")

	rows := m.proc.Bars()
	height := m.barHeight(len(rows))
	for ch, row := range rows {
		style := channelStyles[ch%len(channelStyles)]
		for _, line := range renderBars(row, height) {
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	if m.visual.ShowStatus {
		b.WriteString("\n")
		b.WriteString(renderStatus(m))
	}
	return b.String()
}

func renderStatus(m model) string {
	var b strings.Builder
	for ch, l := range m.levels {
		fmt.Fprintf(&b, "ch%d %s  ", ch+1, formatdB(l.PeakdB()))
	}
	if m.shape.Centroid > 0 {
		fmt.Fprintf(&b, "centroid %.0f Hz  peak %.0f Hz", m.shape.Centroid, m.shape.PeakHz)
	}
	meters := statusStyle.Render(strings.TrimSpace(b.String()))

	help := fmt.Sprintf("%s bars  %s interpolation  %s quit",
		keyStyle.Render("+/-"), keyStyle.Render("i"), keyStyle.Render("q"))
	if m.status != "" {
		help += "  " + statusStyle.Render(m.status)
	}
	return meters + "\n" + help
}

// formatdB renders a level in dBFS, clamping silence to a fixed floor.
func formatdB(db float64) string {
	if db < -99 {
		return " -inf dB"
	}
	return fmt.Sprintf("%5.1f dB", db)
}

// barHeight splits the terminal rows left after header and status lines
// between the channels.
func (m model) barHeight(channels int) int {
	if m.height == 0 || channels == 0 {
		return defaultBarHeight
	}
	reserved := 3
	if m.visual.ShowStatus {
		reserved += 3
	}
	return max((m.height-reserved)/channels, 1)
}

// renderBars draws one column per bar, top line first. Values are clamped
// to [0, 1] and drawn with eighth-block resolution.
func renderBars(values []float32, height int) []string {
	subs := make([]int, len(values))
	for i, v := range values {
		if !(v > 0) {
			continue
		}
		subs[i] = int(min(float64(v), 1)*float64(height*8) + 0.5)
	}

	lines := make([]string, height)
	var b strings.Builder
	for row := range height {
		b.Reset()
		base := (height - 1 - row) * 8
		for _, sub := range subs {
			fill := sub - base
			switch {
			case fill >= 8:
				b.WriteRune(blockChars[8])
			case fill > 0:
				b.WriteRune(blockChars[fill])
			default:
				b.WriteRune(blockChars[0])
			}
		}
		lines[row] = b.String()
	}
	return lines
}
