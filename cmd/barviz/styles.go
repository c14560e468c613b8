package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#00AFAF")
	accentColor  = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#888888")
	errorColor   = lipgloss.Color("#A40000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	// one per channel, repeating
	channelStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(primaryColor),
		lipgloss.NewStyle().Foreground(accentColor),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#AF5FFF")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
	}
)

// printError prints an error message
func printError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), message)
}
