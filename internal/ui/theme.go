package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colors used across docforge output.
const (
	colorPrimary = "#7D56F4"
	colorKey     = "#04B575"
	colorMuted   = "#626262"
	colorWarn    = "#FFB454"
)

// Theme bundles the lipgloss styles used for terminal output.
// With NoColor set all styles degrade to plain text.
type Theme struct {
	NoColor bool

	Title lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Warn  lipgloss.Style
}

// NewTheme creates a Theme. Pass noColor to disable all styling
// (NO_COLOR environments, pipes, logs).
func NewTheme(noColor bool) *Theme {
	if noColor {
		plain := lipgloss.NewStyle()
		return &Theme{
			NoColor: true,
			Title:   plain,
			Key:     plain,
			Value:   plain,
			Muted:   plain,
			Warn:    plain,
		}
	}
	return &Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorPrimary)),
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorKey)),
		Value: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarn)),
	}
}
