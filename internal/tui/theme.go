package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	rowStyle    = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	toastStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLavender).
			Padding(1, 2)
)
