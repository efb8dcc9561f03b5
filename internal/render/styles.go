package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	// Table styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	NumberStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1).
			Align(lipgloss.Right)

	// Delimiter matches in retain and chop results
	MatchStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Status styles
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)
