package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	litColor    = lipgloss.Color("#FFB347") // amber, like the panel
	cursorColor = lipgloss.Color("#43BF6D") // green
	subtleColor = lipgloss.Color("#626262") // gray
	errorColor  = lipgloss.Color("#FF5555")
)

// Cell and chrome styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	litCellStyle = lipgloss.NewStyle().
			Foreground(litColor).
			Bold(true)

	darkCellStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	cursorStyle = lipgloss.NewStyle().
			Foreground(cursorColor).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			MarginTop(1)
)
