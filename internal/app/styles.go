package app

import "charm.land/lipgloss/v2"

// Color palette — warm, readable on dark terminals.
var (
	colorPrimary = lipgloss.Color("#F97316") // Orange
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorAccent  = lipgloss.Color("#8B5CF6") // Purple
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	stylePrompt = lipgloss.NewStyle().
			Bold(true)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWrong = lipgloss.NewStyle().
			Foreground(colorError)

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleXP = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)
)
