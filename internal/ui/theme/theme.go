// Package theme holds the shared palette and text styles. Screens pull
// from here so the whole app recolors in one place.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Muted lab-bench palette: cool blues with amber highlights.
var (
	Primary   = lipgloss.Color("#0EA5E9") // sky blue
	Secondary = lipgloss.Color("#10B981") // emerald
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E") // green
	Error     = lipgloss.Color("#EF4444") // red
	Warning   = lipgloss.Color("#EAB308") // yellow
	Text      = lipgloss.Color("#F1F5F9") // off-white
	TextDim   = lipgloss.Color("#7C8BA1") // cool gray
	BgCard    = lipgloss.Color("#16213A") // deep blue-gray
	Border    = lipgloss.Color("#2B3B55") // steel
)

// Text styles.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// Interaction states. Hazard marks reagent warnings wherever they
// appear, not just in the quiz.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Hazard     = lipgloss.NewStyle().Foreground(Warning).Bold(true)
)
