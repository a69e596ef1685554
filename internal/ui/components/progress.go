package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/ui/theme"
)

// ProgressBar is a one-line horizontal bar with an optional label and
// percentage readout.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	label := ""
	if p.Label != "" {
		label = theme.Body.Render(p.Label) + "  "
	}

	readout := ""
	readoutWidth := 0
	if p.ShowPercent {
		readout = theme.Hint.Italic(false).Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
		readoutWidth = 6
	}

	cells := p.Width - lipgloss.Width(label) - readoutWidth
	if cells < 4 {
		cells = 4
	}

	filled := int(float64(cells) * p.Percent)
	filled = min(max(filled, 0), cells)

	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", cells-filled))

	return label + bar + readout
}
