package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/ui/components"
	"github.com/daylab/labmate/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Quiz unavailable: " + q.errMsg + "\n\nPress any key to go back.")
	}

	if q.questions == nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Preparing questions...")
	}

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", q.index+1, len(q.questions)),
		float64(q.index)/float64(len(q.questions)),
		false,
		min(width-8, 60),
	)
	b.WriteString("  " + progress.View() + "\n\n")

	b.WriteString(indent(q.mc.View(), 2))

	if q.showingFeedback {
		b.WriteString("\n")
		if q.mc.IsCorrect() {
			b.WriteString("  " + theme.Correct.Render("정답입니다!") + "\n")
		} else {
			b.WriteString("  " + theme.Incorrect.Render("틀렸습니다.") + "\n")
			b.WriteString(q.renderExplanation(width))
		}
	}

	return b.String()
}

func (q *QuizScreen) renderExplanation(width int) string {
	if q.explainWaiting {
		return "  " + theme.Hint.Render("안전 설명을 생성하는 중...") + "\n"
	}
	if q.explanation == nil {
		return ""
	}

	exp := q.explanation
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + theme.Hazard.Render(exp.ItemName) + "\n")
	b.WriteString(indent(wrap(exp.Summary, width-4), 2) + "\n")
	for _, h := range exp.Hazards {
		b.WriteString("  · " + theme.Body.Render(h) + "\n")
	}
	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func wrap(s string, width int) string {
	if width < 10 {
		return s
	}
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(s) {
		wl := lipgloss.Width(word)
		if line > 0 && line+wl+1 > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += wl
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
