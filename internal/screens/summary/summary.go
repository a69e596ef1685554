// Package summary shows the outcome of a finished quiz: verdict, score,
// and the questions the student missed with their correct answers.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/quizgen"
	"github.com/daylab/labmate/internal/router"
	"github.com/daylab/labmate/internal/screen"
	"github.com/daylab/labmate/internal/ui/layout"
	"github.com/daylab/labmate/internal/ui/theme"
)

// Result is what the quiz screen hands over when the session ends.
type Result struct {
	Score    int
	Correct  int
	Total    int
	Passed   bool
	Duration time.Duration
	Missed   []quizgen.Question
}

type SummaryScreen struct {
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

func New(result Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Quiz Result" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("안전 퀴즈 완료")
	lines := []string{
		header,
		"",
		fmt.Sprintf("%s   %s", badge(r.Score), verdict(r.Passed)),
		"",
		theme.Body.Render(fmt.Sprintf("맞은 문항: %d/%d        소요 시간: %s",
			r.Correct, r.Total, clock(r.Duration))),
		"",
	}
	if len(r.Missed) > 0 {
		lines = append(lines,
			theme.Hint.Italic(false).Render("틀린 문항"),
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60))),
			"")
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	for _, q := range r.Missed {
		b.WriteString(theme.Body.Render("  " + q.Text))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("    → " + keyAnswer(q)))
		b.WriteString("\n")
	}
	return b.String()
}

// clock formats a duration as m:ss.
func clock(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func badge(score int) string {
	style := theme.Correct
	if score < 80 {
		style = theme.Incorrect
	}
	return style.Render(fmt.Sprintf("%d점", score))
}

func verdict(passed bool) string {
	if passed {
		return theme.Correct.Render("합격")
	}
	return theme.Incorrect.Render("불합격")
}

func keyAnswer(q quizgen.Question) string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}
