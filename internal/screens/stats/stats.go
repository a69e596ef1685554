package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/screen"
	"github.com/daylab/labmate/internal/store"
	"github.com/daylab/labmate/internal/ui/layout"
	"github.com/daylab/labmate/internal/ui/theme"
)

const recentLimit = 15

type statsLoadedMsg struct {
	Stats  store.ResultStats
	Recent []store.QuizResultData
	Err    error
}

// StatsScreen displays aggregate and recent quiz results.
type StatsScreen struct {
	results store.ResultRepo

	stats  store.ResultStats
	recent []store.QuizResultData
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(results store.ResultRepo) *StatsScreen {
	return &StatsScreen{results: results}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StatsScreen) Title() string {
	return "Quiz History"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := s.results.Stats(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		recent, err := s.results.Recent(ctx, recentLimit)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Stats: stats, Recent: recent}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
			return s, nil
		}
		s.stats = m.Stats
		s.recent = m.Recent
		s.loaded = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("기록을 불러올 수 없습니다: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("불러오는 중...")
	}
	if s.stats.Sessions == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("아직 퀴즈 기록이 없습니다.")
	}

	var b strings.Builder

	summary := fmt.Sprintf("응시 %d회    합격 %d회    평균 %.1f점    최고 %d점",
		s.stats.Sessions, s.stats.Passed, s.stats.AvgScore, s.stats.BestScore)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(summary))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, r := range s.recent {
		verdict := theme.Correct.Render("합격")
		if !r.Passed {
			verdict = theme.Incorrect.Render("불합격")
		}
		line := fmt.Sprintf("  %s    %2d/%2d    %3d점    %s",
			r.TakenAt.Local().Format("2006-01-02 15:04"),
			r.Correct, r.Total, r.Score, verdict)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
