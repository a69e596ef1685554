package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/catalog"
	"github.com/daylab/labmate/internal/explain"
	"github.com/daylab/labmate/internal/router"
	"github.com/daylab/labmate/internal/screen"
	"github.com/daylab/labmate/internal/screens/converter"
	"github.com/daylab/labmate/internal/screens/inventory"
	quizscreen "github.com/daylab/labmate/internal/screens/quiz"
	"github.com/daylab/labmate/internal/screens/stats"
	"github.com/daylab/labmate/internal/store"
	"github.com/daylab/labmate/internal/ui/components"
	"github.com/daylab/labmate/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	itemCount  int
	sessions   int
	bestScore  int
	llmEnabled bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(items []catalog.Item, results store.ResultRepo, explainSvc *explain.Service) *HomeScreen {
	var sessions, bestScore int
	if results != nil {
		if st, err := results.Stats(context.Background()); err == nil {
			sessions = st.Sessions
			bestScore = st.BestScore
		}
	}

	menuItems := []components.MenuItem{
		{Label: "안전 퀴즈", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(items, results, explainSvc)}
			}
		}},
		{Label: "농도 변환기", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: converter.New()}
			}
		}},
		{Label: "시약 목록", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: inventory.New(items, explainSvc)}
			}
		}},
		{Label: "퀴즈 기록", Disabled: results == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(results)}
			}
		}},
		{Label: "종료", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(menuItems),
		itemCount:  len(items),
		sessions:   sessions,
		bestScore:  bestScore,
		llmEnabled: explainSvc != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("LabMate")
	subtitle := theme.Subtitle.Render("학교 실험실 안전 도우미")
	sections = append(sections, title, subtitle, "")

	sections = append(sections, renderStatsBar(h.itemCount, h.sessions, h.bestScore))
	sections = append(sections, "")

	menuBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4).
		Render(h.menu.View())
	sections = append(sections, menuBox)

	if !h.llmEnabled {
		sections = append(sections, "",
			theme.Hint.Render("API 키가 없어 AI 안전 해설이 비활성화되었습니다"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderStatsBar(itemCount, sessions, bestScore int) string {
	parts := []string{
		fmt.Sprintf("⚗ 시약 %d종", itemCount),
		fmt.Sprintf("✎ 응시 %d회", sessions),
	}
	if bestScore > 0 {
		parts = append(parts, fmt.Sprintf("★ 최고 %d점", bestScore))
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.Join(parts, "    "))
}
