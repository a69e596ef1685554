// Package app owns the Bubble Tea shell: the root model, the header and
// footer chrome, and global key handling. Screens only see what the
// router forwards.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/catalog"
	"github.com/daylab/labmate/internal/explain"
	"github.com/daylab/labmate/internal/router"
	"github.com/daylab/labmate/internal/screen"
	"github.com/daylab/labmate/internal/screens/home"
	quizscreen "github.com/daylab/labmate/internal/screens/quiz"
	"github.com/daylab/labmate/internal/store"
	"github.com/daylab/labmate/internal/ui/layout"
)

// Deps holds the services the TUI needs. Nil fields degrade the
// corresponding features instead of failing.
type Deps struct {
	Items      []catalog.Item
	Results    store.ResultRepo
	ExplainSvc *explain.Service
	BestScore  int

	// StartQuiz opens the safety quiz immediately instead of the menu.
	StartQuiz bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	width     int
	height    int
	itemCount int
	bestScore int
	initCmd   tea.Cmd
}

func newAppModel(deps Deps) AppModel {
	m := AppModel{
		router:    router.New(home.New(deps.Items, deps.Results, deps.ExplainSvc)),
		itemCount: len(deps.Items),
		bestScore: deps.BestScore,
	}
	if deps.StartQuiz {
		quiz := quizscreen.New(deps.Items, deps.Results, deps.ExplainSvc)
		m.initCmd = func() tea.Msg { return router.PushScreenMsg{Screen: quiz} }
	}
	return m
}

func (m AppModel) Init() tea.Cmd { return m.initCmd }

// Update intercepts ctrl+c and esc before the router sees anything;
// everything else flows to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}
	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
		return v
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.itemCount, m.bestScore, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	inner := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	content := m.router.View(m.width, max(inner, 0))

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// footerHints asks the active screen for hints, falling back to
// navigation defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

	if provider, ok := active.(screen.KeyHintProvider); ok {
		return append(provider.KeyHints(), quit)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}, quit}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		quit,
	}
}

// Run blocks until the program exits.
func Run(deps Deps) error {
	if _, err := tea.NewProgram(newAppModel(deps)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
