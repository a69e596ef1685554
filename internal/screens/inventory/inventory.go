package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/catalog"
	"github.com/daylab/labmate/internal/explain"
	"github.com/daylab/labmate/internal/screen"
	"github.com/daylab/labmate/internal/ui/layout"
	"github.com/daylab/labmate/internal/ui/theme"
)

type explainPollMsg time.Time

// InventoryScreen lists the reagent catalog with hazard labels and
// locations. Pressing "e" requests a safety briefing for the selection.
type InventoryScreen struct {
	items      []catalog.Item
	explainSvc *explain.Service

	selected       int
	offset         int
	explanation    *explain.Explanation
	explainWaiting bool
}

var _ screen.Screen = (*InventoryScreen)(nil)
var _ screen.KeyHintProvider = (*InventoryScreen)(nil)

// New creates an InventoryScreen. explainSvc may be nil.
func New(items []catalog.Item, explainSvc *explain.Service) *InventoryScreen {
	return &InventoryScreen{items: items, explainSvc: explainSvc}
}

func (s *InventoryScreen) Init() tea.Cmd {
	return nil
}

func (s *InventoryScreen) Title() string {
	return "Inventory"
}

func (s *InventoryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
	}
	if s.explainSvc != nil {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Safety briefing"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *InventoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainPollMsg:
		if !s.explainWaiting {
			return s, nil
		}
		if exp, ok := s.explainSvc.Consume(); ok {
			s.explanation = exp
			s.explainWaiting = false
			return s, nil
		}
		return s, pollCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
				s.explanation = nil
			}
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
				s.explanation = nil
			}
		case "e", "E":
			if s.explainSvc != nil && len(s.items) > 0 {
				s.explainSvc.Request(context.Background(), explain.Input{
					Item: s.items[s.selected],
				})
				s.explanation = nil
				s.explainWaiting = true
				return s, pollCmd()
			}
		}
	}
	return s, nil
}

func (s *InventoryScreen) View(width, height int) string {
	if len(s.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("시약 목록이 비어 있습니다.\n\n'labmate inventory import' 명령으로 목록을 가져오세요.")
	}

	// Reserve the lower half for the briefing pane when one is showing.
	listHeight := height - 2
	if s.explanation != nil || s.explainWaiting {
		listHeight = height / 2
	}
	if listHeight < 3 {
		listHeight = 3
	}

	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+listHeight {
		s.offset = s.selected - listHeight + 1
	}

	var b strings.Builder
	end := s.offset + listHeight
	if end > len(s.items) {
		end = len(s.items)
	}

	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderRow(i, width) + "\n")
	}

	if s.explainWaiting {
		b.WriteString("\n  " + theme.Hint.Render("안전 설명을 생성하는 중...") + "\n")
	} else if s.explanation != nil {
		b.WriteString("\n" + s.renderBriefing(width))
	}

	return b.String()
}

func (s *InventoryScreen) renderRow(i, width int) string {
	it := s.items[i]

	marker := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		marker = "▸ "
		style = theme.Selected
	}

	name := it.DisplayName()
	if name == "" {
		name = "(이름 없음)"
	}

	loc := "-"
	if l, ok := it.Location(); ok {
		loc = l
	}

	formula := ""
	if f, ok := catalog.Str(it.Formula); ok {
		formula = f
	}

	line := fmt.Sprintf("%s%-20s %-12s %-14s %s",
		marker, truncate(name, 20), truncate(formula, 12), it.Hazard.Label(), truncate(loc, 24))
	return style.Render(truncate(line, width-2))
}

func (s *InventoryScreen) renderBriefing(width int) string {
	exp := s.explanation
	var b strings.Builder
	b.WriteString("  " + theme.Hazard.Render(exp.ItemName) + "\n")
	b.WriteString("  " + theme.Body.Render(exp.Summary) + "\n")
	for _, h := range exp.Hazards {
		b.WriteString("  · " + theme.Body.Render(h) + "\n")
	}
	for _, h := range exp.Handling {
		b.WriteString("  · " + theme.Body.Render(h) + "\n")
	}
	if exp.FirstAid != "" {
		b.WriteString("  " + theme.Hint.Render("응급처치: "+exp.FirstAid) + "\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	if max <= 1 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > max-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func pollCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return explainPollMsg(t)
	})
}
