package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/daylab/labmate/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. Disabled items render
// dimmed and the cursor skips over them.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a keyboard-driven vertical menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu puts the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// seek walks from index from in steps of dir to the next enabled item,
// staying put when there is none.
func (m Menu) seek(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return from
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.seek(m.Selected, -1)
	case "down", "j":
		m.Selected = m.seek(m.Selected, 1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		style, prefix := theme.Unselected, "    "
		switch {
		case i == m.Selected:
			style, prefix = theme.Selected, "  ▸ "
		case item.Disabled:
			style = theme.Hint.Italic(false)
		}
		b.WriteString(style.Render(prefix+item.Label) + "\n")
	}
	return b.String()
}
