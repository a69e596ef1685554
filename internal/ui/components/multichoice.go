package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/ui/theme"
)

// MultiChoice presents one question with numbered options. After
// submission it locks and recolors to show the correct answer.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// IsCorrect reports whether the submitted choice was the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

func (m MultiChoice) submit(i int) MultiChoice {
	m.Selected = i
	m.Submitted = true
	m.ChosenIndex = i
	return m
}

// Update moves the cursor with arrows or j/k; enter submits the
// highlighted option and a digit key submits that option directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m.submit(m.Selected), nil
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				return m.submit(i), nil
			}
		}
	}
	return m, nil
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Selected && !m.Submitted {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", cursor, i+1, opt)
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if m.Submitted {
		switch i {
		case m.CorrectIndex:
			return theme.Correct
		case m.ChosenIndex:
			return theme.Incorrect
		default:
			return theme.Hint.Italic(false)
		}
	}
	if i == m.Selected {
		return theme.Selected
	}
	return theme.Unselected
}
