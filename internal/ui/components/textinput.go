package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/ui/theme"
)

// TextInput is a single-line field for the converter form. With
// DecimalOnly set it admits digits and at most one decimal point,
// so a parse failure can only mean the field was left empty.
type TextInput struct {
	Model       textinput.Model
	DecimalOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

// NewTextInput returns a focused field with the given placeholder.
func NewTextInput(placeholder string, decimalOnly bool, maxWidth int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	if maxWidth > 0 {
		m.CharLimit = maxWidth
	}
	m.Focus()

	return TextInput{Model: m, DecimalOnly: decimalOnly, MaxWidth: maxWidth}
}

func (t TextInput) Init() tea.Cmd { return t.Model.Focus() }

// Update forwards the message unless DecimalOnly rejects the keystroke.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && t.DecimalOnly && !t.admits(key.String()) {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// admits reports whether a printable keystroke may enter the field.
// Multi-rune key names (enter, backspace, tab) always pass through.
func (t TextInput) admits(key string) bool {
	if len(key) != 1 {
		return true
	}
	switch c := key[0]; {
	case c >= '0' && c <= '9':
		return true
	case c == '.':
		return !strings.Contains(t.Model.Value(), ".")
	default:
		return false
	}
}

// View renders the field, with a pass/fail mark once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	if !t.valid {
		mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view + " " + mark
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// FloatValue parses the field as a float64.
func (t TextInput) FloatValue() (float64, error) {
	return strconv.ParseFloat(t.Model.Value(), 64)
}

// Submit records the validation outcome shown by View.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

func (t *TextInput) Blur() {
	t.Model.Blur()
}

func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}
