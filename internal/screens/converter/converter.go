package converter

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daylab/labmate/internal/chem"
	"github.com/daylab/labmate/internal/screen"
	"github.com/daylab/labmate/internal/ui/components"
	"github.com/daylab/labmate/internal/ui/layout"
	"github.com/daylab/labmate/internal/ui/theme"
)

// Field indices in tab order.
const (
	fieldValue = iota
	fieldMolarMass
	fieldDensity
	fieldCount
)

// ConverterScreen converts between percent and molar concentration.
type ConverterScreen struct {
	inputs  [fieldCount]components.TextInput
	focused int
	unit    chem.Unit
	result  *chem.Result
	invalid bool
}

var _ screen.Screen = (*ConverterScreen)(nil)
var _ screen.KeyHintProvider = (*ConverterScreen)(nil)

// New creates a ConverterScreen with percent as the starting unit.
func New() *ConverterScreen {
	c := &ConverterScreen{unit: chem.UnitPercent}
	c.inputs[fieldValue] = components.NewTextInput("농도 값", true, 12)
	c.inputs[fieldMolarMass] = components.NewTextInput("분자량 (g/mol)", true, 12)
	c.inputs[fieldDensity] = components.NewTextInput("밀도 (g/mL, 비우면 1.0)", true, 12)
	c.focusField(0)
	return c
}

func (c *ConverterScreen) Init() tea.Cmd {
	return c.inputs[c.focused].Init()
}

func (c *ConverterScreen) Title() string {
	return "Concentration Converter"
}

func (c *ConverterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "U", Description: "Toggle unit"},
		{Key: "Enter", Description: "Convert"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ConverterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		c.inputs[c.focused], cmd = c.inputs[c.focused].Update(msg)
		return c, cmd
	}

	switch kmsg.String() {
	case "tab", "down":
		return c, c.focusField((c.focused + 1) % fieldCount)
	case "shift+tab", "up":
		return c, c.focusField((c.focused + fieldCount - 1) % fieldCount)
	case "u", "U":
		c.toggleUnit()
		return c, nil
	case "enter":
		c.convert()
		return c, nil
	}

	var cmd tea.Cmd
	c.inputs[c.focused], cmd = c.inputs[c.focused].Update(msg)
	return c, cmd
}

func (c *ConverterScreen) focusField(i int) tea.Cmd {
	c.inputs[c.focused].Blur()
	c.focused = i
	return c.inputs[i].Focus()
}

func (c *ConverterScreen) toggleUnit() {
	if c.unit == chem.UnitPercent {
		c.unit = chem.UnitMolar
	} else {
		c.unit = chem.UnitPercent
	}
	c.result = nil
	c.invalid = false
}

func (c *ConverterScreen) convert() {
	c.result = nil
	c.invalid = false

	value, err := c.inputs[fieldValue].FloatValue()
	if err != nil {
		c.invalid = true
		return
	}
	molarMass, err := c.inputs[fieldMolarMass].FloatValue()
	if err != nil {
		c.invalid = true
		return
	}

	density := 0.0
	if c.inputs[fieldDensity].Value() != "" {
		density, err = c.inputs[fieldDensity].FloatValue()
		if err != nil {
			c.invalid = true
			return
		}
	}

	result := chem.Convert(chem.Input{
		Value:     value,
		Unit:      c.unit,
		MolarMass: molarMass,
		Density:   density,
	})
	if result == nil {
		c.invalid = true
		return
	}
	c.result = result
}

func (c *ConverterScreen) View(width, height int) string {
	var b strings.Builder

	unitLabel := "퍼센트 농도 (%)"
	if c.unit == chem.UnitMolar {
		unitLabel = "몰 농도 (mol/L)"
	}
	b.WriteString("  " + theme.Selected.Render("입력 단위: "+unitLabel) + "\n\n")

	labels := [fieldCount]string{"농도 값", "분자량", "밀도"}
	for i, input := range c.inputs {
		marker := "  "
		if i == c.focused {
			marker = "▸ "
		}
		b.WriteString(fmt.Sprintf("  %s%-8s %s\n", marker, labels[i], input.View()))
	}

	b.WriteString("\n")

	switch {
	case c.invalid:
		b.WriteString("  " + theme.Incorrect.Render("입력값을 확인하세요. 농도, 분자량, 밀도는 양수여야 합니다.") + "\n")
	case c.result != nil:
		b.WriteString(c.renderResult(width))
	default:
		b.WriteString("  " + theme.Hint.Render("값을 입력하고 Enter를 누르세요.") + "\n")
	}

	return b.String()
}

func (c *ConverterScreen) renderResult(width int) string {
	r := c.result
	var lines []string

	if r.Percent != nil {
		lines = append(lines, fmt.Sprintf("퍼센트 농도   %.4g %%", *r.Percent))
	}
	if r.Molarity != nil {
		lines = append(lines, fmt.Sprintf("몰 농도       %.4g mol/L", *r.Molarity))
	}
	if r.Molality != nil {
		lines = append(lines, fmt.Sprintf("몰랄 농도     %.4g mol/kg", *r.Molality))
	} else {
		lines = append(lines, "몰랄 농도     계산 불가 (용매 질량이 0 이하)")
	}

	body := theme.Body.Render(strings.Join(lines, "\n"))
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(body)

	out := indent(card, 2) + "\n"
	if r.DensityAssumed {
		out += "  " + theme.Hint.Render("밀도가 입력되지 않아 1.0 g/mL로 가정했습니다.") + "\n"
	}
	return out
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
