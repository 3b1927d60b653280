package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/erininge/Time-Game/internal/ui/theme"
)

// ChoiceOption is one value of a Choice.
type ChoiceOption struct {
	Label string
	Value string
}

// Choice is a single-line selector that cycles through a fixed set of
// options with left/right while focused.
type Choice struct {
	Label    string
	Options  []ChoiceOption
	Selected int
	Focused  bool
}

// NewChoice creates a selector positioned on the option whose Value is
// current, or on the first option when none matches.
func NewChoice(label string, options []ChoiceOption, current string) Choice {
	c := Choice{Label: label, Options: options}
	for i, o := range options {
		if o.Value == current {
			c.Selected = i
			break
		}
	}
	return c
}

// Value returns the selected option's value.
func (c Choice) Value() string {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[c.Selected].Value
}

// Update cycles the selection. Keys are ignored while unfocused.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.Focused || len(c.Options) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, nil
}

// View renders "Label   ‹ option ›" with labelWidth padding.
func (c Choice) View(labelWidth int) string {
	label := fmt.Sprintf("%-*s", labelWidth, c.Label)
	value := ""
	if len(c.Options) > 0 {
		value = c.Options[c.Selected].Label
	}

	if c.Focused {
		return theme.Selected.Render("▸ "+label) + "  " +
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("‹ "+value+" ›")
	}
	return theme.Unselected.Render("  "+label) + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+value)
}
