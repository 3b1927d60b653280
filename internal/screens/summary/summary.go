package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/erininge/Time-Game/internal/router"
	"github.com/erininge/Time-Game/internal/screen"
	"github.com/erininge/Time-Game/internal/session"
	"github.com/erininge/Time-Game/internal/streak"
	"github.com/erininge/Time-Game/internal/ui/components"
	"github.com/erininge/Time-Game/internal/ui/layout"
	"github.com/erininge/Time-Game/internal/ui/theme"
)

const (
	buttonAgain = iota
	buttonHome
)

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	summary  session.Summary
	streak   *streak.Record
	again    func() screen.Screen
	selected int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. rec is nil when the streak could not
// be updated. again builds the screen for another round.
func New(sum session.Summary, rec *streak.Record, again func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: sum, streak: rec, again: again}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "←→", Description: "Switch"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h", "shift+tab":
		s.selected = buttonAgain
	case "right", "l", "tab":
		s.selected = buttonHome
	case "r":
		return s, s.playAgain()
	case "esc":
		return s, goHome
	case "enter":
		var cmd tea.Cmd
		for _, b := range s.buttons() {
			if b.Active {
				_, cmd = b.Update(kmsg)
			}
		}
		return s, cmd
	}
	return s, nil
}

func (s *SummaryScreen) buttons() []components.Button {
	return []components.Button{
		components.NewButton("Play again", s.selected == buttonAgain, s.playAgain),
		components.NewButton("Home", s.selected == buttonHome, func() tea.Cmd { return goHome }),
	}
}

func (s *SummaryScreen) playAgain() tea.Cmd {
	if s.again == nil {
		return goHome
	}
	next := s.again()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func goHome() tea.Msg {
	return router.PopToRootMsg{}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")

	title := "Session complete!"
	if sum.Answered < sum.Total {
		title = "Session ended"
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Foreground(scoreColor(sum.Percent())).
		Bold(true).
		Render(sum.String())
	b.WriteString(components.Centered(score, width))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", components.Ratio(sum.Correct, sum.Total), false, min(width-8, 40))
	b.WriteString(components.Centered(bar.View(), width))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Answered %d of %d", sum.Answered, sum.Total)))
	b.WriteString("\n")

	if s.streak != nil {
		unit := "days"
		if s.streak.Streak == 1 {
			unit = "day"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Streak: %d %s", s.streak.Streak, unit)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.ButtonRow(s.buttons(), width))

	return b.String()
}

func scoreColor(pct int) color.Color {
	switch {
	case pct >= 80:
		return theme.Success
	case pct >= 50:
		return theme.Accent
	}
	return theme.Error
}
