package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/erininge/Time-Game/internal/ui/components"
	"github.com/erininge/Time-Game/internal/ui/format"
	"github.com/erininge/Time-Game/internal/ui/theme"
)

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	st := s.runner.Session()
	q := st.Current

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.Meta)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %s",
			st.Index, st.Total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			format.Score(st.Correct),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")
	bar := components.NewProgressBar("", components.Ratio(st.Index-1, st.Total), false, min(width-8, 50))
	b.WriteString(components.Centered(bar.View(), width))
	b.WriteString("\n\n\n")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 4).
		Render(q.Prompt)
	b.WriteString(components.Centered(prompt, width))
	b.WriteString("\n\n")

	target := "Answer in Japanese"
	if q.TargetsDigital() {
		target = "Answer as a clock time, e.g. 15:20 or 3:20 PM"
	}
	b.WriteString(components.Centered(theme.Hint.Render(target), width))
	b.WriteString("\n\n")
	b.WriteString(components.Centered(s.input.View(), width))

	return b.String()
}

// renderFeedback renders the result of the current question.
func (s *SessionScreen) renderFeedback(width, height int) string {
	st := s.runner.Session()
	fb := st.Last
	q := st.Current

	var b strings.Builder
	b.WriteString("\n\n")

	verdict := theme.Incorrect
	if fb.Correct {
		verdict = theme.Correct
	} else if fb.Skipped {
		verdict = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	b.WriteString(components.Centered(verdict.Render(format.Verdict(*fb)), width))
	b.WriteString("\n\n")

	b.WriteString(components.Centered(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Meta+":  "+q.Prompt), width))
	b.WriteString("\n")
	if !fb.Correct && !fb.Skipped {
		b.WriteString(components.Centered(
			lipgloss.NewStyle().Foreground(theme.Text).Render("You answered: "+fb.Answer), width))
		b.WriteString("\n")
	}
	b.WriteString(components.Centered(
		lipgloss.NewStyle().Foreground(theme.Accent).Render(format.Expected(q, *fb)), width))
	b.WriteString("\n\n")

	b.WriteString(components.Centered(
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Score: %d/%d", st.Correct, st.Answered)), width))
	b.WriteString("\n\n")

	b.WriteString(components.Centered(theme.Hint.Render("Press any key to continue..."), width))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Unanswered questions count as missed."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your session...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
