package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/erininge/Time-Game/internal/ui/components"
	"github.com/erininge/Time-Game/internal/ui/theme"
)

const titleFull = `     ██╗██╗██╗  ██╗ █████╗ ███╗   ██╗
     ██║██║██║ ██╔╝██╔══██╗████╗  ██║
     ██║██║█████╔╝ ███████║██╔██╗ ██║
██   ██║██║██╔═██╗ ██╔══██║██║╚██╗██║
╚█████╔╝██║██║  ██╗██║  ██║██║ ╚████║
 ╚════╝ ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const titleCompact = "J · I · K · A · N   時間"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleFull) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Japanese clock-time drills · 時間の読み方"))
}

// renderStreakBar renders the streak in a bordered box matching content width.
func renderStreakBar(streak, cw int) string {
	unit := "DAYS"
	if streak == 1 {
		unit = "DAY"
	}
	text := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("★ STREAK %d %s", streak, unit))
	if streak == 0 {
		text = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("★ Finish a quiz to start a streak")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// renderSettings renders the quiz option rows.
func renderSettings(fields []components.Choice, cw int) string {
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}
	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, f.View(labelWidth))
	}
	block := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Align(lipgloss.Left).Render(block))
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderMenu centers the menu block at content width.
func renderMenu(view string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.TrimRight(view, "\n")))
}
