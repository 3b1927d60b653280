package home

import (
	"charm.land/lipgloss/v2"

	"github.com/erininge/Time-Game/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotSleepy      MascotVariant = iota // No streak yet
	MascotIdle                             // Streak running
	MascotCelebrating                      // A week or more
)

const mascotSleepy = `╭──────╮
│  12  │ z
│9 ◡◡ 3│
│  6   │
╰──────╯`

const mascotIdle = `╭──────╮
│  12  │
│9 ◉◉ 3│
│  ▽   │
╰──────╯`

const mascotCelebrating = `╭──────╮
│  12  │
│9 ★★ 3│
│  ▿   │
╰─╥══╥─╯
  ╚══╝`

// mascotFor picks the variant for a streak length.
func mascotFor(streak int) MascotVariant {
	switch {
	case streak >= 7:
		return MascotCelebrating
	case streak >= 1:
		return MascotIdle
	}
	return MascotSleepy
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotSleepy:
		art = mascotSleepy
		fg = theme.TextDim
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
