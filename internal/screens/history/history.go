package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/router"
	"github.com/erininge/Time-Game/internal/screen"
	"github.com/erininge/Time-Game/internal/session"
	"github.com/erininge/Time-Game/internal/store"
	"github.com/erininge/Time-Game/internal/ui/components"
	"github.com/erininge/Time-Game/internal/ui/format"
	"github.com/erininge/Time-Game/internal/ui/layout"
	"github.com/erininge/Time-Game/internal/ui/theme"
)

// sessionLimit caps how many past sessions are listed.
const sessionLimit = 50

// Reader is the read side of the event store.
type Reader interface {
	QuerySessionSummaries(ctx context.Context, opts store.QueryOpts) ([]store.SessionRecord, error)
	AnswerStats(ctx context.Context) ([]store.KindStats, error)
}

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Stats    []store.KindStats
	Err      error
}

// HistoryScreen lists past sessions and per-kind accuracy.
type HistoryScreen struct {
	reader   Reader
	sessions []store.SessionRecord
	stats    []store.KindStats
	selected int
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(reader Reader) *HistoryScreen {
	return &HistoryScreen{reader: reader}
}

func (s *HistoryScreen) Init() tea.Cmd {
	reader := s.reader
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := reader.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		stats, err := reader.AnswerStats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderStats(width))
	b.WriteString("\n")

	statsHeight := lipgloss.Height(b.String())
	visible := max(height-statsHeight-2, 1)
	s.scrollTo(visible)

	end := min(s.offset+visible, len(s.sessions))
	for i := s.offset; i < end; i++ {
		rec := s.sessions[i]
		sum := session.Summary{
			Correct:  rec.CorrectAnswers,
			Answered: rec.QuestionsAnswered,
			Total:    rec.QuestionsTotal,
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			prefix, format.Date(rec.Timestamp), format.Duration(rec.DurationSecs), sum.String())
		if sum.Answered < sum.Total {
			line += "  (ended early)"
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(components.Centered(style.Render(line), width))
		b.WriteString("\n")
	}

	return b.String()
}

// scrollTo keeps the selection inside a window of visible rows.
func (s *HistoryScreen) scrollTo(visible int) {
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}
}

// renderStats draws one accuracy bar per question kind.
func (s *HistoryScreen) renderStats(width int) string {
	if len(s.stats) == 0 {
		return ""
	}
	var lines []string
	for _, ks := range s.stats {
		label := fmt.Sprintf("%-26s %4d", quiz.Kind(ks.Kind).Label(), ks.Total)
		bar := components.NewProgressBar(label, ks.Accuracy(), true, min(width-12, 56))
		lines = append(lines, bar.View())
	}
	return components.Card(strings.Join(lines, "\n"), min(width-4, 72))
}
