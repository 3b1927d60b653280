package session

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/router"
	"github.com/erininge/Time-Game/internal/screen"
	sess "github.com/erininge/Time-Game/internal/session"
	"github.com/erininge/Time-Game/internal/ui/components"
	"github.com/erininge/Time-Game/internal/ui/layout"
)

// answerCharLimit bounds the answer field; the longest reading is well
// under it.
const answerCharLimit = 40

// Deps are the collaborators of a quiz session screen.
type Deps struct {
	Events sess.EventRecorder
	Streak sess.StreakToucher
	Log    logrus.FieldLogger

	// Source overrides the random question generator.
	Source sess.QuestionSource
}

// SessionScreen implements screen.Screen for an active quiz.
type SessionScreen struct {
	settings    quiz.Settings
	deps        Deps
	runner      *sess.Runner
	input       components.TextInput
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen that starts a session with settings on Init.
func New(settings quiz.Settings, deps Deps) *SessionScreen {
	return &SessionScreen{
		settings: settings,
		deps:     deps,
		input:    components.NewTextInput("Type your answer...", answerCharLimit),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startSession(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.runner == nil {
		return nil
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.phase() == sess.PhaseAnswered {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Skip"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.runner == nil {
		return renderLoading(width, height)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	if s.phase() == sess.PhaseAnswered {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.runner = msg.Runner
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward cursor blinks and the like to the input.
	if s.runner != nil && s.phase() == sess.PhaseUnanswered && !s.confirmQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) phase() sess.Phase {
	return s.runner.Session().Phase
}

// startSession creates the runner, which records the session start.
func (s *SessionScreen) startSession() tea.Cmd {
	settings, deps := s.settings, s.deps
	return func() tea.Msg {
		r, err := sess.NewRunner(context.Background(), settings, deps.Source, sess.Deps{
			Events: deps.Events,
			Streak: deps.Streak,
			Log:    deps.Log,
		})
		return sessionStartedMsg{Runner: r, Err: err}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.runner == nil {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s.finish()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.phase() {
	case sess.PhaseAnswered:
		return s.advance()

	case sess.PhaseUnanswered:
		switch key {
		case "esc":
			s.confirmQuit = true
			return s, nil
		case "enter":
			return s.submit()
		case "tab":
			return s.skip()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit checks the typed answer. Blank input is ignored.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	raw := s.input.Value()
	if strings.TrimSpace(raw) == "" {
		return s, nil
	}
	fb, err := s.runner.Submit(context.Background(), raw)
	if err != nil {
		return s, nil
	}
	s.input.Submit(fb.Correct)
	return s, nil
}

func (s *SessionScreen) skip() (screen.Screen, tea.Cmd) {
	if _, err := s.runner.Skip(context.Background()); err != nil {
		return s, nil
	}
	s.input.Submit(false)
	return s, nil
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.runner.Advance(context.Background()); err != nil {
		return s, nil
	}
	if s.phase() == sess.PhaseFinished {
		return s, s.showSummary()
	}
	s.input.Reset()
	return s, nil
}

func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	if err := s.runner.Finish(context.Background()); err != nil {
		return s, nil
	}
	return s, s.showSummary()
}

// showSummary swaps this screen for the summary and, when the streak was
// updated, announces it to the header.
func (s *SessionScreen) showSummary() tea.Cmd {
	again := func() screen.Screen { return New(s.settings, s.deps) }
	next := newSummaryScreenAdapter(s.runner, again)

	cmds := []tea.Cmd{func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }}
	if rec := s.runner.Streak(); rec != nil {
		n := rec.Streak
		cmds = append(cmds, func() tea.Msg { return screen.StreakUpdatedMsg{Streak: n} })
	}
	return tea.Batch(cmds...)
}
