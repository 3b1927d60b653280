package session

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/erininge/Time-Game/internal/clock"
	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/router"
	"github.com/erininge/Time-Game/internal/screen"
	sess "github.com/erininge/Time-Game/internal/session"
	"github.com/erininge/Time-Game/internal/store"
	"github.com/erininge/Time-Game/internal/streak"
)

// fixedSource always asks kanji→digital for 15:20.
type fixedSource struct {
	gen *quiz.Generator
}

func (f fixedSource) Next() quiz.Question {
	return f.gen.Build(clock.MustNew(15, 20), quiz.JapaneseToDigital, quiz.ScriptKanji, quiz.Digital24h)
}

// mockEventRepo implements sess.EventRecorder for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}

type mockStreak struct {
	touches int
}

func (m *mockStreak) Touch(context.Context) (streak.Record, error) {
	m.touches++
	return streak.Record{Streak: 5}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen(t *testing.T, questions int) (*SessionScreen, *mockEventRepo, *mockStreak) {
	t.Helper()
	settings := quiz.DefaultSettings()
	settings.Questions = questions
	gen, err := quiz.NewGenerator(settings, nil)
	if err != nil {
		t.Fatal(err)
	}
	events := &mockEventRepo{}
	st := &mockStreak{}
	s := New(settings, Deps{Events: events, Streak: st, Source: fixedSource{gen: gen}})
	return s, events, st
}

// started runs the start command synchronously.
func started(t *testing.T, s *SessionScreen) {
	t.Helper()
	msg := s.startSession()()
	s.Update(msg)
	if s.runner == nil {
		t.Fatalf("session did not start: %s", s.errMsg)
	}
}

func typeAnswer(s *SessionScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestSessionScreen_Title(t *testing.T) {
	s, _, _ := testSessionScreen(t, 3)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestSessionScreen_LoadingView(t *testing.T) {
	s, _, _ := testSessionScreen(t, 3)
	if !strings.Contains(s.View(80, 24), "Preparing") {
		t.Error("expected loading view before start")
	}
	if s.KeyHints() != nil {
		t.Error("expected no hints before start")
	}
}

func TestSessionScreen_StartRecordsEvent(t *testing.T) {
	s, events, _ := testSessionScreen(t, 3)
	started(t, s)

	if len(events.sessionEvents) != 1 || events.sessionEvents[0].Action != store.ActionStart {
		t.Fatalf("session events = %+v", events.sessionEvents)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "午後三時二十分") {
		t.Errorf("question view missing prompt: %q", view)
	}
	if !strings.Contains(view, "Q 1/3") {
		t.Errorf("question view missing counter: %q", view)
	}
}

func TestSessionScreen_StartError(t *testing.T) {
	settings := quiz.DefaultSettings()
	settings.Questions = 0
	s := New(settings, Deps{})
	s.Update(s.startSession()())
	if s.errMsg == "" {
		t.Fatal("expected an error for invalid settings")
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestSessionScreen_CorrectAnswer(t *testing.T) {
	s, events, _ := testSessionScreen(t, 3)
	started(t, s)

	typeAnswer(s, "3:20pm")
	s.Update(specialKey(tea.KeyEnter))

	st := s.runner.Session()
	if st.Phase != sess.PhaseAnswered || st.Correct != 1 {
		t.Fatalf("phase %v correct %d, want answered/1", st.Phase, st.Correct)
	}
	if len(events.answerEvents) != 1 || !events.answerEvents[0].Correct {
		t.Errorf("answer events = %+v", events.answerEvents)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Correct!") {
		t.Errorf("feedback missing verdict: %q", view)
	}
	if !strings.Contains(view, "24h: 15:20 | 12h: 3:20 PM") {
		t.Errorf("feedback missing expected text: %q", view)
	}
}

func TestSessionScreen_WrongAnswer(t *testing.T) {
	s, _, _ := testSessionScreen(t, 3)
	started(t, s)

	typeAnswer(s, "3:30")
	s.Update(specialKey(tea.KeyEnter))

	st := s.runner.Session()
	if st.Phase != sess.PhaseAnswered || st.Correct != 0 {
		t.Fatalf("phase %v correct %d, want answered/0", st.Phase, st.Correct)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Not quite") || !strings.Contains(view, "You answered: 3:30") {
		t.Errorf("feedback view = %q", view)
	}
}

func TestSessionScreen_BlankSubmitIgnored(t *testing.T) {
	s, _, _ := testSessionScreen(t, 3)
	started(t, s)

	typeAnswer(s, "  ")
	s.Update(specialKey(tea.KeyEnter))
	if s.runner.Session().Phase != sess.PhaseUnanswered {
		t.Error("blank answer should not be submitted")
	}
}

func TestSessionScreen_Skip(t *testing.T) {
	s, events, _ := testSessionScreen(t, 3)
	started(t, s)

	s.Update(specialKey(tea.KeyTab))

	st := s.runner.Session()
	if st.Phase != sess.PhaseAnswered || st.Correct != 0 || !st.Last.Skipped {
		t.Fatalf("after skip: phase %v correct %d last %+v", st.Phase, st.Correct, st.Last)
	}
	if len(events.answerEvents) != 1 || !events.answerEvents[0].Skipped {
		t.Errorf("answer events = %+v", events.answerEvents)
	}
	if !strings.Contains(s.View(100, 30), "Skipped") {
		t.Error("feedback should show Skipped")
	}
}

func TestSessionScreen_AnyKeyAdvances(t *testing.T) {
	s, _, _ := testSessionScreen(t, 3)
	started(t, s)

	s.Update(specialKey(tea.KeyTab))
	s.Update(keyPress('x'))

	st := s.runner.Session()
	if st.Phase != sess.PhaseUnanswered || st.Index != 2 {
		t.Fatalf("phase %v index %d, want unanswered/2", st.Phase, st.Index)
	}
	if s.input.Value() != "" || s.input.Submitted() {
		t.Error("input should be reset for the next question")
	}
}

func TestSessionScreen_FinishShowsSummary(t *testing.T) {
	s, events, st := testSessionScreen(t, 1)
	started(t, s)

	typeAnswer(s, "15:20")
	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected summary command")
	}

	msgs := collect(cmd)
	var replaced, streakMsg bool
	for _, m := range msgs {
		switch m := m.(type) {
		case router.ReplaceScreenMsg:
			replaced = m.Screen != nil
		case screen.StreakUpdatedMsg:
			streakMsg = m.Streak == 5
		}
	}
	if !replaced || !streakMsg {
		t.Errorf("messages = %#v", msgs)
	}
	if st.touches != 1 {
		t.Errorf("streak touched %d times, want 1", st.touches)
	}
	last := events.sessionEvents[len(events.sessionEvents)-1]
	if last.Action != store.ActionEnd || last.CorrectAnswers != 1 {
		t.Errorf("end event = %+v", last)
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _, st := testSessionScreen(t, 4)
	started(t, s)

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	if !strings.Contains(s.View(80, 24), "End session early?") {
		t.Error("expected confirm dialog")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit || s.runner.Session().Phase != sess.PhaseUnanswered {
		t.Fatal("N should resume the question")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected summary command")
	}
	if s.runner.Session().Phase != sess.PhaseFinished {
		t.Errorf("phase = %v, want finished", s.runner.Session().Phase)
	}
	if st.touches != 1 {
		t.Errorf("streak touched %d times, want 1", st.touches)
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _, _ := testSessionScreen(t, 3)
	started(t, s)
	if len(s.KeyHints()) != 3 {
		t.Errorf("question hints = %d, want 3", len(s.KeyHints()))
	}
	s.Update(specialKey(tea.KeyTab))
	if len(s.KeyHints()) != 1 {
		t.Errorf("feedback hints = %d, want 1", len(s.KeyHints()))
	}
}

// collect runs cmd and flattens batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
