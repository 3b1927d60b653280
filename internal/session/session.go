// Package session runs a quiz as a small state machine over Session values.
package session

import (
	"fmt"

	"github.com/erininge/Time-Game/internal/quiz"
)

// Start validates settings and returns a session waiting on its first
// question. A nil source draws from a fresh quiz.Generator. Invalid
// settings yield a *quiz.SettingsError and no session.
func Start(settings quiz.Settings, source QuestionSource) (Session, error) {
	if err := settings.Validate(); err != nil {
		return Session{}, fmt.Errorf("start session: %w", err)
	}
	if source == nil {
		gen, err := quiz.NewGenerator(settings, nil)
		if err != nil {
			return Session{}, fmt.Errorf("start session: %w", err)
		}
		source = gen
	}

	return Session{
		Settings: settings,
		Total:    settings.Questions,
		Index:    1,
		Current:  source.Next(),
		Phase:    PhaseUnanswered,
		source:   source,
	}, nil
}

// Submit checks raw against the current question's accept-set.
func (s Session) Submit(raw string) (Session, error) {
	if err := s.expect(PhaseUnanswered); err != nil {
		return s, err
	}
	correct := s.Current.Check(raw)
	if correct {
		s.Correct++
	}
	s.Answered++
	s.Last = feedbackFor(s.Current, raw, correct, false)
	s.Phase = PhaseAnswered
	return s, nil
}

// Skip reveals the expected answer without crediting the question.
func (s Session) Skip() (Session, error) {
	if err := s.expect(PhaseUnanswered); err != nil {
		return s, err
	}
	s.Answered++
	s.Last = feedbackFor(s.Current, "", false, true)
	s.Phase = PhaseAnswered
	return s, nil
}

// Advance moves past an answered question: to the next question, or to
// PhaseFinished after the last one.
func (s Session) Advance() (Session, error) {
	if err := s.expect(PhaseAnswered); err != nil {
		return s, err
	}
	if s.Index >= s.Total {
		s.Phase = PhaseFinished
		return s, nil
	}
	s.Index++
	s.Current = s.source.Next()
	s.Last = nil
	s.Phase = PhaseUnanswered
	return s, nil
}

// Finish ends the session early, keeping the score so far.
func (s Session) Finish() (Session, error) {
	switch s.Phase {
	case PhaseIdle:
		return s, ErrNotStarted
	case PhaseFinished:
		return s, ErrFinished
	}
	s.Phase = PhaseFinished
	return s, nil
}

// Summary returns the score of the session.
func (s Session) Summary() Summary {
	return Summary{Correct: s.Correct, Answered: s.Answered, Total: s.Total}
}

func (s Session) expect(want Phase) error {
	if s.Phase == want {
		return nil
	}
	switch s.Phase {
	case PhaseIdle:
		return ErrNotStarted
	case PhaseFinished:
		return ErrFinished
	case PhaseAnswered:
		return ErrAlreadyAnswered
	default:
		return ErrNotAnswered
	}
}
