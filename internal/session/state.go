package session

import (
	"errors"

	"github.com/erininge/Time-Game/internal/quiz"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseIdle       Phase = iota // No session started
	PhaseUnanswered              // Waiting for an answer to the current question
	PhaseAnswered                // Showing feedback for the current question
	PhaseFinished                // All questions done or ended early
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseUnanswered:
		return "unanswered"
	case PhaseAnswered:
		return "answered"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Transition errors. A rejected transition leaves the session unchanged.
var (
	ErrNotStarted      = errors.New("session not started")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("question not answered yet")
	ErrFinished        = errors.New("session finished")
)

// QuestionSource produces the questions of a session.
// *quiz.Generator satisfies it.
type QuestionSource interface {
	Next() quiz.Question
}

// Session is the state of one quiz run. It is a value: every transition
// returns a new Session and leaves the receiver untouched.
type Session struct {
	// Settings are the validated settings the session started with.
	Settings quiz.Settings

	// Total is the configured number of questions.
	Total int

	// Index is the 1-based number of the current question.
	Index int

	// Correct counts correctly answered questions.
	Correct int

	// Answered counts answered or skipped questions.
	Answered int

	// Current is the question being asked.
	Current quiz.Question

	// Phase is the current phase.
	Phase Phase

	// Last is the feedback for the current question once answered.
	Last *Feedback

	source QuestionSource
}

// Feedback is emitted after each answer or skip.
type Feedback struct {
	Correct bool

	// Skipped is true when the learner gave up on the question.
	Skipped bool

	// Answer is the raw text the learner entered.
	Answer string

	ExpectedKanji string
	ExpectedKana  string
	Expected24h   string
	Expected12h   string
}

func feedbackFor(q quiz.Question, answer string, correct, skipped bool) *Feedback {
	return &Feedback{
		Correct:       correct,
		Skipped:       skipped,
		Answer:        answer,
		ExpectedKanji: q.Expected.Kanji,
		ExpectedKana:  q.Expected.Kana,
		Expected24h:   q.Expected.H24,
		Expected12h:   q.Expected.H12,
	}
}
