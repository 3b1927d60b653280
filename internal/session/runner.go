package session

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/store"
	"github.com/erininge/Time-Game/internal/streak"
)

// EventRecorder persists session and answer events.
type EventRecorder interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// StreakToucher records a day of practice.
type StreakToucher interface {
	Touch(ctx context.Context) (streak.Record, error)
}

// Deps are the optional collaborators of a Runner. Nil members are skipped.
type Deps struct {
	Events EventRecorder
	Streak StreakToucher
	Log    logrus.FieldLogger
	Now    func() time.Time
}

// Runner drives a Session and performs its side effects: it records
// events and updates the streak exactly once when the session finishes.
// Event failures are logged and never interrupt the quiz.
type Runner struct {
	id   string
	sess Session
	deps Deps
	log  logrus.FieldLogger

	startedAt time.Time
	askedAt   time.Time
	finalized bool
	streakRec *streak.Record
	streakErr error
}

// NewRunner starts a session with a new UUID.
func NewRunner(ctx context.Context, settings quiz.Settings, source QuestionSource, deps Deps) (*Runner, error) {
	sess, err := Start(settings, source)
	if err != nil {
		return nil, err
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	log := deps.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	r := &Runner{
		id:   uuid.New().String(),
		sess: sess,
		deps: deps,
	}
	r.log = log.WithField("session_id", r.id)
	r.startedAt = deps.Now()
	r.askedAt = r.startedAt

	if deps.Events != nil {
		s := settings
		if err := deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      r.id,
			Action:         store.ActionStart,
			QuestionsTotal: s.Questions,
			Settings: &store.SessionSettings{
				Orientation:    string(s.Orientation),
				Script:         string(s.Script),
				Digital:        string(s.Digital),
				Minutes:        string(s.Minutes),
				ScriptCheck:    string(s.ScriptCheck),
				CrossScriptEra: s.CrossScriptEra,
			},
		}); err != nil {
			r.log.WithError(err).Warn("record session start")
		}
	}
	r.log.WithField("questions", settings.Questions).Debug("session started")
	return r, nil
}

// ID returns the session UUID.
func (r *Runner) ID() string { return r.id }

// Session returns the current session value.
func (r *Runner) Session() Session { return r.sess }

// Streak returns the streak after the session finished, or nil before
// that or when the update failed.
func (r *Runner) Streak() *streak.Record { return r.streakRec }

// StreakErr returns the error from the streak update, if any.
func (r *Runner) StreakErr() error { return r.streakErr }

// Submit answers the current question.
func (r *Runner) Submit(ctx context.Context, raw string) (Feedback, error) {
	next, err := r.sess.Submit(raw)
	if err != nil {
		return Feedback{}, err
	}
	return r.answered(ctx, next), nil
}

// Skip gives up on the current question.
func (r *Runner) Skip(ctx context.Context) (Feedback, error) {
	next, err := r.sess.Skip()
	if err != nil {
		return Feedback{}, err
	}
	return r.answered(ctx, next), nil
}

// Advance moves to the next question, finishing after the last one.
func (r *Runner) Advance(ctx context.Context) error {
	next, err := r.sess.Advance()
	if err != nil {
		return err
	}
	r.sess = next
	r.askedAt = r.deps.Now()
	if next.Phase == PhaseFinished {
		r.finalize(ctx)
	}
	return nil
}

// Finish ends the session early.
func (r *Runner) Finish(ctx context.Context) error {
	next, err := r.sess.Finish()
	if err != nil {
		return err
	}
	r.sess = next
	r.finalize(ctx)
	return nil
}

func (r *Runner) answered(ctx context.Context, next Session) Feedback {
	prev := r.sess
	r.sess = next
	fb := *next.Last

	r.log.WithFields(logrus.Fields{
		"index":   prev.Index,
		"kind":    prev.Current.Kind,
		"correct": fb.Correct,
		"skipped": fb.Skipped,
	}).Debug("question answered")

	if r.deps.Events != nil {
		q := prev.Current
		expected := q.Expected.Kanji
		if q.TargetsDigital() {
			expected = q.Expected.H24
		} else if q.Script == quiz.ScriptKana {
			expected = q.Expected.Kana
		}
		if err := r.deps.Events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     r.id,
			Kind:          string(q.Kind),
			ClockTime:     q.Time.String(),
			Prompt:        q.Prompt,
			Expected:      expected,
			LearnerAnswer: fb.Answer,
			Correct:       fb.Correct,
			Skipped:       fb.Skipped,
			TimeMs:        int(r.deps.Now().Sub(r.askedAt).Milliseconds()),
		}); err != nil {
			r.log.WithError(err).Warn("record answer")
		}
	}
	return fb
}

// finalize runs once, on the first transition into PhaseFinished.
func (r *Runner) finalize(ctx context.Context) {
	if r.finalized {
		return
	}
	r.finalized = true

	sum := r.sess.Summary()
	r.log.WithFields(logrus.Fields{
		"correct": sum.Correct,
		"total":   sum.Total,
	}).Info("session finished")

	if r.deps.Events != nil {
		if err := r.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         r.id,
			Action:            store.ActionEnd,
			QuestionsTotal:    sum.Total,
			QuestionsAnswered: sum.Answered,
			CorrectAnswers:    sum.Correct,
			DurationSecs:      int(r.deps.Now().Sub(r.startedAt).Seconds()),
		}); err != nil {
			r.log.WithError(err).Warn("record session end")
		}
	}

	if r.deps.Streak != nil {
		rec, err := r.deps.Streak.Touch(ctx)
		if err != nil {
			r.streakErr = err
			r.log.WithError(err).Warn("update streak")
			return
		}
		r.streakRec = &rec
	}
}
