package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionSettings is the persisted form of the settings a session ran with.
type SessionSettings struct {
	Orientation    string `json:"orientation"`
	Script         string `json:"script"`
	Digital        string `json:"digital"`
	Minutes        string `json:"minutes"`
	ScriptCheck    string `json:"script_check"`
	CrossScriptEra bool   `json:"cross_script_era"`
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID string
	Action    string

	// QuestionsTotal is the configured session length.
	QuestionsTotal int

	// QuestionsAnswered and CorrectAnswers are filled on end only.
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int

	// Settings is recorded on start only.
	Settings *SessionSettings
}

// SessionRecord is one finished session as read back from history.
type SessionRecord struct {
	Sequence          int64
	Timestamp         time.Time
	SessionID         string
	QuestionsTotal    int
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int
}

// AnswerEventData captures one answered or skipped question.
type AnswerEventData struct {
	SessionID     string
	Kind          string
	ClockTime     string
	Prompt        string
	Expected      string
	LearnerAnswer string
	Correct       bool
	Skipped       bool
	TimeMs        int
}

// KindStats aggregates answers per question kind.
type KindStats struct {
	Kind    string
	Total   int
	Correct int
	Skipped int
}

// Accuracy returns Correct/Total, or 0 when nothing was answered.
func (k KindStats) Accuracy() float64 {
	if k.Total == 0 {
		return 0
	}
	return float64(k.Correct) / float64(k.Total)
}

// EventRepo provides append and query access to quiz events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answered or skipped question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// AnswerStats returns per-kind answer totals ordered by kind.
	AnswerStats(ctx context.Context) ([]KindStats, error)
}
