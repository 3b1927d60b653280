package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	tableStreak        = "streaks"
	tableSessionEvents = "session_events"
	tableAnswerEvents  = "answer_events"
)

var (
	// streakColumns holds the single streak row (id is always 1).
	streakColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_active_day", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	streakTable = &schema.Table{
		Name:       tableStreak,
		Columns:    streakColumns,
		PrimaryKey: []*schema.Column{streakColumns[0]},
	}

	// sessionEventColumns records session start and end.
	sessionEventColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_total", Type: field.TypeInt, Default: 0},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
	}
	sessionEventTable = &schema.Table{
		Name:       tableSessionEvents,
		Columns:    sessionEventColumns,
		PrimaryKey: []*schema.Column{sessionEventColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{sessionEventColumns[3]}},
			{Name: "sessionevent_action", Columns: []*schema.Column{sessionEventColumns[4]}},
			{Name: "sessionevent_timestamp", Columns: []*schema.Column{sessionEventColumns[2]}},
		},
	}

	// answerEventColumns records one answered or skipped question.
	answerEventColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "clock_time", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "expected", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "skipped", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	answerEventTable = &schema.Table{
		Name:       tableAnswerEvents,
		Columns:    answerEventColumns,
		PrimaryKey: []*schema.Column{answerEventColumns[0]},
		Indexes: []*schema.Index{
			{Name: "answerevent_session_id", Columns: []*schema.Column{answerEventColumns[3]}},
			{Name: "answerevent_kind", Columns: []*schema.Column{answerEventColumns[4]}},
		},
	}

	// tables lists everything auto-migrated on Open.
	tables = []*schema.Table{
		streakTable,
		sessionEventTable,
		answerEventTable,
	}
)
