package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	if data.SessionID == "" {
		return fmt.Errorf("save answer event: session id is required")
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(tableAnswerEvents).
		Columns("sequence", "timestamp", "session_id", "kind", "clock_time",
			"prompt", "expected", "learner_answer", "correct", "skipped", "time_ms").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Kind, data.ClockTime,
			data.Prompt, data.Expected, data.LearnerAnswer, data.Correct, data.Skipped, data.TimeMs).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) ([]KindStats, error) {
	t := entsql.Table(tableAnswerEvents)
	query, args := builder().
		Select(
			t.C("kind"),
			entsql.Count("*"),
			entsql.Sum(t.C("correct")),
			entsql.Sum(t.C("skipped")),
		).
		From(t).
		GroupBy(t.C("kind")).
		OrderBy(t.C("kind")).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	var out []KindStats
	for rows.Next() {
		var ks KindStats
		if err := rows.Scan(&ks.Kind, &ks.Total, &ks.Correct, &ks.Skipped); err != nil {
			return nil, fmt.Errorf("scan answer stats: %w", err)
		}
		out = append(out, ks)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	return out, nil
}
