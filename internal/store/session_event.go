package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builder.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.SessionID == "" || data.Action == "" {
		return fmt.Errorf("save session event: session id and action are required")
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var settings sql.NullString
	if data.Settings != nil {
		b, err := json.Marshal(data.Settings)
		if err != nil {
			return fmt.Errorf("marshal session settings: %w", err)
		}
		settings = sql.NullString{String: string(b), Valid: true}
	}

	query, args := builder().
		Insert(tableSessionEvents).
		Columns("sequence", "timestamp", "session_id", "action",
			"questions_total", "questions_answered", "correct_answers", "duration_secs", "settings").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Action,
			data.QuestionsTotal, data.QuestionsAnswered, data.CorrectAnswers, data.DurationSecs, settings).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	t := entsql.Table(tableSessionEvents)
	sel := builder().
		Select(t.C("sequence"), t.C("timestamp"), t.C("session_id"),
			t.C("questions_total"), t.C("questions_answered"), t.C("correct_answers"), t.C("duration_secs")).
		From(t).
		Where(entsql.EQ(t.C("action"), ActionEnd)).
		OrderBy(entsql.Desc(t.C("sequence")))
	applyQueryOpts(sel, t, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec SessionRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID,
			&rec.QuestionsTotal, &rec.QuestionsAnswered, &rec.CorrectAnswers, &rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	return out, nil
}

// applyQueryOpts adds the filters and limit of opts to sel.
func applyQueryOpts(sel *entsql.Selector, t *entsql.SelectTable, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT(t.C("sequence"), opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(t.C("sequence"), opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(t.C("timestamp"), opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(t.C("timestamp"), opts.To.UnixMilli()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
