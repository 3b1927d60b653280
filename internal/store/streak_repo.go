package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/erininge/Time-Game/internal/streak"
)

// streakRowID is the primary key of the only streak row.
const streakRowID = 1

// StreakRepo persists the single streak record. It satisfies
// streak.Repository.
type StreakRepo struct {
	db *sql.DB
}

// Load returns the stored record, or streak.Default when none is stored.
func (r *StreakRepo) Load(ctx context.Context) (streak.Record, error) {
	t := entsql.Table(tableStreak)
	query, args := entsql.Dialect(dialect.SQLite).
		Select(t.C("streak"), t.C("last_active_day")).
		From(t).
		Where(entsql.EQ(t.C("id"), streakRowID)).
		Query()

	var (
		n   int
		day sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n, &day)
	if errors.Is(err, sql.ErrNoRows) {
		return streak.Default(), nil
	}
	if err != nil {
		return streak.Record{}, fmt.Errorf("load streak: %w", err)
	}

	rec := streak.Record{Streak: n}
	if day.Valid {
		if _, err := time.Parse(streak.DayLayout, day.String); err != nil {
			return streak.Record{}, fmt.Errorf("load streak: bad last active day %q: %w", day.String, err)
		}
		rec.LastActiveDay = &day.String
	}
	return rec, nil
}

// Save upserts the record.
func (r *StreakRepo) Save(ctx context.Context, rec streak.Record) error {
	var day sql.NullString
	if rec.LastActiveDay != nil {
		day = sql.NullString{String: *rec.LastActiveDay, Valid: true}
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableStreak).
		Columns("id", "streak", "last_active_day", "updated_at").
		Values(streakRowID, rec.Streak, day, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}
