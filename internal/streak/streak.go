// Package streak tracks consecutive days of practice.
package streak

import (
	"time"
)

// DayLayout is the format of Record.LastActiveDay.
const DayLayout = "2006-01-02"

// Record is the persisted streak state.
type Record struct {
	Streak        int     `json:"streak"`
	LastActiveDay *string `json:"lastActiveDay"`
}

// Default returns the record used on first run or after a failed read.
func Default() Record {
	return Record{}
}

// Day returns the local calendar day of t in DayLayout.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// Update applies a day of activity at now. Practising again on the same
// day changes nothing; practising the day after the last active day
// extends the streak; anything else starts a new streak of 1. The
// returned bool reports whether the record changed.
func Update(rec Record, now time.Time) (Record, bool) {
	today := Day(now)
	if rec.LastActiveDay != nil && *rec.LastActiveDay == today {
		return rec, false
	}

	next := Record{Streak: 1, LastActiveDay: &today}
	if rec.LastActiveDay != nil && daysBetween(*rec.LastActiveDay, now) == 1 {
		next.Streak = rec.Streak + 1
	}
	return next, true
}

// daysBetween returns the number of calendar days from day to now's local
// date, or -1 when day cannot be parsed.
func daysBetween(day string, now time.Time) int {
	last, err := time.Parse(DayLayout, day)
	if err != nil {
		return -1
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(today.Sub(last).Hours() / 24)
}
