package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOutOfRange is returned when an hour or minute falls outside the
// 24-hour clock.
var ErrOutOfRange = errors.New("time out of range")

// Time is a wall-clock time of day with minute resolution.
// The zero value is midnight (00:00).
type Time struct {
	hour   int
	minute int
}

// New returns the Time for hour (0-23) and minute (0-59).
func New(hour, minute int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("hour %d: %w", hour, ErrOutOfRange)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("minute %d: %w", minute, ErrOutOfRange)
	}
	return Time{hour: hour, minute: minute}, nil
}

// MustNew is like New but panics on out-of-range input. It is meant for
// callers that produce the values themselves, such as the question
// generator.
func MustNew(hour, minute int) Time {
	t, err := New(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse reads a 24-hour "H:MM" or "HH:MM" string.
func Parse(s string) (Time, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "：", ":"))
	hs, ms, ok := strings.Cut(s, ":")
	if !ok {
		return Time{}, fmt.Errorf("parse %q: expected H:MM", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return Time{}, fmt.Errorf("parse %q: invalid hour: %w", s, err)
	}
	if len(ms) != 2 {
		return Time{}, fmt.Errorf("parse %q: minute must have two digits", s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return Time{}, fmt.Errorf("parse %q: invalid minute: %w", s, err)
	}
	return New(h, m)
}

// Hour returns the hour on the 24-hour clock (0-23).
func (t Time) Hour() int { return t.hour }

// Minute returns the minute (0-59).
func (t Time) Minute() int { return t.minute }

// Hour12 returns the hour on the 12-hour clock. Midnight and noon are 12.
func (t Time) Hour12() int {
	h := t.hour % 12
	if h == 0 {
		return 12
	}
	return h
}

// IsAM reports whether the time is before noon.
func (t Time) IsAM() bool {
	return t.hour < 12
}

// String returns the zero-padded 24-hour form, e.g. "07:05".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
