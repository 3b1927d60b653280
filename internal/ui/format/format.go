// Package format renders engine values as display text for the TUI and
// the line-mode commands.
package format

import (
	"fmt"
	"time"

	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/session"
)

// Expected describes the expected answer of q: both digital forms for a
// digital target, or an example kanji and kana reading for a Japanese one.
func Expected(q quiz.Question, fb session.Feedback) string {
	if q.TargetsDigital() {
		return fmt.Sprintf("24h: %s | 12h: %s", fb.Expected24h, fb.Expected12h)
	}
	return fmt.Sprintf("(例) %s / %s", fb.ExpectedKanji, fb.ExpectedKana)
}

// Verdict is the one-word result of an answer.
func Verdict(fb session.Feedback) string {
	switch {
	case fb.Correct:
		return "Correct!"
	case fb.Skipped:
		return "Skipped"
	}
	return "Not quite"
}

// Duration renders seconds as m:ss.
func Duration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Date renders a session timestamp in local time.
func Date(t time.Time) string {
	return t.Local().Format("Jan 02, 2006 15:04")
}

// Score renders "N correct" for the running tally.
func Score(correct int) string {
	return fmt.Sprintf("%d correct", correct)
}
