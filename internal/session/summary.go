package session

import (
	"fmt"
	"math"
)

// Summary holds the data displayed when a session ends.
type Summary struct {
	Correct  int
	Answered int
	Total    int
}

// Percent returns Correct out of the configured Total, rounded to the
// nearest whole percent. Questions left unanswered by an early finish
// count against the score.
func (s Summary) Percent() int {
	if s.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
}

// String renders the summary line, e.g. "3/5 correct (60%)".
func (s Summary) String() string {
	return fmt.Sprintf("%d/%d correct (%d%%)", s.Correct, s.Total, s.Percent())
}
