package session

import (
	"github.com/erininge/Time-Game/internal/screen"
	"github.com/erininge/Time-Game/internal/screens/summary"
	sess "github.com/erininge/Time-Game/internal/session"
)

// newSummaryScreenAdapter creates a summary screen from a finished runner.
func newSummaryScreenAdapter(r *sess.Runner, again func() screen.Screen) screen.Screen {
	return summary.New(r.Session().Summary(), r.Streak(), again)
}
