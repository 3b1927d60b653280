package session

import (
	sess "github.com/erininge/Time-Game/internal/session"
)

// sessionStartedMsg is sent when the runner has been created and its
// start event recorded.
type sessionStartedMsg struct {
	Runner *sess.Runner
	Err    error
}
