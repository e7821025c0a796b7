package practice

import (
	"time"

	sess "github.com/abhisek/makhraj/internal/session"
)

// practiceInitMsg is sent once the exercise has been built.
type practiceInitMsg struct {
	State *sess.SessionState
	Err   error
}

// timerTickMsg is sent every second to update the elapsed time.
type timerTickMsg time.Time

// practiceEndMsg is sent to trigger the end-of-run flow.
type practiceEndMsg struct{}
