package focus

import "errors"

var (
	// ErrNotStarted reports a transition before Start has loaded the queue.
	ErrNotStarted = errors.New("focus session not started")

	// ErrSessionFinished reports a transition on a terminal session. Both
	// AllDone and Empty are dead ends; the caller must exit the session.
	ErrSessionFinished = errors.New("focus session already finished")
)
