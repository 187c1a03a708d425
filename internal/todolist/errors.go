package todolist

import "errors"

// ErrIndexOutOfRange reports a reorder index outside the displayed
// sequence. This is a caller bug, not a recoverable condition, so it is
// returned loudly instead of being clamped.
var ErrIndexOutOfRange = errors.New("reorder index out of range")
