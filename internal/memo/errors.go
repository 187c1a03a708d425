package memo

import "errors"

// Domain-specific errors for the memo package.
var (
	ErrNotFound         = errors.New("memo not found")
	ErrNotebookNotFound = errors.New("notebook not found")
	ErrNegativeTime     = errors.New("timestamp must not be negative")
)
