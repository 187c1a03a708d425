package notebook

import "errors"

// Domain-specific errors for the notebook package.
var (
	ErrEmptyLocator = errors.New("audio locator is empty")
	ErrNotFound     = errors.New("notebook not found")
)
