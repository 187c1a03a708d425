package focus

import (
	"context"

	"listenote/internal/model"
)

// Repository is the persistence surface a focus session needs. The embedded
// store satisfies it.
type Repository interface {
	UncompletedMemosByNotebook(ctx context.Context, notebookID int64) ([]model.Memo, error)
	SetMemoCompletion(ctx context.Context, memoID int64, completed bool) error
}
