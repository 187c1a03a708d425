package todolist

import (
	"context"

	"listenote/internal/model"
)

// Repository is the persistence surface the ordering store needs. The
// embedded store satisfies it.
type Repository interface {
	MemosByNotebook(ctx context.Context, notebookID int64) ([]model.Memo, error)
	ObserveMemos(ctx context.Context, notebookID int64) (<-chan []model.Memo, func(), error)
	SetMemoCompletion(ctx context.Context, memoID int64, completed bool) error
	SetMemoPosition(ctx context.Context, memoID int64, position int) error
}
