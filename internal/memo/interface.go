package memo

import (
	"context"

	"listenote/internal/model"
)

// UseCase defines the business logic interface for the memo domain.
type UseCase interface {
	// Create saves a new annotation at the playback position the player was
	// at when the user asked to annotate.
	Create(ctx context.Context, input CreateInput) (model.Memo, error)

	// Detail returns one memo by id.
	Detail(ctx context.Context, id int64) (model.Memo, error)

	// Update edits the text fields (and timestamp) of an existing memo,
	// preserving its completion flag and rank. A missing memo silently
	// no-ops.
	Update(ctx context.Context, input UpdateInput) error

	// Delete removes one memo. A missing memo silently no-ops.
	Delete(ctx context.Context, id int64) error
}

// Repository is the persistence surface the memo domain needs.
type Repository interface {
	CreateMemo(ctx context.Context, memo *model.Memo) (int64, error)
	UpdateMemo(ctx context.Context, memo *model.Memo) error
	MemoByID(ctx context.Context, id int64) (*model.Memo, error)
	DeleteMemo(ctx context.Context, id int64) error
	NotebookByID(ctx context.Context, id int64) (*model.Notebook, error)
}
