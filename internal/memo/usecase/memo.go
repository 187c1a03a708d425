package usecase

import (
	"context"
	"fmt"

	"listenote/internal/memo"
	"listenote/internal/model"
	"listenote/internal/store"
)

// Create saves a new annotation. Timestamps are stored exactly as given,
// never normalized. The rank is assigned by the store at the tail of the
// notebook's to-do order.
func (uc *implUseCase) Create(ctx context.Context, input memo.CreateInput) (model.Memo, error) {
	if input.TimestampMs < 0 {
		return model.Memo{}, memo.ErrNegativeTime
	}

	if _, err := uc.repo.NotebookByID(ctx, input.NotebookID); err != nil {
		if err == store.ErrNotFound {
			return model.Memo{}, memo.ErrNotebookNotFound
		}
		return model.Memo{}, fmt.Errorf("look up notebook %d: %w", input.NotebookID, err)
	}

	m := &model.Memo{
		NotebookID:  input.NotebookID,
		TimestampMs: input.TimestampMs,
		Impression:  input.Impression,
		ToDo:        input.ToDo,
	}
	if _, err := uc.repo.CreateMemo(ctx, m); err != nil {
		return model.Memo{}, fmt.Errorf("create memo: %w", err)
	}

	uc.l.Debugf(ctx, "Create: memo %d at %dms in notebook %d", m.ID, m.TimestampMs, m.NotebookID)
	return *m, nil
}

// Detail returns one memo by id.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Memo, error) {
	m, err := uc.repo.MemoByID(ctx, id)
	if err != nil {
		if err == store.ErrNotFound {
			return model.Memo{}, memo.ErrNotFound
		}
		return model.Memo{}, fmt.Errorf("load memo %d: %w", id, err)
	}
	return *m, nil
}

// Update edits text and timestamp of an existing memo. Completion flag and
// rank are read back and carried over untouched. A missing memo silently
// no-ops: the editing context is assumed stale.
func (uc *implUseCase) Update(ctx context.Context, input memo.UpdateInput) error {
	if input.TimestampMs < 0 {
		return memo.ErrNegativeTime
	}

	m, err := uc.repo.MemoByID(ctx, input.ID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil
		}
		return fmt.Errorf("load memo %d: %w", input.ID, err)
	}

	m.TimestampMs = input.TimestampMs
	m.Impression = input.Impression
	m.ToDo = input.ToDo
	if err := uc.repo.UpdateMemo(ctx, m); err != nil {
		return fmt.Errorf("update memo %d: %w", input.ID, err)
	}
	return nil
}

// Delete removes one memo. A missing memo silently no-ops.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteMemo(ctx, id); err != nil {
		return fmt.Errorf("delete memo %d: %w", id, err)
	}
	return nil
}
