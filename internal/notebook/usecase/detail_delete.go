package usecase

import (
	"context"
	"fmt"

	"listenote/internal/model"
	"listenote/internal/notebook"
	"listenote/internal/store"
)

// List returns all notebooks, newest first.
func (uc *implUseCase) List(ctx context.Context) ([]model.Notebook, error) {
	return uc.repo.Notebooks(ctx)
}

// Detail returns one notebook with its audio source and memo list sorted by
// rank.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (notebook.DetailOutput, error) {
	nb, err := uc.repo.NotebookByID(ctx, id)
	if err != nil {
		if err == store.ErrNotFound {
			return notebook.DetailOutput{}, notebook.ErrNotFound
		}
		return notebook.DetailOutput{}, fmt.Errorf("load notebook %d: %w", id, err)
	}

	src, err := uc.repo.AudioSourceByID(ctx, nb.AudioSourceID)
	if err != nil && err != store.ErrNotFound {
		return notebook.DetailOutput{}, fmt.Errorf("load audio source %d: %w", nb.AudioSourceID, err)
	}

	memos, err := uc.repo.MemosByNotebook(ctx, id)
	if err != nil {
		return notebook.DetailOutput{}, fmt.Errorf("load memos for notebook %d: %w", id, err)
	}

	out := notebook.DetailOutput{Notebook: *nb, Memos: memos}
	if src != nil {
		out.AudioSource = *src
	}
	return out, nil
}

// Delete removes a notebook. A missing notebook silently no-ops: the
// referencing context is assumed stale.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteNotebook(ctx, id); err != nil {
		return fmt.Errorf("delete notebook %d: %w", id, err)
	}
	return nil
}

// Sources returns every imported audio source, newest first.
func (uc *implUseCase) Sources(ctx context.Context) ([]model.AudioSource, error) {
	return uc.repo.AudioSources(ctx)
}
