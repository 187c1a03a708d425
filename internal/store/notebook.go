package store

import (
	"context"

	"listenote/internal/model"
)

// CreateNotebook inserts a new notebook and returns its id.
func (s *Store) CreateNotebook(ctx context.Context, nb *model.Notebook) (int64, error) {
	if err := s.db.WithContext(ctx).Create(nb).Error; err != nil {
		return 0, err
	}
	return nb.ID, nil
}

// NotebookByID returns one notebook, or ErrNotFound.
func (s *Store) NotebookByID(ctx context.Context, id int64) (*model.Notebook, error) {
	var nb model.Notebook
	if err := s.db.WithContext(ctx).First(&nb, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &nb, nil
}

// Notebooks returns all notebooks, newest first.
func (s *Store) Notebooks(ctx context.Context) ([]model.Notebook, error) {
	var nbs []model.Notebook
	return nbs, s.db.WithContext(ctx).Order("created_at DESC").Find(&nbs).Error
}

// NotebooksByAudioSource returns the notebooks bound to one audio source.
// Used for unique-title derivation on import.
func (s *Store) NotebooksByAudioSource(ctx context.Context, audioSourceID int64) ([]model.Notebook, error) {
	var nbs []model.Notebook
	return nbs, s.db.WithContext(ctx).Where("audio_source_id = ?", audioSourceID).Find(&nbs).Error
}

// DeleteNotebook removes a notebook and, via cascade, all its memos.
func (s *Store) DeleteNotebook(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&model.Notebook{}, id).Error; err != nil {
		return err
	}
	s.hub.broadcast(ctx, s, id)
	return nil
}
