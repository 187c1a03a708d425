package store

import (
	"context"

	"listenote/internal/model"
)

// CreateAudioSource inserts a new audio source and returns its id.
func (s *Store) CreateAudioSource(ctx context.Context, src *model.AudioSource) (int64, error) {
	if err := s.db.WithContext(ctx).Create(src).Error; err != nil {
		return 0, err
	}
	return src.ID, nil
}

// UpdateAudioSource saves metadata backfill (title, duration) for a source.
func (s *Store) UpdateAudioSource(ctx context.Context, src *model.AudioSource) error {
	return s.db.WithContext(ctx).Save(src).Error
}

// AudioSourceByID returns one audio source, or ErrNotFound.
func (s *Store) AudioSourceByID(ctx context.Context, id int64) (*model.AudioSource, error) {
	var src model.AudioSource
	if err := s.db.WithContext(ctx).First(&src, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &src, nil
}

// AudioSourceByURI returns the source for a locator, or ErrNotFound. Used to
// deduplicate imports of the same file.
func (s *Store) AudioSourceByURI(ctx context.Context, uri string) (*model.AudioSource, error) {
	var src model.AudioSource
	if err := s.db.WithContext(ctx).Where("uri = ?", uri).First(&src).Error; err != nil {
		return nil, notFound(err)
	}
	return &src, nil
}

// AudioSources returns all imported sources, newest first.
func (s *Store) AudioSources(ctx context.Context) ([]model.AudioSource, error) {
	var srcs []model.AudioSource
	return srcs, s.db.WithContext(ctx).Order("created_at DESC").Find(&srcs).Error
}

// DeleteAudioSource removes a source; notebooks and memos under it go with
// it via foreign key cascade.
func (s *Store) DeleteAudioSource(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&model.AudioSource{}, id).Error; err != nil {
		return err
	}
	s.hub.broadcastAll(ctx, s)
	return nil
}
