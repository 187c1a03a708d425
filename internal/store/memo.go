package store

import (
	"context"

	"listenote/internal/model"
)

// CreateMemo inserts a new memo at the tail of the notebook's to-do order
// and returns its id. The rank is assigned as max(to_do_position)+1 so
// arrival order stays stable under rank sorting.
func (s *Store) CreateMemo(ctx context.Context, memo *model.Memo) (int64, error) {
	maxPos, err := s.maxToDoPosition(ctx, memo.NotebookID)
	if err != nil {
		return 0, err
	}
	memo.ToDoPosition = maxPos + 1

	if err := s.db.WithContext(ctx).Create(memo).Error; err != nil {
		return 0, err
	}
	s.hub.broadcast(ctx, s, memo.NotebookID)
	return memo.ID, nil
}

// UpdateMemo saves all fields of an existing memo.
func (s *Store) UpdateMemo(ctx context.Context, memo *model.Memo) error {
	if err := s.db.WithContext(ctx).Save(memo).Error; err != nil {
		return err
	}
	s.hub.broadcast(ctx, s, memo.NotebookID)
	return nil
}

// SetMemoCompletion persists the completion flag for one memo. A missing
// memo is a silent no-op: the referencing context is assumed stale.
func (s *Store) SetMemoCompletion(ctx context.Context, memoID int64, completed bool) error {
	res := s.db.WithContext(ctx).Model(&model.Memo{}).
		Where("id = ?", memoID).
		Update("is_completed", completed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		s.hub.broadcastAll(ctx, s)
	}
	return nil
}

// SetMemoPosition persists the to-do rank for one memo. A missing memo is a
// silent no-op.
func (s *Store) SetMemoPosition(ctx context.Context, memoID int64, position int) error {
	res := s.db.WithContext(ctx).Model(&model.Memo{}).
		Where("id = ?", memoID).
		Update("to_do_position", position)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		s.hub.broadcastAll(ctx, s)
	}
	return nil
}

// MemoByID returns one memo, or ErrNotFound.
func (s *Store) MemoByID(ctx context.Context, id int64) (*model.Memo, error) {
	var memo model.Memo
	if err := s.db.WithContext(ctx).First(&memo, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &memo, nil
}

// MemosByNotebook returns the notebook's memos sorted by rank. Ties are
// broken by id, which encodes arrival order.
func (s *Store) MemosByNotebook(ctx context.Context, notebookID int64) ([]model.Memo, error) {
	var memos []model.Memo
	return memos, s.db.WithContext(ctx).
		Where("notebook_id = ?", notebookID).
		Order("to_do_position ASC, id ASC").
		Find(&memos).Error
}

// UncompletedMemosByNotebook returns the notebook's uncompleted memos sorted
// by rank. This is the focus session's initial queue.
func (s *Store) UncompletedMemosByNotebook(ctx context.Context, notebookID int64) ([]model.Memo, error) {
	var memos []model.Memo
	return memos, s.db.WithContext(ctx).
		Where("notebook_id = ? AND is_completed = ?", notebookID, false).
		Order("to_do_position ASC, id ASC").
		Find(&memos).Error
}

// DeleteMemo removes one memo.
func (s *Store) DeleteMemo(ctx context.Context, id int64) error {
	memo, err := s.MemoByID(ctx, id)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&model.Memo{}, id).Error; err != nil {
		return err
	}
	s.hub.broadcast(ctx, s, memo.NotebookID)
	return nil
}

func (s *Store) maxToDoPosition(ctx context.Context, notebookID int64) (int, error) {
	var maxPos *int
	err := s.db.WithContext(ctx).Model(&model.Memo{}).
		Where("notebook_id = ?", notebookID).
		Select("MAX(to_do_position)").
		Scan(&maxPos).Error
	if err != nil {
		return 0, err
	}
	if maxPos == nil {
		return -1, nil
	}
	return *maxPos, nil
}
