package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"listenote/internal/model"
	"listenote/internal/store"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"), nopLogger{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func seedNotebook(t *testing.T, s *store.Store) *model.Notebook {
	t.Helper()
	ctx := context.Background()

	srcID, err := s.CreateAudioSource(ctx, &model.AudioSource{
		URI:        "content://audio/1",
		Title:      "Song",
		DurationMs: 180_000,
	})
	if err != nil {
		t.Fatalf("create audio source: %v", err)
	}

	nb := &model.Notebook{AudioSourceID: srcID, Title: "Song"}
	if _, err := s.CreateNotebook(ctx, nb); err != nil {
		t.Fatalf("create notebook: %v", err)
	}
	return nb
}

func TestMemoTimestampRoundTrip(t *testing.T) {
	s := newTestStore(t)
	nb := seedNotebook(t, s)
	ctx := context.Background()

	const timestamp = 73_456 // arbitrary, not a round number on purpose

	id, err := s.CreateMemo(ctx, &model.Memo{
		NotebookID:  nb.ID,
		TimestampMs: timestamp,
		Impression:  "nice intro",
	})
	if err != nil {
		t.Fatalf("create memo: %v", err)
	}

	got, err := s.MemoByID(ctx, id)
	if err != nil {
		t.Fatalf("read memo back: %v", err)
	}
	if got.TimestampMs != timestamp {
		t.Errorf("timestamp changed on round trip: got %d, want %d", got.TimestampMs, timestamp)
	}
}

func TestCreateMemoAssignsTailRank(t *testing.T) {
	s := newTestStore(t)
	nb := seedNotebook(t, s)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.CreateMemo(ctx, &model.Memo{NotebookID: nb.ID, TimestampMs: int64(i)}); err != nil {
			t.Fatalf("create memo %d: %v", i, err)
		}
	}

	memos, err := s.MemosByNotebook(ctx, nb.ID)
	if err != nil {
		t.Fatalf("list memos: %v", err)
	}
	if len(memos) != 3 {
		t.Fatalf("expected 3 memos, got %d", len(memos))
	}
	for i, m := range memos {
		if m.ToDoPosition != i {
			t.Errorf("memo %d: rank = %d, want %d", i, m.ToDoPosition, i)
		}
	}
}

func TestUncompletedMemosByNotebook(t *testing.T) {
	s := newTestStore(t)
	nb := seedNotebook(t, s)
	ctx := context.Background()

	ids := make([]int64, 3)
	for i := range ids {
		id, err := s.CreateMemo(ctx, &model.Memo{NotebookID: nb.ID, TimestampMs: int64(i)})
		if err != nil {
			t.Fatalf("create memo %d: %v", i, err)
		}
		ids[i] = id
	}

	if err := s.SetMemoCompletion(ctx, ids[1], true); err != nil {
		t.Fatalf("set completion: %v", err)
	}

	memos, err := s.UncompletedMemosByNotebook(ctx, nb.ID)
	if err != nil {
		t.Fatalf("list uncompleted: %v", err)
	}
	if len(memos) != 2 {
		t.Fatalf("expected 2 uncompleted memos, got %d", len(memos))
	}
	if memos[0].ID != ids[0] || memos[1].ID != ids[2] {
		t.Errorf("uncompleted order = [%d %d], want [%d %d]", memos[0].ID, memos[1].ID, ids[0], ids[2])
	}
}

func TestSetMemoCompletionMissingMemoIsNoOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetMemoCompletion(ctx, 9999, true); err != nil {
		t.Errorf("expected silent no-op for missing memo, got %v", err)
	}
}

func TestDeleteNotebookCascadesToMemos(t *testing.T) {
	s := newTestStore(t)
	nb := seedNotebook(t, s)
	ctx := context.Background()

	id, err := s.CreateMemo(ctx, &model.Memo{NotebookID: nb.ID, TimestampMs: 1000})
	if err != nil {
		t.Fatalf("create memo: %v", err)
	}

	if err := s.DeleteNotebook(ctx, nb.ID); err != nil {
		t.Fatalf("delete notebook: %v", err)
	}

	if _, err := s.MemoByID(ctx, id); err != store.ErrNotFound {
		t.Errorf("expected memo to be cascade-deleted, got err=%v", err)
	}
}

func TestDeleteAudioSourceCascadesToNotebooks(t *testing.T) {
	s := newTestStore(t)
	nb := seedNotebook(t, s)
	ctx := context.Background()

	if err := s.DeleteAudioSource(ctx, nb.AudioSourceID); err != nil {
		t.Fatalf("delete audio source: %v", err)
	}

	if _, err := s.NotebookByID(ctx, nb.ID); err != store.ErrNotFound {
		t.Errorf("expected notebook to be cascade-deleted, got err=%v", err)
	}
}

func TestObserveMemosPushesSnapshots(t *testing.T) {
	s := newTestStore(t)
	nb := seedNotebook(t, s)
	ctx := context.Background()

	ch, cancel, err := s.ObserveMemos(ctx, nb.ID)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	defer cancel()

	initial := <-ch
	if len(initial) != 0 {
		t.Fatalf("expected empty initial snapshot, got %d memos", len(initial))
	}

	if _, err := s.CreateMemo(ctx, &model.Memo{NotebookID: nb.ID, TimestampMs: 500}); err != nil {
		t.Fatalf("create memo: %v", err)
	}

	next := <-ch
	if len(next) != 1 {
		t.Fatalf("expected snapshot with 1 memo, got %d", len(next))
	}
	if next[0].TimestampMs != 500 {
		t.Errorf("snapshot memo timestamp = %d, want 500", next[0].TimestampMs)
	}
}
