package todolist_test

import (
	"context"
	"sort"
	"testing"

	"listenote/internal/model"
	"listenote/internal/todolist"
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

// fakeRepo holds memos in memory and records every write.
type fakeRepo struct {
	memos           map[int64]*model.Memo
	positionWrites  []int64
	completionWrite []int64
}

func newFakeRepo(memos ...model.Memo) *fakeRepo {
	r := &fakeRepo{memos: make(map[int64]*model.Memo)}
	for i := range memos {
		m := memos[i]
		r.memos[m.ID] = &m
	}
	return r
}

func (r *fakeRepo) MemosByNotebook(ctx context.Context, notebookID int64) ([]model.Memo, error) {
	var out []model.Memo
	for _, m := range r.memos {
		if m.NotebookID == notebookID {
			out = append(out, *m)
		}
	}
	// Deliberately arbitrary order: callers must not rely on it.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRepo) ObserveMemos(ctx context.Context, notebookID int64) (<-chan []model.Memo, func(), error) {
	ch := make(chan []model.Memo, 1)
	snap, _ := r.MemosByNotebook(ctx, notebookID)
	ch <- snap
	return ch, func() { close(ch) }, nil
}

func (r *fakeRepo) SetMemoCompletion(ctx context.Context, memoID int64, completed bool) error {
	if m, ok := r.memos[memoID]; ok {
		m.IsCompleted = completed
	}
	r.completionWrite = append(r.completionWrite, memoID)
	return nil
}

func (r *fakeRepo) SetMemoPosition(ctx context.Context, memoID int64, position int) error {
	if m, ok := r.memos[memoID]; ok {
		m.ToDoPosition = position
	}
	r.positionWrites = append(r.positionWrites, memoID)
	return nil
}

func memo(id int64, rank int) model.Memo {
	return model.Memo{ID: id, NotebookID: 1, ToDoPosition: rank}
}

func newList(t *testing.T, repo *fakeRepo) *todolist.List {
	t.Helper()
	li := todolist.New(repo, nopLogger{}, 1)
	if err := li.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return li
}

func TestRefreshSortsByRankDespiteStorageOrder(t *testing.T) {
	repo := newFakeRepo(memo(10, 2), memo(11, 0), memo(12, 1))
	li := newList(t, repo)

	items := li.Items()
	wantIDs := []int64{11, 12, 10}
	for i, want := range wantIDs {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %d, want %d", i, items[i].ID, want)
		}
	}
}

func TestCommitOrderPersistsDisplayedOrderWithMinimalWrites(t *testing.T) {
	repo := newFakeRepo(memo(10, 0), memo(11, 1), memo(12, 2), memo(13, 3))
	li := newList(t, repo)
	ctx := context.Background()

	// [10 11 12 13] -> move head to index 2 -> [11 12 10 13]
	if err := li.MoveItem(0, 2); err != nil {
		t.Fatalf("move: %v", err)
	}
	writes, err := li.CommitOrder(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	// 13 kept rank 3; only the three displaced items get writes.
	if writes != 3 {
		t.Errorf("writes = %d, want 3", writes)
	}
	if len(repo.positionWrites) != 3 {
		t.Errorf("position writes = %v, want 3 entries", repo.positionWrites)
	}

	// Re-sorting persisted ranks reproduces the displayed order exactly.
	persisted, _ := repo.MemosByNotebook(ctx, 1)
	sort.Slice(persisted, func(i, j int) bool {
		return persisted[i].ToDoPosition < persisted[j].ToDoPosition
	})
	wantIDs := []int64{11, 12, 10, 13}
	for i, want := range wantIDs {
		if persisted[i].ID != want {
			t.Errorf("persisted[%d].ID = %d, want %d", i, persisted[i].ID, want)
		}
	}
}

func TestCommitOrderWithoutMovesWritesNothing(t *testing.T) {
	repo := newFakeRepo(memo(10, 0), memo(11, 1))
	li := newList(t, repo)

	writes, err := li.CommitOrder(context.Background())
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if writes != 0 || len(repo.positionWrites) != 0 {
		t.Errorf("expected zero writes, got %d (%v)", writes, repo.positionWrites)
	}
}

func TestMoveItemOutOfRangeFailsLoudly(t *testing.T) {
	repo := newFakeRepo(memo(10, 0), memo(11, 1))
	li := newList(t, repo)

	tests := []struct {
		name     string
		from, to int
	}{
		{"From negative", -1, 0},
		{"From past end", 2, 0},
		{"To negative", 0, -1},
		{"To past end", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := li.MoveItem(tt.from, tt.to); err != todolist.ErrIndexOutOfRange {
				t.Errorf("MoveItem(%d, %d) = %v, want ErrIndexOutOfRange", tt.from, tt.to, err)
			}
		})
	}
}

func TestMoveAndCommitOnEmptyListAreNoOps(t *testing.T) {
	repo := newFakeRepo()
	li := newList(t, repo)

	if err := li.MoveItem(0, 1); err != nil {
		t.Errorf("move on empty list should no-op, got %v", err)
	}
	writes, err := li.CommitOrder(context.Background())
	if err != nil || writes != 0 {
		t.Errorf("commit on empty list: writes=%d err=%v", writes, err)
	}
}

func TestSetAllCompletionWritesOnlyDiffering(t *testing.T) {
	done := memo(10, 0)
	done.IsCompleted = true
	repo := newFakeRepo(done, memo(11, 1), memo(12, 2))
	li := newList(t, repo)

	writes, err := li.SetAllCompletion(context.Background(), true)
	if err != nil {
		t.Fatalf("set all: %v", err)
	}
	if writes != 2 {
		t.Errorf("writes = %d, want 2 (memo 10 already complete)", writes)
	}
	for _, m := range repo.memos {
		if !m.IsCompleted {
			t.Errorf("memo %d left uncompleted", m.ID)
		}
	}
}

func TestObserveReSortsEverySnapshot(t *testing.T) {
	repo := newFakeRepo(memo(10, 1), memo(11, 0))
	li := todolist.New(repo, nopLogger{}, 1)

	ch, cancel, err := li.Observe(context.Background())
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	defer cancel()

	snap := <-ch
	if len(snap) != 2 || snap[0].ID != 11 || snap[1].ID != 10 {
		t.Errorf("snapshot not rank-sorted: %+v", snap)
	}
}
