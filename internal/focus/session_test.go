package focus_test

import (
	"context"
	"errors"
	"testing"

	"listenote/internal/focus"
	"listenote/internal/model"
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

type fakeRepo struct {
	tasks            []model.Memo
	completionWrites []int64
	failCompletion   bool
}

func (r *fakeRepo) UncompletedMemosByNotebook(ctx context.Context, notebookID int64) ([]model.Memo, error) {
	return append([]model.Memo(nil), r.tasks...), nil
}

func (r *fakeRepo) SetMemoCompletion(ctx context.Context, memoID int64, completed bool) error {
	if r.failCompletion {
		return errors.New("db unavailable")
	}
	r.completionWrites = append(r.completionWrites, memoID)
	return nil
}

func memo(id int64) model.Memo {
	return model.Memo{ID: id, NotebookID: 1, ToDo: "task"}
}

func startedSession(t *testing.T, repo *fakeRepo) *focus.Session {
	t.Helper()
	s := focus.New(repo, nopLogger{}, 1)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func queueIDs(s *focus.Session) []int64 {
	st := s.State()
	ids := make([]int64, len(st.Tasks))
	for i, m := range st.Tasks {
		ids[i] = m.ID
	}
	return ids
}

func TestPostponeThenComplete(t *testing.T) {
	// Session starts with [X=1, Y=2, Z=3].
	repo := &fakeRepo{tasks: []model.Memo{memo(1), memo(2), memo(3)}}
	s := startedSession(t, repo)
	ctx := context.Background()

	if err := s.Postpone(); err != nil {
		t.Fatalf("postpone: %v", err)
	}
	if got := queueIDs(s); len(got) != 3 || got[0] != 2 || got[1] != 3 || got[2] != 1 {
		t.Fatalf("queue after postpone = %v, want [2 3 1]", got)
	}
	if st := s.State(); st.CompletedTaskCount != 0 {
		t.Errorf("postpone must not change completed count, got %d", st.CompletedTaskCount)
	}
	if len(repo.completionWrites) != 0 {
		t.Errorf("postpone must not write to storage, wrote %v", repo.completionWrites)
	}

	if err := s.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got := queueIDs(s); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Fatalf("queue after complete = %v, want [3 1]", got)
	}
	st := s.State()
	if st.CompletedTaskCount != 1 {
		t.Errorf("completed count = %d, want 1", st.CompletedTaskCount)
	}
	if len(repo.completionWrites) != 1 || repo.completionWrites[0] != 2 {
		t.Errorf("expected exactly Y(id=2) persisted, got %v", repo.completionWrites)
	}
}

func TestPostponeNeverChangesQueueLength(t *testing.T) {
	repo := &fakeRepo{tasks: []model.Memo{memo(1), memo(2), memo(3), memo(4)}}
	s := startedSession(t, repo)

	for i := 0; i < 10; i++ {
		before := len(s.State().Tasks)
		if err := s.Postpone(); err != nil {
			t.Fatalf("postpone %d: %v", i, err)
		}
		if after := len(s.State().Tasks); after != before {
			t.Fatalf("postpone changed queue length: %d -> %d", before, after)
		}
	}
}

func TestPostponeWithSingleItemIsNoOp(t *testing.T) {
	repo := &fakeRepo{tasks: []model.Memo{memo(7)}}
	s := startedSession(t, repo)

	if err := s.Postpone(); err != nil {
		t.Fatalf("postpone: %v", err)
	}
	if got := queueIDs(s); len(got) != 1 || got[0] != 7 {
		t.Errorf("queue = %v, want [7]", got)
	}
}

func TestCompletingEverythingReachesAllDone(t *testing.T) {
	repo := &fakeRepo{tasks: []model.Memo{memo(1), memo(2)}}
	s := startedSession(t, repo)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := s.Complete(ctx); err != nil {
			t.Fatalf("complete %d: %v", i, err)
		}
	}

	st := s.State()
	if st.Phase != focus.PhaseAllDone {
		t.Fatalf("phase = %s, want all_done", st.Phase)
	}
	if st.InitialTaskCount != 2 || st.CompletedTaskCount != 2 {
		t.Errorf("counts = %d/%d, want 2/2", st.CompletedTaskCount, st.InitialTaskCount)
	}

	// Terminal state: further transitions are contract violations.
	if err := s.Complete(ctx); err != focus.ErrSessionFinished {
		t.Errorf("Complete on AllDone = %v, want ErrSessionFinished", err)
	}
	if err := s.Postpone(); err != focus.ErrSessionFinished {
		t.Errorf("Postpone on AllDone = %v, want ErrSessionFinished", err)
	}
}

func TestEmptySessionIsEmptyNotAllDone(t *testing.T) {
	repo := &fakeRepo{}
	s := startedSession(t, repo)

	st := s.State()
	if st.Phase != focus.PhaseEmpty {
		t.Fatalf("phase = %s, want empty", st.Phase)
	}
	if st.InitialTaskCount != 0 {
		t.Errorf("initial count = %d, want 0", st.InitialTaskCount)
	}
}

func TestTransitionsBeforeStartFailLoudly(t *testing.T) {
	s := focus.New(&fakeRepo{}, nopLogger{}, 1)

	if err := s.Complete(context.Background()); err != focus.ErrNotStarted {
		t.Errorf("Complete before start = %v, want ErrNotStarted", err)
	}
	if err := s.Postpone(); err != focus.ErrNotStarted {
		t.Errorf("Postpone before start = %v, want ErrNotStarted", err)
	}
}

func TestCompletePersistenceFailureKeepsHead(t *testing.T) {
	repo := &fakeRepo{tasks: []model.Memo{memo(1), memo(2)}, failCompletion: true}
	s := startedSession(t, repo)
	ctx := context.Background()

	if err := s.Complete(ctx); err == nil {
		t.Fatal("expected persistence error")
	}
	if got := queueIDs(s); len(got) != 2 || got[0] != 1 {
		t.Fatalf("queue after failed complete = %v, want [1 2]", got)
	}

	// Retry succeeds once the store recovers.
	repo.failCompletion = false
	if err := s.Complete(ctx); err != nil {
		t.Fatalf("retry complete: %v", err)
	}
	if got := queueIDs(s); len(got) != 1 || got[0] != 2 {
		t.Errorf("queue after retry = %v, want [2]", got)
	}
}
