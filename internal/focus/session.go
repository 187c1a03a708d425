package focus

import (
	"context"
	"sync"

	"listenote/internal/model"
	pkgLog "listenote/pkg/log"
)

// Phase is the focus session state.
type Phase int

const (
	// PhaseLoading is the initial phase before Start has fetched the queue.
	PhaseLoading Phase = iota
	// PhaseReviewing means the queue head is the current task.
	PhaseReviewing
	// PhaseAllDone means every task of a non-empty session was completed.
	PhaseAllDone
	// PhaseEmpty means the session started with zero uncompleted tasks.
	// Distinct from PhaseAllDone: there was never anything to review.
	PhaseEmpty
)

// String returns a readable name for logging and presenters.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReviewing:
		return "reviewing"
	case PhaseAllDone:
		return "all_done"
	case PhaseEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of a session.
type Snapshot struct {
	Phase              Phase
	Tasks              []model.Memo // remaining queue, head first
	InitialTaskCount   int
	CompletedTaskCount int
}

// Session drives a one-item-at-a-time review over the uncompleted,
// rank-ordered memos of one notebook. Completing the head persists its flag
// and drops it; postponing rotates it to the tail in memory only, so the
// stored rank still reflects the pre-session ordering.
type Session struct {
	repo       Repository
	l          pkgLog.Logger
	notebookID int64

	mu             sync.Mutex
	phase          Phase
	queue          []model.Memo
	initialCount   int
	completedCount int
}

// New creates a focus session for one notebook in the Loading phase.
func New(repo Repository, l pkgLog.Logger, notebookID int64) *Session {
	return &Session{
		repo:       repo,
		l:          l,
		notebookID: notebookID,
		phase:      PhaseLoading,
	}
}

// Start fetches the uncompleted, rank-ordered queue once. A session that
// starts with nothing to review lands in Empty, not AllDone.
func (s *Session) Start(ctx context.Context) error {
	tasks, err := s.repo.UncompletedMemosByNotebook(ctx, s.notebookID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = tasks
	s.initialCount = len(tasks)
	s.completedCount = 0
	if len(tasks) == 0 {
		s.phase = PhaseEmpty
	} else {
		s.phase = PhaseReviewing
	}

	s.l.Debugf(ctx, "focus: session for notebook %d started with %d tasks", s.notebookID, len(tasks))
	return nil
}

// Current returns the queue head, if any.
func (s *Session) Current() (model.Memo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReviewing || len(s.queue) == 0 {
		return model.Memo{}, false
	}
	return s.queue[0], true
}

// Complete persists the head's completion flag, drops it from the queue and
// bumps the completed count. This is the only transition that writes to
// storage. On a persistence error the head stays in place so a retry is
// safe. Emptying the queue moves the session to AllDone.
func (s *Session) Complete(ctx context.Context) error {
	s.mu.Lock()
	switch s.phase {
	case PhaseLoading:
		s.mu.Unlock()
		return ErrNotStarted
	case PhaseAllDone, PhaseEmpty:
		s.mu.Unlock()
		return ErrSessionFinished
	}
	head := s.queue[0]
	s.mu.Unlock()

	if err := s.repo.SetMemoCompletion(ctx, head.ID, true); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = s.queue[1:]
	s.completedCount++
	if len(s.queue) == 0 {
		s.phase = PhaseAllDone
	}
	return nil
}

// Postpone rotates the head to the tail of the in-memory queue. Queue
// length never changes and nothing is written; with zero or one item it is
// a no-op.
func (s *Session) Postpone() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case PhaseLoading:
		return ErrNotStarted
	case PhaseAllDone, PhaseEmpty:
		return ErrSessionFinished
	}
	if len(s.queue) <= 1 {
		return nil
	}
	head := s.queue[0]
	s.queue = append(s.queue[1:], head)
	return nil
}

// State returns an immutable snapshot of the session.
func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Phase:              s.phase,
		Tasks:              append([]model.Memo(nil), s.queue...),
		InitialTaskCount:   s.initialCount,
		CompletedTaskCount: s.completedCount,
	}
}
