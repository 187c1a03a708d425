package todolist

import (
	"sync"

	"listenote/internal/model"
	pkgLog "listenote/pkg/log"
)

// List exposes the memo set of one notebook as an explicitly ordered,
// reorderable, persistable sequence. Reorders stay in memory until
// CommitOrder so a drag gesture's many intermediate moves cost no writes.
type List struct {
	repo       Repository
	l          pkgLog.Logger
	notebookID int64

	mu    sync.Mutex
	memos []model.Memo // displayed order
}

// New creates the ordering store for one notebook.
func New(repo Repository, l pkgLog.Logger, notebookID int64) *List {
	return &List{
		repo:       repo,
		l:          l,
		notebookID: notebookID,
	}
}
