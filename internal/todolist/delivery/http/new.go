package http

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"listenote/internal/todolist"
	"listenote/pkg/log"
)

// Handler is the public interface for the to-do list HTTP delivery layer.
type Handler interface {
	Items(c *gin.Context)
	Move(c *gin.Context)
	Commit(c *gin.Context)
	SetCompletion(c *gin.Context)
	SetAllCompletion(c *gin.Context)
}

// handler keeps one live ordering store per notebook so move gestures can
// span several requests before a commit.
type handler struct {
	l    log.Logger
	repo todolist.Repository

	mu    sync.Mutex
	lists map[int64]*todolist.List
}

// New creates a new HTTP handler for the to-do list domain.
func New(l log.Logger, repo todolist.Repository) *handler {
	return &handler{
		l:     l,
		repo:  repo,
		lists: make(map[int64]*todolist.List),
	}
}

// list returns the notebook's ordering store, creating and loading it on
// first use.
func (h *handler) list(ctx context.Context, notebookID int64) (*todolist.List, error) {
	h.mu.Lock()
	li, ok := h.lists[notebookID]
	if !ok {
		li = todolist.New(h.repo, h.l, notebookID)
		h.lists[notebookID] = li
	}
	h.mu.Unlock()

	if !ok {
		if err := li.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return li, nil
}
