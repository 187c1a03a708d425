package http

import (
	"sync"

	"github.com/gin-gonic/gin"

	"listenote/internal/focus"
	"listenote/pkg/log"
)

// Handler is the public interface for the focus session HTTP delivery layer.
type Handler interface {
	Start(c *gin.Context)
	State(c *gin.Context)
	Complete(c *gin.Context)
	Postpone(c *gin.Context)
}

// handler keeps one live session per notebook. Start replaces any previous
// session for that notebook; the other operations address the current one.
type handler struct {
	l    log.Logger
	repo focus.Repository

	mu       sync.Mutex
	sessions map[int64]*focus.Session
}

// New creates a new HTTP handler for the focus domain.
func New(l log.Logger, repo focus.Repository) *handler {
	return &handler{
		l:        l,
		repo:     repo,
		sessions: make(map[int64]*focus.Session),
	}
}

func (h *handler) session(notebookID int64) *focus.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[notebookID]
	if !ok {
		s = focus.New(h.repo, h.l, notebookID)
		h.sessions[notebookID] = s
	}
	return s
}

func (h *handler) replaceSession(notebookID int64) *focus.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := focus.New(h.repo, h.l, notebookID)
	h.sessions[notebookID] = s
	return s
}
