package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/memo"
	"listenote/pkg/log"
)

// Handler is the public interface for the memo HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc memo.UseCase
}

// New creates a new HTTP handler for the memo domain.
func New(l log.Logger, uc memo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
