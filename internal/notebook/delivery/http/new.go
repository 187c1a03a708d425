package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/notebook"
	"listenote/pkg/log"
)

// Handler is the public interface for the notebook HTTP delivery layer.
type Handler interface {
	Import(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
	Sources(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notebook.UseCase
}

// New creates a new HTTP handler for the notebook domain.
func New(l log.Logger, uc notebook.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
