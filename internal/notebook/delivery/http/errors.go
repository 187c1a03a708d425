package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/notebook"
	"listenote/pkg/response"
)

// respondError translates notebook domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case notebook.ErrEmptyLocator:
		response.Error(c, err, nil)
	case notebook.ErrNotFound:
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
