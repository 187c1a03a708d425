package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/memo"
	"listenote/pkg/response"
)

// respondError translates memo domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case memo.ErrNegativeTime, memo.ErrNotebookNotFound:
		response.Error(c, err, nil)
	case memo.ErrNotFound:
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
