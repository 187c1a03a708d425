package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	todos := api.Group("/notebooks/:id/todos")
	{
		todos.GET("", h.Items)
		todos.POST("/move", h.Move)
		todos.POST("/commit", h.Commit)
		todos.PUT("/completion", h.SetAllCompletion)
		todos.PUT("/items/:memo_id/completion", h.SetCompletion)
	}
}
