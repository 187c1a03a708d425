package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	memos := api.Group("/memos")
	{
		memos.POST("", h.Create)
		memos.GET("/:id", h.Detail)
		memos.PUT("/:id", h.Update)
		memos.DELETE("/:id", h.Delete)
	}
}
