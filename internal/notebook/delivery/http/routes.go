package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	notebooks := api.Group("/notebooks")
	{
		notebooks.POST("/import", h.Import)
		notebooks.GET("", h.List)
		notebooks.GET("/:id", h.Detail)
		notebooks.DELETE("/:id", h.Delete)
	}

	sources := api.Group("/audio-sources")
	{
		sources.GET("", h.Sources)
	}
}
