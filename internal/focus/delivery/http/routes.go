package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	session := api.Group("/notebooks/:id/focus")
	{
		session.POST("/start", h.Start)
		session.GET("", h.State)
		session.POST("/complete", h.Complete)
		session.POST("/postpone", h.Postpone)
	}
}
