package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	pl := api.Group("/player")
	{
		pl.POST("/load", h.Load)
		pl.GET("", h.State)
		pl.POST("/play-pause", h.PlayPause)
		pl.POST("/pause", h.Pause)
		pl.POST("/seek-forward", h.SeekForward)
		pl.POST("/seek-backward", h.SeekBackward)
		pl.POST("/scrub", h.Scrub)
		pl.POST("/scrub/commit", h.ScrubCommit)
		pl.POST("/error/ack", h.AckError)
	}
}
