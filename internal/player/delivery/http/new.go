package http

import (
	"github.com/gin-gonic/gin"

	"listenote/internal/player"
	"listenote/pkg/log"
)

// Handler is the public interface for the player HTTP delivery layer.
type Handler interface {
	Load(c *gin.Context)
	State(c *gin.Context)
	PlayPause(c *gin.Context)
	Pause(c *gin.Context)
	SeekForward(c *gin.Context)
	SeekBackward(c *gin.Context)
	Scrub(c *gin.Context)
	ScrubCommit(c *gin.Context)
	AckError(c *gin.Context)
}

type handler struct {
	l       log.Logger
	tracker *player.Tracker
}

// New creates a new HTTP handler driving the process-wide playback tracker.
func New(l log.Logger, tracker *player.Tracker) *handler {
	return &handler{
		l:       l,
		tracker: tracker,
	}
}
