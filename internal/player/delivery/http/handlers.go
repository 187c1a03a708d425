package http

import (
	"github.com/gin-gonic/gin"

	"listenote/pkg/response"
)

// Load godoc
// @Summary     Load an audio locator
// @Description Points the player at a new source. Loading the already-loaded locator is a no-op and keeps the position.
// @Tags        Player
// @Accept      json
// @Produce     json
// @Param       body body loadReq true "Audio locator"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/player/load [POST]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()

	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	h.tracker.Load(ctx, req.Locator)
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}

// State godoc
// @Summary     Get player state
// @Description Returns the current playback snapshot.
// @Tags        Player
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/player [GET]
func (h *handler) State(c *gin.Context) {
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}

// PlayPause godoc
// @Summary     Toggle play/pause
// @Tags        Player
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/player/play-pause [POST]
func (h *handler) PlayPause(c *gin.Context) {
	h.tracker.PlayPause(c.Request.Context())
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}

// Pause godoc
// @Summary     Pause playback
// @Tags        Player
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/player/pause [POST]
func (h *handler) Pause(c *gin.Context) {
	h.tracker.Pause(c.Request.Context())
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}

// SeekForward godoc
// @Summary     Seek forward
// @Description Moves the position forward by the configured increment, clamped to the duration.
// @Tags        Player
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/player/seek-forward [POST]
func (h *handler) SeekForward(c *gin.Context) {
	h.tracker.SeekForward(c.Request.Context())
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}

// SeekBackward godoc
// @Summary     Seek backward
// @Description Moves the position backward by the configured increment, clamped to zero.
// @Tags        Player
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/player/seek-backward [POST]
func (h *handler) SeekBackward(c *gin.Context) {
	h.tracker.SeekBackward(c.Request.Context())
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}

// Scrub godoc
// @Summary     Scrub to a fraction
// @Description Updates the displayed position only; the device is not seeked until commit. Fractions are clamped to [0,1].
// @Tags        Player
// @Accept      json
// @Produce     json
// @Param       body body scrubReq true "Position as a fraction of the duration"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/player/scrub [POST]
func (h *handler) Scrub(c *gin.Context) {
	var req scrubReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	h.tracker.OnScrubChange(*req.Fraction)
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}

// ScrubCommit godoc
// @Summary     Commit a scrub
// @Description Issues the device seek to the last scrubbed position and resumes polling if playing.
// @Tags        Player
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/player/scrub/commit [POST]
func (h *handler) ScrubCommit(c *gin.Context) {
	h.tracker.OnScrubCommit(c.Request.Context())
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}

// AckError godoc
// @Summary     Acknowledge the playback error
// @Description Clears the one-shot playback error after the client has shown it.
// @Tags        Player
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/player/error/ack [POST]
func (h *handler) AckError(c *gin.Context) {
	h.tracker.AckError()
	response.OK(c, h.newStateResp(h.tracker.Snapshot()))
}
