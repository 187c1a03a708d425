package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"listenote/internal/focus"
	"listenote/pkg/response"
)

var errBadID = errors.New("id must be a positive integer")

func notebookParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// respondError translates focus domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case focus.ErrNotStarted, focus.ErrSessionFinished:
		response.Conflict(c, err)
	default:
		response.InternalError(c, err)
	}
}

// Start godoc
// @Summary     Start a focus session
// @Description Loads the notebook's uncompleted memos in rank order and begins a one-at-a-time review. Restarting replaces any previous session.
// @Tags        Focus
// @Produce     json
// @Param       id path int true "Notebook ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id}/focus/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	notebookID, err := notebookParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s := h.replaceSession(notebookID)
	if err := s.Start(ctx); err != nil {
		h.l.Errorf(ctx, "focus start: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(s.State()))
}

// State godoc
// @Summary     Get focus session state
// @Description Returns the phase, remaining queue and progress counters of the notebook's session.
// @Tags        Focus
// @Produce     json
// @Param       id path int true "Notebook ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notebooks/{id}/focus [GET]
func (h *handler) State(c *gin.Context) {
	notebookID, err := notebookParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s := h.session(notebookID)
	response.OK(c, h.newSessionResp(s.State()))
}

// Complete godoc
// @Summary     Complete the current task
// @Description Persists the head task's completion, removes it from the queue and advances. The only focus transition that writes to storage.
// @Tags        Focus
// @Produce     json
// @Param       id path int true "Notebook ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - session not started or finished"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id}/focus/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	notebookID, err := notebookParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s := h.session(notebookID)
	if err := s.Complete(ctx); err != nil {
		h.l.Errorf(ctx, "focus complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(s.State()))
}

// Postpone godoc
// @Summary     Postpone the current task
// @Description Rotates the head task to the tail of the in-memory queue. Stored ranks are untouched.
// @Tags        Focus
// @Produce     json
// @Param       id path int true "Notebook ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - session not started or finished"
// @Router      /api/v1/notebooks/{id}/focus/postpone [POST]
func (h *handler) Postpone(c *gin.Context) {
	ctx := c.Request.Context()

	notebookID, err := notebookParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s := h.session(notebookID)
	if err := s.Postpone(); err != nil {
		h.l.Errorf(ctx, "focus postpone: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(s.State()))
}
