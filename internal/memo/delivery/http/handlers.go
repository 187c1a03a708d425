package http

import (
	"github.com/gin-gonic/gin"

	"listenote/pkg/response"
)

// Create godoc
// @Summary     Create a memo
// @Description Saves an annotation at the given playback position. The memo joins the tail of the notebook's to-do order.
// @Tags        Memo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Memo data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(created))
}

// Detail godoc
// @Summary     Get memo detail
// @Description Returns a single memo by its ID.
// @Tags        Memo
// @Produce     json
// @Param       id path int true "Memo ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	m, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(m))
}

// Update godoc
// @Summary     Update a memo
// @Description Edits timestamp and text of an existing memo, preserving its completion flag and rank. Updating a vanished memo succeeds.
// @Tags        Memo
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Memo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a memo
// @Description Removes a memo. Deleting a missing memo succeeds.
// @Tags        Memo
// @Produce     json
// @Param       id path int true "Memo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
