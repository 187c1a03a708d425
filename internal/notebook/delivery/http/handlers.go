package http

import (
	"github.com/gin-gonic/gin"

	"listenote/pkg/response"
)

// Import godoc
// @Summary     Import an audio source
// @Description Resolves title and duration for the locator, reuses the audio source if it was imported before, and creates a notebook with a unique title.
// @Tags        Notebook
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Audio locator"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newImportResp(output))
}

// List godoc
// @Summary     List notebooks
// @Description Returns all notebooks, newest first.
// @Tags        Notebook
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	notebooks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(notebooks))
}

// Detail godoc
// @Summary     Get notebook detail
// @Description Returns one notebook with its audio source and rank-ordered memos.
// @Tags        Notebook
// @Produce     json
// @Param       id path int true "Notebook ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a notebook
// @Description Removes a notebook and, via cascade, all its memos. Deleting a missing notebook succeeds.
// @Tags        Notebook
// @Produce     json
// @Param       id path int true "Notebook ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id} [DELETE]
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

// Sources godoc
// @Summary     List audio sources
// @Description Returns every imported audio source, newest first.
// @Tags        Notebook
// @Produce     json
// @Success     200 {object} sourcesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/audio-sources [GET]
func (h *handler) Sources(c *gin.Context) {
	ctx := c.Request.Context()

	sources, err := h.uc.Sources(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Sources: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSourcesResp(sources))
}
