package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"listenote/internal/todolist"
	"listenote/pkg/response"
)

var errBadID = errors.New("id must be a positive integer")

func param(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// Items godoc
// @Summary     List to-do items
// @Description Returns the notebook's memos in display order: rank ascending, arrival order breaking ties.
// @Tags        ToDoList
// @Produce     json
// @Param       id path int true "Notebook ID"
// @Success     200 {object} itemsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id}/todos [GET]
func (h *handler) Items(c *gin.Context) {
	ctx := c.Request.Context()

	notebookID, err := param(c, "id")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	li, err := h.list(ctx, notebookID)
	if err != nil {
		h.l.Errorf(ctx, "todolist load: %v", err)
		response.InternalError(c, err)
		return
	}
	if err := li.Refresh(ctx); err != nil {
		h.l.Errorf(ctx, "todolist refresh: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newItemsResp(li.Items()))
}

// Move godoc
// @Summary     Move a to-do item
// @Description Reorders the displayed sequence in memory only. Nothing is written until commit.
// @Tags        ToDoList
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Notebook ID"
// @Param       body body moveReq true "From and to indexes"
// @Success     200 {object} itemsResp
// @Failure     400 {object} response.Resp "Bad Request - index out of range"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id}/todos/move [POST]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	notebookID, err := param(c, "id")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	li, err := h.list(ctx, notebookID)
	if err != nil {
		h.l.Errorf(ctx, "todolist load: %v", err)
		response.InternalError(c, err)
		return
	}

	if err := li.MoveItem(req.FromIndex, req.ToIndex); err != nil {
		if err == todolist.ErrIndexOutOfRange {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "todolist move: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newItemsResp(li.Items()))
}

// Commit godoc
// @Summary     Commit the to-do order
// @Description Persists rank = index for the displayed sequence, writing only rows whose rank changed. Call once at the end of a drag gesture.
// @Tags        ToDoList
// @Produce     json
// @Param       id path int true "Notebook ID"
// @Success     200 {object} writesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id}/todos/commit [POST]
func (h *handler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	notebookID, err := param(c, "id")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	li, err := h.list(ctx, notebookID)
	if err != nil {
		h.l.Errorf(ctx, "todolist load: %v", err)
		response.InternalError(c, err)
		return
	}

	writes, err := li.CommitOrder(ctx)
	if err != nil {
		h.l.Errorf(ctx, "todolist commit: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, writesResp{Writes: writes})
}

// SetCompletion godoc
// @Summary     Set one item's completion
// @Description Persists the completion flag for a single memo. A vanished memo succeeds silently.
// @Tags        ToDoList
// @Accept      json
// @Produce     json
// @Param       id      path int           true "Notebook ID"
// @Param       memo_id path int           true "Memo ID"
// @Param       body    body completionReq true "Target flag"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id}/todos/items/{memo_id}/completion [PUT]
func (h *handler) SetCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	notebookID, err := param(c, "id")
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	memoID, err := param(c, "memo_id")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req completionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	li, err := h.list(ctx, notebookID)
	if err != nil {
		h.l.Errorf(ctx, "todolist load: %v", err)
		response.InternalError(c, err)
		return
	}

	if err := li.SetCompletion(ctx, memoID, *req.Completed); err != nil {
		h.l.Errorf(ctx, "todolist set completion: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}

// SetAllCompletion godoc
// @Summary     Set every item's completion
// @Description Persists the flag for each displayed item whose flag differs from the target.
// @Tags        ToDoList
// @Accept      json
// @Produce     json
// @Param       id   path int           true "Notebook ID"
// @Param       body body completionReq true "Target flag"
// @Success     200 {object} writesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notebooks/{id}/todos/completion [PUT]
func (h *handler) SetAllCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	notebookID, err := param(c, "id")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req completionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	li, err := h.list(ctx, notebookID)
	if err != nil {
		h.l.Errorf(ctx, "todolist load: %v", err)
		response.InternalError(c, err)
		return
	}
	if err := li.Refresh(ctx); err != nil {
		h.l.Errorf(ctx, "todolist refresh: %v", err)
		response.InternalError(c, err)
		return
	}

	writes, err := li.SetAllCompletion(ctx, *req.Completed)
	if err != nil {
		h.l.Errorf(ctx, "todolist set all completion: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, writesResp{Writes: writes})
}
