package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errBadID = errors.New("id must be a positive integer")

// processCreateReq binds and validates the create memo request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update memo request body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

// processIDParam parses the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}
