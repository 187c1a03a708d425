package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errBadID = errors.New("id must be a positive integer")

// processImportReq binds and validates the import request body.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
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
