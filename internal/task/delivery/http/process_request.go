package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// processAddReq binds the add request body and resolves its due date.
func (h *handler) processAddReq(c *gin.Context) (addReq, *time.Time, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, badRequest(err)
	}
	due, err := h.parseDueAt(req.DueAt)
	return req, due, err
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processEditReq binds the edit request body plus the URI id and resolves the due date.
func (h *handler) processEditReq(c *gin.Context) (editReq, *time.Time, error) {
	var req editReq
	id, err := h.processID(c)
	if err != nil {
		return req, nil, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, badRequest(err)
	}
	req.ID = id
	due, err := h.parseDueAt(req.DueAt)
	return req, due, err
}

// processID reads the :id path parameter.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// parseDueAt treats a blank value as "no due date".
func (h *handler) parseDueAt(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	due, err := h.parser.Parse(raw, h.now())
	if err != nil {
		return nil, errInvalidDueDate
	}
	return &due, nil
}
