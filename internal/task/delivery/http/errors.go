package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-manager/internal/task"
	pkgErrors "todo-manager/pkg/errors"
	"todo-manager/pkg/response"
)

var (
	errInvalidID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task id")
	errInvalidDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid due date")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// It returns nil for errors the API does not expose.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, task.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrNoDueDate):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, task.ErrSchedulerDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return nil
	}
}

// renderError writes a mapped use-case error, or a generic 500 for anything else.
func (h *handler) renderError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr)
		return
	}
	h.l.Errorf(c.Request.Context(), "task.delivery.http: %v", err)
	response.InternalError(c, err)
}

// badRequest wraps a binding error so it renders as 400 with its message.
func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
