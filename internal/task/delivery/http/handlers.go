package http

import (
	"github.com/gin-gonic/gin"

	"todo-manager/pkg/response"
)

// Add godoc
// @Summary     Add a task
// @Description Creates a pending task. The first #tag in the text becomes its category.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task data"
// @Success     201  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request - empty text or invalid due date"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, due, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Add(ctx, req.toInput(due))
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		h.renderError(c, err)
		return
	}

	response.Created(c, h.newItemResp(t))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks in insertion order. filter is all, completed, pending or a category.
// @Tags        Tasks
// @Produce     json
// @Param       filter query string false "all (default), completed, pending, or a category"
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := req.toFilter()
	response.OK(c, h.newListResp(filter, h.uc.List(ctx, filter)))
}

// Categories godoc
// @Summary     List categories
// @Description Returns the distinct categories in use, sorted ascending.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/tasks/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, h.newCategoriesResp(h.uc.Categories(c.Request.Context())))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Get(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newItemResp(t))
}

// Edit godoc
// @Summary     Edit a task
// @Description Overwrites text, due date and category. Blank due_at or category clears them.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Task ID"
// @Param       body body editReq true "New values"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	req, due, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Edit(ctx, req.toInput(due))
	if err != nil {
		h.l.Warnf(ctx, "uc.Edit: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newItemResp(t))
}

// Toggle godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.ToggleComplete(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newItemResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.renderError(c, err)
		return
	}

	response.OK(c, nil)
}

// ClearCompleted godoc
// @Summary     Clear completed tasks
// @Description Removes every completed task and reports how many were removed.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} clearResp
// @Router      /api/v1/tasks/clear-completed [POST]
func (h *handler) ClearCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	removed, err := h.uc.ClearCompleted(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearCompleted: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, clearResp{Removed: removed})
}

// Schedule godoc
// @Summary     Schedule a task in Google Calendar
// @Description Creates a calendar event at the task's due date.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} scheduleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Task has no due date"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/tasks/{id}/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Schedule(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Schedule: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(out))
}
