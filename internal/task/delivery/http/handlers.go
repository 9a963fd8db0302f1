package http

import (
	"github.com/gin-gonic/gin"

	"decidr/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns every task ranked by derived priority, deadline, remaining time and age. Priorities are re-derived at request time.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Add godoc
// @Summary     Add a task
// @Description Creates a task. Empty user_priority means auto; deadline is optional.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task data"
// @Success     201 {object} taskEventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTaskEventResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// BeginEdit godoc
// @Summary     Enter edit mode
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskEventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/edit [POST]
func (h *handler) BeginEdit(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BeginEdit(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.BeginEdit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEventResp(output))
}

// CancelEdit godoc
// @Summary     Leave edit mode without saving
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskEventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/edit [DELETE]
func (h *handler) CancelEdit(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CancelEdit(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.CancelEdit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEventResp(output))
}

// SaveEdit godoc
// @Summary     Save an edited task
// @Description Replaces every editable field and leaves edit mode. Empty user_priority means auto, empty deadline clears it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body saveEditReq true "New field values"
// @Success     200 {object} taskEventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) SaveEdit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SaveEdit(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SaveEdit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEventResp(output))
}

// Suggest godoc
// @Summary     Suggest a task
// @Description Finishable mode picks the best-ranked task that fits available_minutes; strategic mode picks the best-ranked task outright. task is null with a reason when nothing qualifies.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Available time and mode"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}
