package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// Schedule godoc
// @Summary     Schedule reminders for a task
// @Description Derives the reminder ladder from the task's priority and due date. Re-scheduling refreshes existing reminders instead of duplicating them.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Task has no due date"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/reminders [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Schedule(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// List godoc
// @Summary     List reminders for a task
// @Description Returns all reminders for a task, soonest first.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/reminders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListByTask(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
