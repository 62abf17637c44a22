package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// Parse godoc
// @Summary     Parse natural-language task input
// @Description Extracts title, priority, tags, due date and duration from free-form text.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Free-form task description"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task with the provided attributes. Priority defaults to medium.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated task list, newest first, with optional status and tag filters.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (pending/in_progress/completed)"
// @Param       tag    query string false "Filter by tag (study/work/personal/health)"
// @Param       limit  query int    false "Page size (default: 50, max: 100)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task; omitted fields are left unchanged. Completing a task stamps completed_at.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Deletes a task by its ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// SuggestSchedule godoc
// @Summary     Suggest work slots for a task
// @Description Returns up to three ranked candidate times based on the task's priority and tags.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} scheduleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/schedule-suggestions [GET]
func (h *handler) SuggestSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SuggestSchedule(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestSchedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// SuggestDeadlines godoc
// @Summary     Suggest deadlines for a task draft
// @Description Returns two candidate deadlines for the given priority and estimated duration. The task does not need to exist.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
// @Param       body body deadlineSuggestReq true "Task draft"
// @Success     200 {object} deadlineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/deadline-suggestions [POST]
func (h *handler) SuggestDeadlines(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeadlineSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestDeadlines(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestDeadlines: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDeadlineResp(output))
}

// SuggestBreakdown godoc
// @Summary     Break a task into subtasks
// @Description Returns a template-based decomposition of the task into smaller steps.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
// @Param       body body breakdownReq true "Task title and description"
// @Success     200 {object} breakdownResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/breakdown [POST]
func (h *handler) SuggestBreakdown(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBreakdownReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestBreakdown(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestBreakdown: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newBreakdownResp(output))
}

// Insights godoc
// @Summary     Productivity insights
// @Description Regenerates warnings, suggestions and tips from the current task set.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
// @Success     200 {object} insightsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Insights(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newInsightsResp(output))
}

// Stats godoc
// @Summary     Task statistics
// @Description Returns aggregate counters and a productivity score for the dashboard.
// @Tags        Intelligence
// @Accept      json
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}
