package http

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Input string `json:"input" binding:"required"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{Input: r.Input}
}

// ---

type createReq struct {
	Title            string   `json:"title"             binding:"required,min=1,max=500"`
	Description      string   `json:"description"       binding:"max=2000"`
	Priority         string   `json:"priority"          binding:"omitempty,oneof=low medium high urgent"`
	Tags             []string `json:"tags"              binding:"omitempty,dive,oneof=study work personal health"`
	DueDate          *string  `json:"due_date"          binding:"omitempty"`
	EstimatedMinutes *int     `json:"estimated_minutes" binding:"omitempty,min=1"`
	AISuggested      bool     `json:"ai_suggested"`
}

func (r createReq) validate() error {
	if r.DueDate != nil {
		if _, err := time.Parse(time.RFC3339, *r.DueDate); err != nil {
			return errInvalidDueDate
		}
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	in := task.CreateInput{
		Title:            r.Title,
		Description:      r.Description,
		Priority:         model.Priority(r.Priority),
		Tags:             toModelTags(r.Tags),
		EstimatedMinutes: r.EstimatedMinutes,
		AISuggested:      r.AISuggested,
	}
	if r.DueDate != nil {
		due, _ := time.Parse(time.RFC3339, *r.DueDate)
		in.DueDate = &due
	}
	return in
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Tag    string `form:"tag"    binding:"omitempty,oneof=study work personal health"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Status: model.Status(r.Status),
		Tag:    model.Tag(r.Tag),
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	ID               string    `json:"-"` // populated from URI param
	Title            *string   `json:"title"             binding:"omitempty,max=500"`
	Description      *string   `json:"description"       binding:"omitempty,max=2000"`
	Status           *string   `json:"status"            binding:"omitempty,oneof=pending in_progress completed"`
	Priority         *string   `json:"priority"          binding:"omitempty,oneof=low medium high urgent"`
	Tags             *[]string `json:"tags"              binding:"omitempty,dive,oneof=study work personal health"`
	DueDate          *string   `json:"due_date"          binding:"omitempty"`
	EstimatedMinutes *int      `json:"estimated_minutes" binding:"omitempty,min=1"`
}

func (r updateReq) validate() error {
	if r.DueDate != nil {
		if _, err := time.Parse(time.RFC3339, *r.DueDate); err != nil {
			return errInvalidDueDate
		}
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		EstimatedMinutes: r.EstimatedMinutes,
	}
	if r.Status != nil {
		status := model.Status(*r.Status)
		in.Status = &status
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		in.Priority = &priority
	}
	if r.Tags != nil {
		in.Tags = toModelTags(*r.Tags)
		if in.Tags == nil {
			in.Tags = []model.Tag{}
		}
	}
	if r.DueDate != nil {
		due, _ := time.Parse(time.RFC3339, *r.DueDate)
		in.DueDate = &due
	}
	return in
}

// ---

type deadlineSuggestReq struct {
	Title            string   `json:"title"             binding:"required"`
	Priority         string   `json:"priority"          binding:"omitempty,oneof=low medium high urgent"`
	Tags             []string `json:"tags"              binding:"omitempty,dive,oneof=study work personal health"`
	EstimatedMinutes *int     `json:"estimated_minutes" binding:"omitempty,min=1"`
}

func (r deadlineSuggestReq) toInput() task.DeadlineSuggestInput {
	return task.DeadlineSuggestInput{
		Title:            r.Title,
		Priority:         model.Priority(r.Priority),
		Tags:             toModelTags(r.Tags),
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

// ---

type breakdownReq struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"max=2000"`
}

func (r breakdownReq) toInput() task.BreakdownInput {
	return task.BreakdownInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

func toModelTags(tags []string) []model.Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]model.Tag, len(tags))
	for i, tag := range tags {
		out[i] = model.Tag(tag)
	}
	return out
}

// --- Response DTOs ---

type taskResp struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	Tags             []string   `json:"tags"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	EstimatedMinutes *int       `json:"estimated_minutes,omitempty"`
	AISuggested      bool       `json:"ai_suggested"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	tags := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		tags[i] = string(tag)
	}
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           string(t.Status),
		Priority:         string(t.Priority),
		Tags:             tags,
		DueDate:          t.DueDate,
		EstimatedMinutes: t.EstimatedMinutes,
		AISuggested:      t.AISuggested,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
		CompletedAt:      t.CompletedAt,
	}
}

type parseResp struct {
	Title            string     `json:"title"`
	Priority         string     `json:"priority"`
	Tags             []string   `json:"tags"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	EstimatedMinutes *int       `json:"estimated_minutes,omitempty"`
	AISuggested      bool       `json:"ai_suggested"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	tags := make([]string, len(out.Draft.Tags))
	for i, tag := range out.Draft.Tags {
		tags[i] = string(tag)
	}
	return parseResp{
		Title:            out.Draft.Title,
		Priority:         string(out.Draft.Priority),
		Tags:             tags,
		DueDate:          out.Draft.DueDate,
		EstimatedMinutes: out.Draft.EstimatedMinutes,
		AISuggested:      out.Draft.AISuggested,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type scheduleSuggestionResp struct {
	Time   time.Time `json:"time"`
	Reason string    `json:"reason"`
	Score  int       `json:"score"`
}

type scheduleResp struct {
	Suggestions []scheduleSuggestionResp `json:"suggestions"`
}

func (h *handler) newScheduleResp(out task.ScheduleSuggestOutput) scheduleResp {
	suggestions := make([]scheduleSuggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = scheduleSuggestionResp{
			Time:   s.Time,
			Reason: s.Reason,
			Score:  s.Score,
		}
	}
	return scheduleResp{Suggestions: suggestions}
}

type deadlineSuggestionResp struct {
	Date       response.Date `json:"date"`
	Label      string        `json:"label"`
	Reason     string        `json:"reason"`
	Confidence int           `json:"confidence"`
}

type deadlineResp struct {
	Suggestions []deadlineSuggestionResp `json:"suggestions"`
}

func (h *handler) newDeadlineResp(out task.DeadlineSuggestOutput) deadlineResp {
	suggestions := make([]deadlineSuggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = deadlineSuggestionResp{
			Date:       response.Date(s.Date),
			Label:      s.Label,
			Reason:     s.Reason,
			Confidence: s.Confidence,
		}
	}
	return deadlineResp{Suggestions: suggestions}
}

type subtaskResp struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type breakdownResp struct {
	Subtasks         []subtaskResp `json:"subtasks"`
	EstimatedMinutes int           `json:"estimated_minutes"`
	Suggestion       string        `json:"suggestion"`
}

func (h *handler) newBreakdownResp(out task.BreakdownOutput) breakdownResp {
	subtasks := make([]subtaskResp, len(out.Breakdown.Subtasks))
	for i, s := range out.Breakdown.Subtasks {
		subtasks[i] = subtaskResp{Title: s.Title, Completed: s.Completed}
	}
	return breakdownResp{
		Subtasks:         subtasks,
		EstimatedMinutes: out.Breakdown.EstimatedMinutes,
		Suggestion:       out.Breakdown.Suggestion,
	}
}

type insightResp struct {
	Kind          string `json:"kind"`
	Message       string `json:"message"`
	RelatedTaskID string `json:"related_task_id,omitempty"`
}

type insightsResp struct {
	Insights []insightResp `json:"insights"`
}

func (h *handler) newInsightsResp(out task.InsightsOutput) insightsResp {
	insights := make([]insightResp, len(out.Insights))
	for i, in := range out.Insights {
		insights[i] = insightResp{
			Kind:          string(in.Kind),
			Message:       in.Message,
			RelatedTaskID: in.RelatedTaskID,
		}
	}
	return insightsResp{Insights: insights}
}

type statsResp struct {
	Total             int `json:"total"`
	Completed         int `json:"completed"`
	Pending           int `json:"pending"`
	InProgress        int `json:"in_progress"`
	Overdue           int `json:"overdue"`
	CompletionRate    int `json:"completion_rate"`
	ProductivityScore int `json:"productivity_score"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		Total:             out.Total,
		Completed:         out.Completed,
		Pending:           out.Pending,
		InProgress:        out.InProgress,
		Overdue:           out.Overdue,
		CompletionRate:    out.CompletionRate,
		ProductivityScore: out.ProductivityScore,
	}
}
