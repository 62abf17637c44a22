package task

import (
	"time"

	"smart-todo/internal/engine"
	"smart-todo/internal/model"
)

// ParseInput is the input for natural-language parsing.
type ParseInput struct {
	Input string // Free-form task description from the user
}

// ParseOutput carries the structured draft extracted from the input.
type ParseOutput struct {
	Draft engine.ParsedDraft
}

// CreateInput is the input for task creation.
type CreateInput struct {
	Title            string
	Description      string
	Priority         model.Priority
	Tags             []model.Tag
	DueDate          *time.Time
	EstimatedMinutes *int
	AISuggested      bool
}

type CreateOutput struct {
	Task model.Task
}

// ListInput filters and paginates the task list.
type ListInput struct {
	Status model.Status // Optional status filter
	Tag    model.Tag    // Optional tag filter
	Limit  int
	Offset int
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID               string
	Title            *string
	Description      *string
	Status           *model.Status
	Priority         *model.Priority
	Tags             []model.Tag
	DueDate          *time.Time
	EstimatedMinutes *int
}

type UpdateOutput struct {
	Task model.Task
}

// ScheduleSuggestOutput carries ranked candidate times for a task.
type ScheduleSuggestOutput struct {
	Suggestions []engine.ScheduleSuggestion
}

// DeadlineSuggestInput describes the task whose deadline is being chosen.
// The task does not need to exist yet.
type DeadlineSuggestInput struct {
	Title            string
	Priority         model.Priority
	EstimatedMinutes *int
	Tags             []model.Tag
}

type DeadlineSuggestOutput struct {
	Suggestions []engine.DeadlineSuggestion
}

type BreakdownInput struct {
	Title       string
	Description string
}

type BreakdownOutput struct {
	Breakdown engine.Breakdown
}

type InsightsOutput struct {
	Insights []engine.Insight
}

// StatsOutput aggregates task counters for the dashboard.
type StatsOutput struct {
	Total             int
	Completed         int
	Pending           int
	InProgress        int
	Overdue           int
	CompletionRate    int // percent, truncated
	ProductivityScore int // completion rate minus overdue penalty, clamped to [0,100]
}
