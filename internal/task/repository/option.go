package repository

import (
	"time"

	"smart-todo/internal/model"
)

// CreateTaskOptions carries the fields for creating a task.
type CreateTaskOptions struct {
	Title            string
	Description      string
	Status           model.Status
	Priority         model.Priority
	Tags             []model.Tag
	DueDate          *time.Time
	EstimatedMinutes *int
	AISuggested      bool
}

// ListTasksOptions filters and paginates the task list. Zero values mean
// "no filter" / "no limit".
type ListTasksOptions struct {
	Status model.Status
	Tag    model.Tag
	Limit  int
	Offset int
}
