package model

import "time"

// Priority is a task priority tier.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Tag is a task category. Tags are not mutually exclusive.
type Tag string

const (
	TagStudy    Tag = "study"
	TagWork     Tag = "work"
	TagPersonal Tag = "personal"
	TagHealth   Tag = "health"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Task is the core domain entity.
type Task struct {
	ID               string
	Title            string
	Description      string
	Status           Status
	Priority         Priority
	Tags             []Tag
	DueDate          *time.Time
	EstimatedMinutes *int
	AISuggested      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CompletedAt      *time.Time
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag Tag) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// Overdue reports whether the task has a due date strictly before now
// and is not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusCompleted
}
