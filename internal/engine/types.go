package engine

import (
	"time"

	"smart-todo/internal/model"
)

// ParsedDraft is the structured result of parsing one free-text task
// description. It is produced fresh per call and never mutated after
// return; ownership passes to the caller.
type ParsedDraft struct {
	Title            string
	Priority         model.Priority
	Tags             []model.Tag
	DueDate          *time.Time
	EstimatedMinutes *int
	Status           model.Status
	AISuggested      bool
}

// ScheduleSuggestion is one candidate time slot for working on a task.
type ScheduleSuggestion struct {
	Time   time.Time
	Reason string
	Score  int // 0-100
}

// DeadlineSuggestion is one candidate deadline for a task.
type DeadlineSuggestion struct {
	Date       time.Time
	Label      string
	Reason     string
	Confidence int // 0-100
}

// InsightKind classifies a productivity insight.
type InsightKind string

const (
	InsightWarning    InsightKind = "warning"
	InsightSuggestion InsightKind = "suggestion"
	InsightTip        InsightKind = "tip"
)

// Insight is a derived productivity observation. Insights are not stored;
// they are regenerated from the current task set on every call.
type Insight struct {
	Kind          InsightKind
	Message       string
	RelatedTaskID string
}

// Subtask is one step of a task breakdown.
type Subtask struct {
	Title     string
	Completed bool
}

// Breakdown is a suggested decomposition of a task into steps.
type Breakdown struct {
	Subtasks         []Subtask
	EstimatedMinutes int
	Suggestion       string
}
