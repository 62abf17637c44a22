package repository

import (
	"context"
	"time"

	"smart-todo/internal/model"
)

// Repository is the persistence interface for reminders.
type Repository interface {
	// UpsertReminder inserts a reminder, or refreshes the RemindAt of an
	// existing unsent reminder with the same (task, offset) pair.
	UpsertReminder(ctx context.Context, opt UpsertReminderOptions) (model.Reminder, error)

	// ListByTask returns all reminders for a task, soonest first.
	ListByTask(ctx context.Context, taskID string) ([]model.Reminder, error)

	// ListDue returns unsent reminders whose RemindAt is at or before now.
	ListDue(ctx context.Context, now time.Time) ([]model.Reminder, error)

	// MarkSent flags a reminder as delivered.
	MarkSent(ctx context.Context, id string) error

	// DeleteByTask removes every reminder belonging to a task.
	DeleteByTask(ctx context.Context, taskID string) error
}
