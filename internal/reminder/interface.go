package reminder

import "context"

// UseCase defines the business logic interface for the reminder domain.
type UseCase interface {
	// Schedule derives the reminder ladder for a task from its priority
	// and due date, persisting one reminder per offset. Re-scheduling is
	// idempotent per (task, offset) pair.
	Schedule(ctx context.Context, taskID string) (ScheduleOutput, error)

	// ListByTask returns all reminders for a task, soonest first.
	ListByTask(ctx context.Context, taskID string) (ListOutput, error)
}
