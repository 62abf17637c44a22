package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse extracts structured task attributes from free-form text.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error

	// Intelligence
	SuggestSchedule(ctx context.Context, taskID string) (ScheduleSuggestOutput, error)
	SuggestDeadlines(ctx context.Context, input DeadlineSuggestInput) (DeadlineSuggestOutput, error)
	SuggestBreakdown(ctx context.Context, input BreakdownInput) (BreakdownOutput, error)
	Insights(ctx context.Context) (InsightsOutput, error)
	Stats(ctx context.Context) (StatsOutput, error)
}
