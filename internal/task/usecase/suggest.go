package usecase

import (
	"context"
	"errors"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
)

func (uc *implUseCase) SuggestSchedule(ctx context.Context, taskID string) (task.ScheduleSuggestOutput, error) {
	t, err := uc.repo.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ScheduleSuggestOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.SuggestSchedule: %v", err)
		return task.ScheduleSuggestOutput{}, err
	}

	suggestions := uc.eng.SuggestSchedule(t.Priority, t.Tags, uc.now())
	return task.ScheduleSuggestOutput{Suggestions: suggestions}, nil
}

func (uc *implUseCase) SuggestDeadlines(ctx context.Context, input task.DeadlineSuggestInput) (task.DeadlineSuggestOutput, error) {
	estimated := 0
	if input.EstimatedMinutes != nil {
		estimated = *input.EstimatedMinutes
	}

	// An omitted priority means medium, same as Create; the engine
	// reserves its fallback tier for explicitly low/unknown values.
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	suggestions := uc.eng.SuggestDeadlines(priority, estimated, uc.now())
	uc.l.Debugf(ctx, "task.usecase.SuggestDeadlines: priority=%s candidates=%d", priority, len(suggestions))
	return task.DeadlineSuggestOutput{Suggestions: suggestions}, nil
}
