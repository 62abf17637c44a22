package usecase

import (
	"context"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		Status:           model.StatusPending,
		Priority:         priority,
		Tags:             input.Tags,
		DueDate:          input.DueDate,
		EstimatedMinutes: input.EstimatedMinutes,
		AISuggested:      input.AISuggested,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task %s", created.ID)
	return task.CreateOutput{Task: created}, nil
}
