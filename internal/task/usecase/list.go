package usecase

import (
	"context"

	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
)

const defaultListLimit = 50

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status: input.Status,
		Tag:    input.Tag,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
