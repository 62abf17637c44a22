package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
)

func (uc *implUseCase) Insights(ctx context.Context) (task.InsightsOutput, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Insights: %v", err)
		return task.InsightsOutput{}, err
	}

	insights := uc.eng.GenerateInsights(tasks, uc.now())
	return task.InsightsOutput{Insights: insights}, nil
}

// overduePenalty is subtracted from the completion rate per overdue task
// when computing the productivity score.
const overduePenalty = 5

func (uc *implUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Stats: %v", err)
		return task.StatsOutput{}, err
	}

	now := uc.now()
	out := task.StatsOutput{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			out.Completed++
		case model.StatusInProgress:
			out.InProgress++
		default:
			out.Pending++
		}
		if t.Overdue(now) {
			out.Overdue++
		}
	}

	if out.Total > 0 {
		out.CompletionRate = out.Completed * 100 / out.Total
	}
	score := out.CompletionRate - out.Overdue*overduePenalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	out.ProductivityScore = score

	return out, nil
}
