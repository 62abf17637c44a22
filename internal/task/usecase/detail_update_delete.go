package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/mailer"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.DetailOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Detail: %v", err)
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	t, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update: %v", err)
		return task.UpdateOutput{}, err
	}

	wasCompleted := t.Status == model.StatusCompleted

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return task.UpdateOutput{}, task.ErrEmptyTitle
		}
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Status != nil {
		applyStatus(&t, *input.Status, uc.now())
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.Tags != nil {
		t.Tags = input.Tags
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	if input.EstimatedMinutes != nil {
		t.EstimatedMinutes = input.EstimatedMinutes
	}

	updated, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update: %v", err)
		return task.UpdateOutput{}, err
	}

	if !wasCompleted && updated.Status == model.StatusCompleted {
		uc.notifyCompleted(ctx, updated)
	}

	return task.UpdateOutput{Task: updated}, nil
}

// notifyCompleted emails a completion notice for the task. Delivery is
// best effort; a send failure never fails the update itself.
func (uc *implUseCase) notifyCompleted(ctx context.Context, t model.Task) {
	if uc.mail == nil {
		return
	}
	completedAt := uc.now()
	if t.CompletedAt != nil {
		completedAt = *t.CompletedAt
	}
	subject, body, err := mailer.TaskCompleted(t.Title, completedAt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.notifyCompleted: render: %v", err)
		return
	}
	if err := uc.mail.Send(ctx, uc.notifyTo, subject, body); err != nil {
		uc.l.Warnf(ctx, "task.usecase.notifyCompleted: send to %s: %v", uc.notifyTo, err)
	}
}

// applyStatus moves a task between statuses, keeping CompletedAt in sync.
func applyStatus(t *model.Task, status model.Status, now time.Time) {
	if t.Status == status {
		return
	}
	t.Status = status
	if status == model.StatusCompleted {
		completedAt := now
		t.CompletedAt = &completedAt
	} else {
		t.CompletedAt = nil
	}
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return err
	}
	uc.l.Infof(ctx, "task.usecase.Delete: deleted task %s", id)
	return nil
}
