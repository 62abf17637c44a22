package usecase

import (
	"context"
	"errors"

	"smart-todo/internal/model"
	"smart-todo/internal/reminder"
	"smart-todo/internal/reminder/repository"
	taskRepo "smart-todo/internal/task/repository"
)

func (uc *implUseCase) Schedule(ctx context.Context, taskID string) (reminder.ScheduleOutput, error) {
	t, err := uc.tasks.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, taskRepo.ErrNotFound) {
			return reminder.ScheduleOutput{}, reminder.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "reminder.usecase.Schedule: %v", err)
		return reminder.ScheduleOutput{}, err
	}
	if t.DueDate == nil {
		return reminder.ScheduleOutput{}, reminder.ErrNoDueDate
	}

	offsets := uc.eng.ReminderOffsets(t.Priority)
	times := uc.eng.RemindersFor(t.Priority, *t.DueDate)
	reminders := make([]model.Reminder, 0, len(offsets))
	for i, offset := range offsets {
		rem, err := uc.repo.UpsertReminder(ctx, repository.UpsertReminderOptions{
			TaskID:        t.ID,
			OffsetMinutes: offset,
			RemindAt:      times[i],
		})
		if err != nil {
			uc.l.Errorf(ctx, "reminder.usecase.Schedule: upsert offset %d: %v", offset, err)
			return reminder.ScheduleOutput{}, err
		}
		reminders = append(reminders, rem)
	}

	uc.l.Infof(ctx, "reminder.usecase.Schedule: scheduled %d reminders for task %s", len(reminders), t.ID)
	return reminder.ScheduleOutput{Reminders: reminders}, nil
}

func (uc *implUseCase) ListByTask(ctx context.Context, taskID string) (reminder.ListOutput, error) {
	if _, err := uc.tasks.GetTask(ctx, taskID); err != nil {
		if errors.Is(err, taskRepo.ErrNotFound) {
			return reminder.ListOutput{}, reminder.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "reminder.usecase.ListByTask: %v", err)
		return reminder.ListOutput{}, err
	}

	reminders, err := uc.repo.ListByTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "reminder.usecase.ListByTask: %v", err)
		return reminder.ListOutput{}, err
	}
	return reminder.ListOutput{Reminders: reminders}, nil
}
