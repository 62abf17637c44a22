package reminder

import "smart-todo/internal/model"

type ScheduleOutput struct {
	Reminders []model.Reminder
}

type ListOutput struct {
	Reminders []model.Reminder
}
