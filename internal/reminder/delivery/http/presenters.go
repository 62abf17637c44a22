package http

import (
	"smart-todo/internal/model"
	"smart-todo/internal/reminder"
	"smart-todo/pkg/response"
)

type reminderResp struct {
	ID            string            `json:"id"`
	TaskID        string            `json:"task_id"`
	OffsetMinutes int               `json:"offset_minutes"`
	RemindAt      response.DateTime `json:"remind_at"`
	Sent          bool              `json:"sent"`
}

func newReminderResp(r model.Reminder) reminderResp {
	return reminderResp{
		ID:            r.ID,
		TaskID:        r.TaskID,
		OffsetMinutes: r.OffsetMinutes,
		RemindAt:      response.DateTime(r.RemindAt),
		Sent:          r.Sent,
	}
}

type scheduleResp struct {
	Reminders []reminderResp `json:"reminders"`
}

func (h *handler) newScheduleResp(out reminder.ScheduleOutput) scheduleResp {
	reminders := make([]reminderResp, len(out.Reminders))
	for i, r := range out.Reminders {
		reminders[i] = newReminderResp(r)
	}
	return scheduleResp{Reminders: reminders}
}

type listResp struct {
	Reminders []reminderResp `json:"reminders"`
}

func (h *handler) newListResp(out reminder.ListOutput) listResp {
	reminders := make([]reminderResp, len(out.Reminders))
	for i, r := range out.Reminders {
		reminders[i] = newReminderResp(r)
	}
	return listResp{Reminders: reminders}
}
