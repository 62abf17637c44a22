package repository

import "time"

// UpsertReminderOptions carries the fields for scheduling one reminder.
type UpsertReminderOptions struct {
	TaskID        string
	OffsetMinutes int
	RemindAt      time.Time
}
