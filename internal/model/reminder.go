package model

import "time"

// Reminder is a scheduled notification for a task, firing a fixed number
// of minutes before the task's due date.
type Reminder struct {
	ID            string
	TaskID        string
	OffsetMinutes int
	RemindAt      time.Time
	Sent          bool
	CreatedAt     time.Time
}
