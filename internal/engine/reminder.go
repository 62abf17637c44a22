package engine

import (
	"time"

	"smart-todo/internal/model"
)

// ReminderOffsets returns the minutes-before-due ladder for the given
// priority tier. Unrecognized priorities use the medium ladder. The
// returned slice is a copy and may be mutated by the caller.
func (e *Engine) ReminderOffsets(priority model.Priority) []int {
	offsets, ok := reminderOffsets[priority]
	if !ok {
		offsets = reminderOffsets[model.PriorityMedium]
	}
	out := make([]int, len(offsets))
	copy(out, offsets)
	return out
}

// RemindersFor returns one timestamp per offset, each offset minutes
// before the due time. Deduplication against already-persisted reminders
// is the caller's concern.
func (e *Engine) RemindersFor(priority model.Priority, due time.Time) []time.Time {
	offsets := e.ReminderOffsets(priority)
	times := make([]time.Time, len(offsets))
	for i, m := range offsets {
		times[i] = due.Add(-time.Duration(m) * time.Minute)
	}
	return times
}
