package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"smart-todo/internal/model"
	"smart-todo/internal/reminder/repository"
)

func (r *implRepository) UpsertReminder(ctx context.Context, opt repository.UpsertReminderOptions) (model.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Refresh an existing unsent reminder for the same (task, offset)
	// pair instead of duplicating it.
	for id, rem := range r.byID {
		if rem.TaskID == opt.TaskID && rem.OffsetMinutes == opt.OffsetMinutes && !rem.Sent {
			rem.RemindAt = opt.RemindAt
			r.byID[id] = rem
			return rem, nil
		}
	}

	rem := model.Reminder{
		ID:            uuid.NewString(),
		TaskID:        opt.TaskID,
		OffsetMinutes: opt.OffsetMinutes,
		RemindAt:      opt.RemindAt,
		CreatedAt:     r.now(),
	}
	r.byID[rem.ID] = rem
	return rem, nil
}

func (r *implRepository) ListByTask(ctx context.Context, taskID string) ([]model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Reminder
	for _, rem := range r.byID {
		if rem.TaskID == taskID {
			out = append(out, rem)
		}
	}
	sortReminders(out)
	return out, nil
}

func (r *implRepository) ListDue(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Reminder
	for _, rem := range r.byID {
		if !rem.Sent && !rem.RemindAt.After(now) {
			out = append(out, rem)
		}
	}
	sortReminders(out)
	return out, nil
}

func (r *implRepository) MarkSent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rem, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	rem.Sent = true
	r.byID[id] = rem
	return nil
}

func (r *implRepository) DeleteByTask(ctx context.Context, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, rem := range r.byID {
		if rem.TaskID == taskID {
			delete(r.byID, id)
		}
	}
	return nil
}

// sortReminders orders soonest first, with ID as a deterministic
// tiebreaker for equal times.
func sortReminders(reminders []model.Reminder) {
	sort.Slice(reminders, func(i, j int) bool {
		if reminders[i].RemindAt.Equal(reminders[j].RemindAt) {
			return reminders[i].ID < reminders[j].ID
		}
		return reminders[i].RemindAt.Before(reminders[j].RemindAt)
	})
}
