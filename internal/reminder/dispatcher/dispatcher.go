package dispatcher

import (
	"context"
	"errors"
	"time"

	"smart-todo/internal/reminder/repository"
	taskRepo "smart-todo/internal/task/repository"
	"smart-todo/pkg/log"
	"smart-todo/pkg/mailer"
)

const defaultInterval = time.Minute

// Dispatcher polls for due reminders and delivers them by email.
type Dispatcher struct {
	l        log.Logger
	repo     repository.Repository
	tasks    taskRepo.Repository
	mail     mailer.Mailer
	to       string
	interval time.Duration
	now      func() time.Time
}

// Config bundles the dispatcher dependencies.
type Config struct {
	Logger    log.Logger
	Reminders repository.Repository
	Tasks     taskRepo.Repository
	Mailer    mailer.Mailer
	To        string
	Interval  time.Duration
	Clock     func() time.Time
}

// New creates a dispatcher. Interval defaults to one minute, a nil clock
// to time.Now.
func New(cfg Config) *Dispatcher {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Dispatcher{
		l:        cfg.Logger,
		repo:     cfg.Reminders,
		tasks:    cfg.Tasks,
		mail:     cfg.Mailer,
		to:       cfg.To,
		interval: interval,
		now:      clock,
	}
}

// Run polls until the context is cancelled. Intended to be launched as a
// goroutine from main.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.l.Infof(ctx, "reminder.dispatcher: polling every %s", d.interval)
	for {
		select {
		case <-ctx.Done():
			d.l.Info(ctx, "reminder.dispatcher: stopped")
			return
		case <-ticker.C:
			d.DispatchDue(ctx)
		}
	}
}

// DispatchDue sends every due unsent reminder once. Failures are logged
// and retried on the next tick; a reminder is only marked sent after a
// successful delivery.
func (d *Dispatcher) DispatchDue(ctx context.Context) {
	due, err := d.repo.ListDue(ctx, d.now())
	if err != nil {
		d.l.Errorf(ctx, "reminder.dispatcher: list due: %v", err)
		return
	}

	for _, rem := range due {
		t, err := d.tasks.GetTask(ctx, rem.TaskID)
		if err != nil {
			if errors.Is(err, taskRepo.ErrNotFound) {
				// Task was deleted; drop its orphaned reminders.
				if err := d.repo.DeleteByTask(ctx, rem.TaskID); err != nil {
					d.l.Errorf(ctx, "reminder.dispatcher: cleanup task %s: %v", rem.TaskID, err)
				}
				continue
			}
			d.l.Errorf(ctx, "reminder.dispatcher: get task %s: %v", rem.TaskID, err)
			continue
		}

		dueAt := rem.RemindAt.Add(time.Duration(rem.OffsetMinutes) * time.Minute)
		subject, body, err := mailer.TaskReminder(t.Title, dueAt, string(t.Priority))
		if err != nil {
			d.l.Errorf(ctx, "reminder.dispatcher: render reminder %s: %v", rem.ID, err)
			continue
		}
		if err := d.mail.Send(ctx, d.to, subject, body); err != nil {
			d.l.Warnf(ctx, "reminder.dispatcher: send reminder %s: %v", rem.ID, err)
			continue
		}
		if err := d.repo.MarkSent(ctx, rem.ID); err != nil {
			d.l.Errorf(ctx, "reminder.dispatcher: mark sent %s: %v", rem.ID, err)
			continue
		}
		d.l.Infof(ctx, "reminder.dispatcher: sent reminder %s for task %s", rem.ID, t.ID)
	}
}
