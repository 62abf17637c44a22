package dispatcher_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/reminder/dispatcher"
	"smart-todo/internal/reminder/repository"
	"smart-todo/internal/reminder/repository/memory"
	taskRepo "smart-todo/internal/task/repository"
	pkgLog "smart-todo/pkg/log"
)

var testNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var _ pkgLog.Logger = nopLogger{}

type stubTaskRepo struct {
	tasks map[string]model.Task
}

func (s *stubTaskRepo) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (s *stubTaskRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, taskRepo.ErrNotFound
	}
	return t, nil
}

func (s *stubTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, int, error) {
	return nil, 0, nil
}

func (s *stubTaskRepo) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	return t, nil
}

func (s *stubTaskRepo) DeleteTask(ctx context.Context, id string) error { return nil }

type recordingMailer struct {
	sent []string // subjects
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, subject)
	return nil
}

func TestDispatchDue(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return testNow }

	reminders := memory.New(nopLogger{}, clock)
	past, err := reminders.UpsertReminder(ctx, repository.UpsertReminderOptions{
		TaskID:        "t1",
		OffsetMinutes: 30,
		RemindAt:      testNow.Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := reminders.UpsertReminder(ctx, repository.UpsertReminderOptions{
		TaskID:        "t1",
		OffsetMinutes: 5,
		RemindAt:      testNow.Add(time.Hour),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks := &stubTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", Title: "Submit thesis", Priority: model.PriorityUrgent},
	}}
	mail := &recordingMailer{}

	d := dispatcher.New(dispatcher.Config{
		Logger:    nopLogger{},
		Reminders: reminders,
		Tasks:     tasks,
		Mailer:    mail,
		To:        "user@example.com",
		Clock:     clock,
	})

	d.DispatchDue(ctx)

	if len(mail.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(mail.sent))
	}
	if !strings.Contains(mail.sent[0], "Submit thesis") {
		t.Errorf("subject = %q, want task title", mail.sent[0])
	}

	// The delivered reminder must not fire again.
	d.DispatchDue(ctx)
	if len(mail.sent) != 1 {
		t.Errorf("reminder delivered twice")
	}

	due, _ := reminders.ListDue(ctx, testNow)
	for _, rem := range due {
		if rem.ID == past.ID {
			t.Errorf("delivered reminder still due")
		}
	}
}

func TestDispatchDueSendFailureRetries(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return testNow }

	reminders := memory.New(nopLogger{}, clock)
	if _, err := reminders.UpsertReminder(ctx, repository.UpsertReminderOptions{
		TaskID:        "t1",
		OffsetMinutes: 30,
		RemindAt:      testNow.Add(-time.Minute),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tasks := &stubTaskRepo{tasks: map[string]model.Task{
		"t1": {ID: "t1", Title: "ship", Priority: model.PriorityHigh},
	}}
	mail := &recordingMailer{err: context.DeadlineExceeded}

	d := dispatcher.New(dispatcher.Config{
		Logger:    nopLogger{},
		Reminders: reminders,
		Tasks:     tasks,
		Mailer:    mail,
		To:        "user@example.com",
		Clock:     clock,
	})
	d.DispatchDue(ctx)

	// Failed delivery keeps the reminder due for the next tick.
	due, _ := reminders.ListDue(ctx, testNow)
	if len(due) != 1 {
		t.Errorf("reminder dropped after failed send")
	}
}

func TestDispatchDueCleansOrphans(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return testNow }

	reminders := memory.New(nopLogger{}, clock)
	if _, err := reminders.UpsertReminder(ctx, repository.UpsertReminderOptions{
		TaskID:        "gone",
		OffsetMinutes: 30,
		RemindAt:      testNow.Add(-time.Minute),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mail := &recordingMailer{}

	d := dispatcher.New(dispatcher.Config{
		Logger:    nopLogger{},
		Reminders: reminders,
		Tasks:     &stubTaskRepo{tasks: map[string]model.Task{}},
		Mailer:    mail,
		To:        "user@example.com",
		Clock:     clock,
	})
	d.DispatchDue(ctx)

	if len(mail.sent) != 0 {
		t.Errorf("mailed a reminder for a deleted task")
	}
	left, _ := reminders.ListByTask(ctx, "gone")
	if len(left) != 0 {
		t.Errorf("orphaned reminders were not cleaned up: %+v", left)
	}
}
