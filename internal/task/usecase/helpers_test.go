package usecase_test

import (
	"context"
	"testing"
	"time"

	"smart-todo/internal/engine"
	"smart-todo/internal/model"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/datemath"
)

// Fixed clock shared by all usecase tests: Wed 2024-05-01 15:30 UTC.
var testNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock task repository with per-call function hooks. Unset hooks return
// zero values so each test only wires what it asserts on.
type mockTaskRepo struct {
	createFunc func(opt repository.CreateTaskOptions) (model.Task, error)
	getFunc    func(id string) (model.Task, error)
	listFunc   func(opt repository.ListTasksOptions) ([]model.Task, int, error)
	updateFunc func(t model.Task) (model.Task, error)
	deleteFunc func(id string) error
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Task{}, nil
}

func (m *mockTaskRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	if m.updateFunc != nil {
		return m.updateFunc(t)
	}
	return t, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// Mock mailer recording every send.
type sentMail struct {
	to      string
	subject string
	body    string
}

type mockMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	resolver, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return engine.New(resolver)
}
