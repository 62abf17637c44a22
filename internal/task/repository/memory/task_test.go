package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task/repository"
	"smart-todo/internal/task/repository/memory"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, nil)

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "write tests"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created task has no ID")
	}
	if created.Status != model.StatusPending {
		t.Errorf("status = %q, want pending default", created.Status)
	}
	if created.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want medium default", created.Priority)
	}

	got, err := repo.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "write tests" {
		t.Errorf("title = %q", got.Title)
	}

	_, err = repo.GetTask(ctx, "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetTask(missing) = %v, want ErrNotFound", err)
	}
}

func TestListFiltersAndPagination(t *testing.T) {
	ctx := context.Background()

	// Fixed, advancing clock for a deterministic order.
	tick := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	repo := memory.New(nopLogger{}, clock)

	for i := 0; i < 3; i++ {
		if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title:  "work task",
			Status: model.StatusPending,
			Tags:   []model.Tag{model.TagWork},
		}); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}
	if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:  "done task",
		Status: model.StatusCompleted,
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	all, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if total != 4 || len(all) != 4 {
		t.Errorf("total = %d len = %d, want 4/4", total, len(all))
	}
	if all[0].Title != "done task" {
		t.Errorf("expected newest first, got %q", all[0].Title)
	}

	work, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{Tag: model.TagWork})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if total != 3 || len(work) != 3 {
		t.Errorf("work filter: total = %d len = %d, want 3/3", total, len(work))
	}

	page, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{Limit: 2, Offset: 3})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if total != 4 || len(page) != 1 {
		t.Errorf("page: total = %d len = %d, want 4/1", total, len(page))
	}

	empty, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{Offset: 10})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if total != 4 || len(empty) != 0 {
		t.Errorf("out-of-range offset: total = %d len = %d, want 4/0", total, len(empty))
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, nil)

	created, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "original"})

	created.Title = "renamed"
	created.Status = model.StatusCompleted
	updated, err := repo.UpdateTask(ctx, created)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != "renamed" || updated.Status != model.StatusCompleted {
		t.Errorf("update not applied: %+v", updated)
	}

	missing := model.Task{ID: "missing"}
	if _, err := repo.UpdateTask(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateTask(missing) = %v, want ErrNotFound", err)
	}

	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := repo.DeleteTask(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
