package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/engine"
	"smart-todo/internal/task"
	taskHTTP "smart-todo/internal/task/delivery/http"
	"smart-todo/pkg/response"
)

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

// mockUseCase returns canned outputs; only the hooks a test sets are used.
type mockUseCase struct {
	parseFunc     func(input task.ParseInput) (task.ParseOutput, error)
	detailFunc    func(id string) (task.DetailOutput, error)
	deadlinesFunc func(input task.DeadlineSuggestInput) (task.DeadlineSuggestOutput, error)
}

func (m *mockUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if m.parseFunc != nil {
		return m.parseFunc(input)
	}
	return task.ParseOutput{}, nil
}

func (m *mockUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	return task.CreateOutput{}, nil
}

func (m *mockUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	if m.detailFunc != nil {
		return m.detailFunc(id)
	}
	return task.DetailOutput{}, task.ErrTaskNotFound
}

func (m *mockUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	return task.UpdateOutput{}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error { return nil }

func (m *mockUseCase) SuggestSchedule(ctx context.Context, taskID string) (task.ScheduleSuggestOutput, error) {
	return task.ScheduleSuggestOutput{}, nil
}

func (m *mockUseCase) SuggestDeadlines(ctx context.Context, input task.DeadlineSuggestInput) (task.DeadlineSuggestOutput, error) {
	if m.deadlinesFunc != nil {
		return m.deadlinesFunc(input)
	}
	return task.DeadlineSuggestOutput{}, nil
}

func (m *mockUseCase) SuggestBreakdown(ctx context.Context, input task.BreakdownInput) (task.BreakdownOutput, error) {
	return task.BreakdownOutput{}, nil
}

func (m *mockUseCase) Insights(ctx context.Context) (task.InsightsOutput, error) {
	return task.InsightsOutput{}, nil
}

func (m *mockUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	return task.StatsOutput{}, nil
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := taskHTTP.New(&mockLogger{}, uc)
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func TestParseEndpoint(t *testing.T) {
	t.Run("Missing Body Field", func(t *testing.T) {
		r := newRouter(&mockUseCase{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/parse", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Empty Input From UseCase", func(t *testing.T) {
		uc := &mockUseCase{
			parseFunc: func(input task.ParseInput) (task.ParseOutput, error) {
				return task.ParseOutput{}, task.ErrEmptyInput
			},
		}
		r := newRouter(uc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/parse", strings.NewReader(`{"input":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			parseFunc: func(input task.ParseInput) (task.ParseOutput, error) {
				out := task.ParseOutput{}
				out.Draft.Title = "Finish report"
				out.Draft.Priority = "urgent"
				out.Draft.AISuggested = true
				return out, nil
			},
		}
		r := newRouter(uc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/parse", strings.NewReader(`{"input":"Finish urgent report"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		data, ok := resp.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected data payload: %v", resp.Data)
		}
		if data["title"] != "Finish report" || data["priority"] != "urgent" {
			t.Errorf("payload = %v", data)
		}
	})
}

func TestDetailEndpoint(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		r := newRouter(&mockUseCase{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/missing", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("Found", func(t *testing.T) {
		uc := &mockUseCase{
			detailFunc: func(id string) (task.DetailOutput, error) {
				out := task.DetailOutput{}
				out.Task.ID = id
				out.Task.Title = "read book"
				out.Task.Status = "pending"
				out.Task.Priority = "medium"
				return out, nil
			},
		}
		r := newRouter(uc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), "read book") {
			t.Errorf("body missing task title: %s", w.Body.String())
		}
	})
}

func TestDeadlineSuggestionsEndpoint(t *testing.T) {
	t.Run("Dates Rendered Day Granular", func(t *testing.T) {
		due := time.Date(2024, 5, 4, 15, 30, 0, 0, time.UTC)
		uc := &mockUseCase{
			deadlinesFunc: func(input task.DeadlineSuggestInput) (task.DeadlineSuggestOutput, error) {
				out := task.DeadlineSuggestOutput{}
				out.Suggestions = []engine.DeadlineSuggestion{
					{Date: due, Label: "In 3 days", Reason: "Standard priority task", Confidence: 85},
				}
				return out, nil
			},
		}
		r := newRouter(uc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/deadline-suggestions", strings.NewReader(`{"title":"write report"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		want := `"date":"` + due.Local().Format(response.DateFormat) + `"`
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("body missing %s: %s", want, w.Body.String())
		}
	})
}

func TestCreateEndpointValidation(t *testing.T) {
	r := newRouter(&mockUseCase{})

	t.Run("Invalid Priority", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"title":"x","priority":"blocker"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Invalid Due Date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"title":"x","due_date":"05/02/2024"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
