package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	taskHTTP "decidr/internal/task/delivery/http"
	"decidr/internal/task/repository"
	"decidr/internal/task/repository/kv"
	"decidr/internal/task/store"
	"decidr/internal/task/usecase"
	"decidr/pkg/datemath"
	"decidr/pkg/kvstore"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// ── Helpers ────────────────────────────────────────────────────────────────

type taskBody struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RemainingTime int     `json:"remaining_time"`
	UserPriority  string  `json:"user_priority"`
	Priority      string  `json:"priority"`
	Deadline      *string `json:"deadline"`
	DeadlineLocal *string `json:"deadline_local"`
	IsEditing     bool    `json:"is_editing"`
}

type envelope struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      struct {
		Task   *taskBody  `json:"task"`
		Tasks  []taskBody `json:"tasks"`
		Reason string     `json:"reason"`
		Mode   string     `json:"mode"`
	} `json:"data"`
}

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	l := &mockLogger{}
	repo := kv.New(kvstore.NewMemory(), repository.Options{}, dates, l)
	uc := usecase.New(l, repo, store.New(), dates, func() time.Time { return fixedNow }, nil)
	if err := uc.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	r := gin.New()
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), taskHTTP.New(l, uc, dates))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		wantCode int
	}{
		{"valid", map[string]any{"name": "write", "remaining_time": 30}, http.StatusCreated},
		{"with deadline", map[string]any{"name": "write", "remaining_time": 30, "deadline": "2024-05-01T18:00"}, http.StatusCreated},
		{"missing name", map[string]any{"remaining_time": 30}, http.StatusBadRequest},
		{"blank name", map[string]any{"name": "  ", "remaining_time": 30}, http.StatusBadRequest},
		{"zero time", map[string]any{"name": "x", "remaining_time": 0}, http.StatusBadRequest},
		{"negative time", map[string]any{"name": "x", "remaining_time": -1}, http.StatusBadRequest},
		{"bad priority", map[string]any{"name": "x", "remaining_time": 1, "user_priority": "urgent"}, http.StatusBadRequest},
		{"bad deadline", map[string]any{"name": "x", "remaining_time": 1, "deadline": "whenever"}, http.StatusBadRequest},
		{"not json", "nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t)
			code, _ := do(t, r, http.MethodPost, "/api/v1/tasks", tt.body)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestAdd_ResponseShape(t *testing.T) {
	r := setupRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{
		"name": "ship", "remaining_time": 45, "deadline": "2024-05-01T18:00",
	})
	if code != http.StatusCreated {
		t.Fatalf("code = %d", code)
	}
	got := env.Data.Task
	if got == nil || got.Name != "ship" || got.Priority != "high" || got.UserPriority != "" {
		t.Fatalf("task = %+v", got)
	}
	if got.DeadlineLocal == nil || *got.DeadlineLocal != "2024-05-01T18:00" {
		t.Errorf("deadline_local = %v", got.DeadlineLocal)
	}
	if len(env.Data.Tasks) != 1 {
		t.Errorf("tasks = %d", len(env.Data.Tasks))
	}
}

func TestListOrdering(t *testing.T) {
	r := setupRouter(t)

	do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"name": "low", "remaining_time": 10, "user_priority": "low"})
	do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"name": "top", "remaining_time": 10, "user_priority": "very-high"})
	do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"name": "mid", "remaining_time": 10, "user_priority": "medium"})

	code, env := do(t, r, http.MethodGet, "/api/v1/tasks", nil)
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	want := []string{"top", "mid", "low"}
	if len(env.Data.Tasks) != len(want) {
		t.Fatalf("tasks = %+v", env.Data.Tasks)
	}
	for i, name := range want {
		if env.Data.Tasks[i].Name != name {
			t.Errorf("tasks[%d] = %s, want %s", i, env.Data.Tasks[i].Name, name)
		}
	}
}

func TestEditLifecycle(t *testing.T) {
	r := setupRouter(t)

	_, env := do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"name": "draft", "remaining_time": 10})
	id := env.Data.Task.ID

	code, env := do(t, r, http.MethodPost, "/api/v1/tasks/"+id+"/edit", nil)
	if code != http.StatusOK || !env.Data.Task.IsEditing {
		t.Fatalf("begin edit: code = %d task = %+v", code, env.Data.Task)
	}

	code, env = do(t, r, http.MethodDelete, "/api/v1/tasks/"+id+"/edit", nil)
	if code != http.StatusOK || env.Data.Task.IsEditing {
		t.Fatalf("cancel edit: code = %d task = %+v", code, env.Data.Task)
	}

	code, env = do(t, r, http.MethodPut, "/api/v1/tasks/"+id, map[string]any{
		"name": "final", "remaining_time": 25, "user_priority": "high",
	})
	if code != http.StatusOK {
		t.Fatalf("save edit: code = %d", code)
	}
	if env.Data.Task.Name != "final" || env.Data.Task.UserPriority != "high" || env.Data.Task.IsEditing {
		t.Errorf("saved = %+v", env.Data.Task)
	}

	code, env = do(t, r, http.MethodDelete, "/api/v1/tasks/"+id, nil)
	if code != http.StatusOK || len(env.Data.Tasks) != 0 {
		t.Errorf("delete: code = %d tasks = %+v", code, env.Data.Tasks)
	}
}

func TestUnknownIDIsNotFound(t *testing.T) {
	r := setupRouter(t)

	cases := []struct {
		method, path string
		body         any
	}{
		{http.MethodDelete, "/api/v1/tasks/missing", nil},
		{http.MethodPost, "/api/v1/tasks/missing/edit", nil},
		{http.MethodDelete, "/api/v1/tasks/missing/edit", nil},
		{http.MethodPut, "/api/v1/tasks/missing", map[string]any{"name": "x", "remaining_time": 1}},
	}
	for _, tc := range cases {
		code, env := do(t, r, tc.method, tc.path, tc.body)
		if code != http.StatusNotFound || env.ErrorCode != http.StatusNotFound {
			t.Errorf("%s %s: code = %d error_code = %d", tc.method, tc.path, code, env.ErrorCode)
		}
	}
}

func TestSuggest(t *testing.T) {
	r := setupRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"available_minutes": 30, "mode": "finishable"})
	if code != http.StatusOK || env.Data.Task != nil || env.Data.Reason != "no_tasks" {
		t.Fatalf("empty list: code = %d data = %+v", code, env.Data)
	}

	do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"name": "long", "remaining_time": 90, "user_priority": "very-high"})
	do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"name": "short", "remaining_time": 20})

	_, env = do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"available_minutes": 30, "mode": "finishable"})
	if env.Data.Task == nil || env.Data.Task.Name != "short" {
		t.Errorf("finishable = %+v", env.Data)
	}

	_, env = do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"available_minutes": 30, "mode": "strategic"})
	if env.Data.Task == nil || env.Data.Task.Name != "long" {
		t.Errorf("strategic = %+v", env.Data)
	}

	_, env = do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"available_minutes": 5, "mode": "finishable"})
	if env.Data.Task != nil || env.Data.Reason != "no_task_fits" {
		t.Errorf("nothing fits = %+v", env.Data)
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"available_minutes": 30, "mode": "random"})
	if code != http.StatusBadRequest {
		t.Errorf("bad mode code = %d", code)
	}
	code, _ = do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"available_minutes": -3, "mode": "strategic"})
	if code != http.StatusBadRequest {
		t.Errorf("negative minutes code = %d", code)
	}
}
