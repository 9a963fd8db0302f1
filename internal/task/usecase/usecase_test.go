package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"decidr/internal/model"
	"decidr/internal/task"
	"decidr/internal/task/store"
	"decidr/internal/task/usecase"
	"decidr/pkg/datemath"
)

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

type mockRepo struct {
	loaded  []model.Task
	loadErr error
	saveErr error
	saved   [][]model.Task
}

func (m *mockRepo) Load(ctx context.Context) ([]model.Task, error) {
	return m.loaded, m.loadErr
}

func (m *mockRepo) Save(ctx context.Context, tasks []model.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, tasks)
	return nil
}

func (m *mockRepo) last() []model.Task {
	if len(m.saved) == 0 {
		return nil
	}
	return m.saved[len(m.saved)-1]
}

var baseNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uc   task.UseCase
	repo *mockRepo
	now  *time.Time
}

func newFixture(t *testing.T, repo *mockRepo) fixture {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := baseNow
	n := 0
	uc := usecase.New(&mockLogger{}, repo, store.New(), dates,
		func() time.Time { return now },
		func() string { n++; return fmt.Sprintf("t%d", n) },
	)
	if err := uc.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return fixture{uc: uc, repo: repo, now: &now}
}

func names(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   task.AddInput
		wantErr error
	}{
		{"empty name", task.AddInput{Name: "   ", RemainingTime: 10}, task.ErrEmptyName},
		{"zero time", task.AddInput{Name: "a", RemainingTime: 0}, task.ErrInvalidRemainingTime},
		{"negative time", task.AddInput{Name: "a", RemainingTime: -5}, task.ErrInvalidRemainingTime},
		{"bad priority", task.AddInput{Name: "a", RemainingTime: 5, UserPriority: "urgent"}, task.ErrInvalidPriority},
		{"bad deadline", task.AddInput{Name: "a", RemainingTime: 5, Deadline: "someday"}, task.ErrInvalidDeadline},
		{"ok", task.AddInput{Name: "a", RemainingTime: 5}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &mockRepo{})
			_, err := f.uc.Add(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && len(f.repo.saved) != 0 {
				t.Errorf("rejected add must not persist")
			}
		})
	}
}

func TestAdd_DerivesAndPersists(t *testing.T) {
	f := newFixture(t, &mockRepo{})
	ctx := context.Background()

	out, err := f.uc.Add(ctx, task.AddInput{
		Name:          "  report  ",
		RemainingTime: 30,
		UserPriority:  "low",
		Deadline:      "2024-05-01T20:00",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if out.Task.ID != "t1" || out.Task.Name != "report" {
		t.Errorf("task = %+v", out.Task)
	}
	if out.Task.Priority != model.PriorityHigh {
		t.Errorf("priority = %q, want high (deadline within 24h)", out.Task.Priority)
	}
	if out.Task.UserPriority != model.PriorityLow {
		t.Errorf("user priority = %q, want low", out.Task.UserPriority)
	}
	if !out.Task.CreatedAt.Equal(baseNow) {
		t.Errorf("createdAt = %v", out.Task.CreatedAt)
	}
	if got := f.repo.last(); len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("saved = %+v", got)
	}
}

func TestList_RanksAndRefreshes(t *testing.T) {
	deadline := baseNow.Add(48 * time.Hour)
	repo := &mockRepo{loaded: []model.Task{
		{ID: "a", Name: "a", RemainingTime: 10, Priority: model.PriorityLow, CreatedAt: baseNow},
		{ID: "b", Name: "b", RemainingTime: 10, Priority: model.PriorityLow, Deadline: &deadline, CreatedAt: baseNow, IsEditing: true},
	}}
	f := newFixture(t, repo)
	ctx := context.Background()

	out, err := f.uc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := names(out.Tasks); got[0] != "b" || got[1] != "a" {
		t.Fatalf("order = %v", got)
	}
	if out.Tasks[0].Priority != model.PriorityMedium {
		t.Errorf("b priority = %q, want medium", out.Tasks[0].Priority)
	}
	if out.Tasks[0].IsEditing {
		t.Errorf("edit mode must not survive Init")
	}

	// A day later the same deadline escalates without any user event.
	*f.now = baseNow.Add(25 * time.Hour)
	out, _ = f.uc.List(ctx)
	if out.Tasks[0].Priority != model.PriorityHigh {
		t.Errorf("b priority after 25h = %q, want high", out.Tasks[0].Priority)
	}
	if saved := f.repo.last(); saved == nil || saved[1].Priority != model.PriorityHigh {
		t.Errorf("refreshed priority not persisted: %+v", saved)
	}
}

func TestList_SaveFailureIsNotFatal(t *testing.T) {
	repo := &mockRepo{loaded: []model.Task{{ID: "a", Name: "a", RemainingTime: 1, CreatedAt: baseNow}}}
	f := newFixture(t, repo)
	repo.saveErr = errors.New("quota")

	out, err := f.uc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Errorf("tasks = %v", names(out.Tasks))
	}
}

func TestEditFlow(t *testing.T) {
	f := newFixture(t, &mockRepo{})
	ctx := context.Background()

	add, _ := f.uc.Add(ctx, task.AddInput{Name: "draft", RemainingTime: 20, Deadline: "2024-05-02"})
	id := add.Task.ID

	out, err := f.uc.BeginEdit(ctx, id)
	if err != nil || !out.Task.IsEditing {
		t.Fatalf("BeginEdit = %+v, %v", out.Task, err)
	}

	out, err = f.uc.CancelEdit(ctx, id)
	if err != nil || out.Task.IsEditing || out.Task.Name != "draft" {
		t.Fatalf("CancelEdit = %+v, %v", out.Task, err)
	}

	_, _ = f.uc.BeginEdit(ctx, id)
	out, err = f.uc.SaveEdit(ctx, task.SaveEditInput{
		ID:            id,
		Name:          "final",
		RemainingTime: 5,
		UserPriority:  "very-high",
	})
	if err != nil {
		t.Fatalf("SaveEdit: %v", err)
	}
	if out.Task.Name != "final" || out.Task.RemainingTime != 5 || out.Task.IsEditing {
		t.Errorf("saved task = %+v", out.Task)
	}
	if out.Task.HasDeadline() {
		t.Errorf("empty deadline should clear it")
	}
	if out.Task.Priority != model.PriorityVeryHigh {
		t.Errorf("priority = %q, want very-high", out.Task.Priority)
	}
	if out.Task.ID != id || !out.Task.CreatedAt.Equal(add.Task.CreatedAt) {
		t.Errorf("identity changed: %+v", out.Task)
	}
}

func TestSaveEdit_InvalidLeavesTaskUntouched(t *testing.T) {
	f := newFixture(t, &mockRepo{})
	ctx := context.Background()

	add, _ := f.uc.Add(ctx, task.AddInput{Name: "keep", RemainingTime: 20})
	_, _ = f.uc.BeginEdit(ctx, add.Task.ID)
	saves := len(f.repo.saved)

	_, err := f.uc.SaveEdit(ctx, task.SaveEditInput{ID: add.Task.ID, Name: "", RemainingTime: 5})
	if !errors.Is(err, task.ErrEmptyName) {
		t.Fatalf("SaveEdit error = %v", err)
	}
	if len(f.repo.saved) != saves {
		t.Errorf("invalid edit persisted")
	}

	list, _ := f.uc.List(ctx)
	if list.Tasks[0].Name != "keep" || !list.Tasks[0].IsEditing {
		t.Errorf("task = %+v", list.Tasks[0])
	}
}

func TestUnknownID(t *testing.T) {
	f := newFixture(t, &mockRepo{})
	ctx := context.Background()

	if _, err := f.uc.Delete(ctx, "nope"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Delete error = %v", err)
	}
	if _, err := f.uc.BeginEdit(ctx, "nope"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("BeginEdit error = %v", err)
	}
	if _, err := f.uc.CancelEdit(ctx, "nope"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("CancelEdit error = %v", err)
	}
	_, err := f.uc.SaveEdit(ctx, task.SaveEditInput{ID: "nope", Name: "x", RemainingTime: 1})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("SaveEdit error = %v", err)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t, &mockRepo{})
	ctx := context.Background()

	a, _ := f.uc.Add(ctx, task.AddInput{Name: "a", RemainingTime: 1})
	_, _ = f.uc.Add(ctx, task.AddInput{Name: "b", RemainingTime: 1})

	out, err := f.uc.Delete(ctx, a.Task.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := names(out.Tasks); len(got) != 1 || got[0] != "b" {
		t.Errorf("tasks = %v", got)
	}
	if got := f.repo.last(); len(got) != 1 {
		t.Errorf("saved = %+v", got)
	}
}

func TestMutation_RollsBackOnSaveFailure(t *testing.T) {
	repo := &mockRepo{}
	f := newFixture(t, repo)
	ctx := context.Background()

	a, _ := f.uc.Add(ctx, task.AddInput{Name: "a", RemainingTime: 1})
	repo.saveErr = errors.New("quota")

	if _, err := f.uc.Add(ctx, task.AddInput{Name: "b", RemainingTime: 1}); err == nil {
		t.Fatal("Add should surface save error")
	}
	if _, err := f.uc.Delete(ctx, a.Task.ID); err == nil {
		t.Fatal("Delete should surface save error")
	}
	if _, err := f.uc.BeginEdit(ctx, a.Task.ID); err == nil {
		t.Fatal("BeginEdit should surface save error")
	}

	list, _ := f.uc.List(ctx)
	if got := names(list.Tasks); len(got) != 1 || got[0] != "a" || list.Tasks[0].IsEditing {
		t.Errorf("state after failed saves = %+v", list.Tasks)
	}
}

func TestInit_LoadError(t *testing.T) {
	dates, _ := datemath.NewParser("UTC")
	uc := usecase.New(&mockLogger{}, &mockRepo{loadErr: errors.New("boom")}, store.New(), dates, nil, nil)
	if err := uc.Init(context.Background()); err == nil {
		t.Fatal("Init should fail")
	}
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t, &mockRepo{})
		if _, err := f.uc.Suggest(ctx, task.SuggestInput{AvailableMinutes: 0, Mode: "finishable"}); !errors.Is(err, task.ErrInvalidAvailableMinutes) {
			t.Errorf("error = %v", err)
		}
		if _, err := f.uc.Suggest(ctx, task.SuggestInput{AvailableMinutes: 10, Mode: "random"}); !errors.Is(err, task.ErrInvalidMode) {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("no tasks", func(t *testing.T) {
		f := newFixture(t, &mockRepo{})
		out, err := f.uc.Suggest(ctx, task.SuggestInput{AvailableMinutes: 10, Mode: "strategic"})
		if err != nil || out.Task != nil || out.Reason != task.NoMatchNoTasks {
			t.Errorf("out = %+v, err = %v", out, err)
		}
	})

	t.Run("finishable vs strategic", func(t *testing.T) {
		f := newFixture(t, &mockRepo{})
		_, _ = f.uc.Add(ctx, task.AddInput{Name: "big", RemainingTime: 120, UserPriority: "very-high"})
		_, _ = f.uc.Add(ctx, task.AddInput{Name: "small", RemainingTime: 15, UserPriority: "low"})
		saves := len(f.repo.saved)

		out, err := f.uc.Suggest(ctx, task.SuggestInput{AvailableMinutes: 30, Mode: "finishable"})
		if err != nil || out.Task == nil || out.Task.Name != "small" {
			t.Errorf("finishable = %+v, err = %v", out, err)
		}

		out, _ = f.uc.Suggest(ctx, task.SuggestInput{AvailableMinutes: 30, Mode: "strategic"})
		if out.Task == nil || out.Task.Name != "big" || out.Mode != model.ModeStrategic {
			t.Errorf("strategic = %+v", out)
		}

		out, _ = f.uc.Suggest(ctx, task.SuggestInput{AvailableMinutes: 10, Mode: "finishable"})
		if out.Task != nil || out.Reason != task.NoMatchNoTaskFits {
			t.Errorf("nothing fits = %+v", out)
		}

		if len(f.repo.saved) != saves {
			t.Errorf("Suggest must not persist")
		}
	})
}
