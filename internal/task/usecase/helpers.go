package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"decidr/internal/engine"
	"decidr/internal/model"
	"decidr/internal/task"
	"decidr/internal/task/store"
)

// editableFields are the user-controlled parts of a task after validation.
type editableFields struct {
	Name          string
	RemainingTime int
	UserPriority  model.Priority
	Deadline      *time.Time
}

func (uc *implUseCase) parseFields(name string, remaining int, userPriority, deadline string, now time.Time) (editableFields, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return editableFields{}, task.ErrEmptyName
	}
	if remaining <= 0 {
		return editableFields{}, task.ErrInvalidRemainingTime
	}

	p, ok := model.ParseUserPriority(strings.TrimSpace(userPriority))
	if !ok {
		return editableFields{}, task.ErrInvalidPriority
	}

	f := editableFields{
		Name:          name,
		RemainingTime: remaining,
		UserPriority:  p,
	}

	if strings.TrimSpace(deadline) != "" {
		d, err := uc.dates.ParseDeadline(deadline, now)
		if err != nil {
			return editableFields{}, fmt.Errorf("%w: %v", task.ErrInvalidDeadline, err)
		}
		f.Deadline = &d
	}
	return f, nil
}

func (f editableFields) apply(t *model.Task) {
	t.Name = f.Name
	t.RemainingTime = f.RemainingTime
	t.UserPriority = f.UserPriority
	t.Deadline = f.Deadline
}

// commit refreshes every stored priority and persists the snapshot.
// On save failure the store is rolled back to prev. Callers hold uc.mu.
func (uc *implUseCase) commit(ctx context.Context, prev []model.Task, now time.Time) error {
	refreshed := engine.Refresh(uc.store.Snapshot(), now)
	if err := uc.store.Replace(refreshed); err != nil {
		return err
	}

	if err := uc.repo.Save(ctx, refreshed); err != nil {
		if rbErr := uc.store.Replace(prev); rbErr != nil {
			uc.l.Errorf(ctx, "uc.commit rollback: %v", rbErr)
		}
		return err
	}
	return nil
}

// updateTask runs fn on one task and commits; it maps store errors to domain ones.
func (uc *implUseCase) updateTask(ctx context.Context, op, id string, fn func(t *model.Task) error) (task.TaskOutput, error) {
	now := uc.now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	prev := uc.store.Snapshot()
	if _, err := uc.store.Update(id, fn); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return task.TaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.%s store.Update: %v", op, err)
		return task.TaskOutput{}, err
	}

	if err := uc.commit(ctx, prev, now); err != nil {
		uc.l.Errorf(ctx, "uc.%s commit: %v", op, err)
		return task.TaskOutput{}, err
	}

	t, _ := uc.store.Get(id)
	return task.TaskOutput{
		Task:  t,
		Tasks: engine.Rank(uc.store.Snapshot(), now),
		Now:   now,
	}, nil
}
