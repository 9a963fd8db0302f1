package usecase

import (
	"context"
	"time"

	"decidr/internal/engine"
	"decidr/internal/model"
	"decidr/internal/task"
)

// Add validates input and appends a new task. ID and CreatedAt are fixed here.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.TaskOutput, error) {
	now := uc.now()

	fields, err := uc.parseFields(input.Name, input.RemainingTime, input.UserPriority, input.Deadline, now)
	if err != nil {
		return task.TaskOutput{}, err
	}

	t := model.Task{
		ID:        uc.newID(),
		CreatedAt: now.Truncate(time.Millisecond), // stored with millisecond precision
	}
	fields.apply(&t)
	t.Priority = engine.DerivePriority(t, now)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	prev := uc.store.Snapshot()
	if err := uc.store.Add(t); err != nil {
		uc.l.Errorf(ctx, "uc.Add store.Add: %v", err)
		return task.TaskOutput{}, err
	}
	if err := uc.commit(ctx, prev, now); err != nil {
		uc.l.Errorf(ctx, "uc.Add commit: %v", err)
		return task.TaskOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Add: id=%s priority=%s", t.ID, t.Priority)
	return task.TaskOutput{
		Task:  t,
		Tasks: engine.Rank(uc.store.Snapshot(), now),
		Now:   now,
	}, nil
}
