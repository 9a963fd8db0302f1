package usecase

import (
	"context"

	"decidr/internal/engine"
	"decidr/internal/task"
)

// Delete removes a task. There is no tombstone.
func (uc *implUseCase) Delete(ctx context.Context, id string) (task.ListOutput, error) {
	now := uc.now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	prev := uc.store.Snapshot()
	if _, ok := uc.store.Delete(id); !ok {
		return task.ListOutput{}, task.ErrTaskNotFound
	}
	if err := uc.commit(ctx, prev, now); err != nil {
		uc.l.Errorf(ctx, "uc.Delete commit: %v", err)
		return task.ListOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Delete: id=%s", id)
	return task.ListOutput{
		Tasks: engine.Rank(uc.store.Snapshot(), now),
		Now:   now,
	}, nil
}
