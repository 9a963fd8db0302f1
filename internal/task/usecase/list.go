package usecase

import (
	"context"

	"decidr/internal/engine"
	"decidr/internal/task"
)

// List returns the ranked list at the current time. Refreshed priorities are
// written back like any render would; a failed write is logged, not returned.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	now := uc.now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.commit(ctx, uc.store.Snapshot(), now); err != nil {
		uc.l.Warnf(ctx, "uc.List commit: %v", err)
	}

	return task.ListOutput{
		Tasks: engine.Rank(uc.store.Snapshot(), now),
		Now:   now,
	}, nil
}
