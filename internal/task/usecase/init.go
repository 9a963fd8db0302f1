package usecase

import (
	"context"
	"fmt"

	"decidr/internal/engine"
)

// Init loads the persisted snapshot. Edit mode does not survive a restart.
func (uc *implUseCase) Init(ctx context.Context) error {
	tasks, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Init repo.Load: %v", err)
		return err
	}

	for i := range tasks {
		tasks[i].IsEditing = false
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.store.Replace(engine.Refresh(tasks, uc.now())); err != nil {
		return fmt.Errorf("uc.Init: %w", err)
	}

	uc.l.Infof(ctx, "uc.Init: loaded %d tasks", len(tasks))
	return nil
}
