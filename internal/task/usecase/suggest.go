package usecase

import (
	"context"

	"decidr/internal/engine"
	"decidr/internal/model"
	"decidr/internal/task"
)

// Suggest recommends one task for the available time and mode. Nothing is mutated.
func (uc *implUseCase) Suggest(ctx context.Context, input task.SuggestInput) (task.SuggestOutput, error) {
	if input.AvailableMinutes <= 0 {
		return task.SuggestOutput{}, task.ErrInvalidAvailableMinutes
	}
	mode, ok := model.ParseMode(input.Mode)
	if !ok {
		return task.SuggestOutput{}, task.ErrInvalidMode
	}

	now := uc.now()
	tasks := uc.store.Snapshot()

	out := task.SuggestOutput{Mode: mode, Now: now}
	if len(tasks) == 0 {
		out.Reason = task.NoMatchNoTasks
		return out, nil
	}

	picked, found := engine.Suggest(tasks, now, input.AvailableMinutes, mode)
	if !found {
		out.Reason = task.NoMatchNoTaskFits
		return out, nil
	}

	uc.l.Debugf(ctx, "uc.Suggest: mode=%s minutes=%d picked=%s", mode, input.AvailableMinutes, picked.ID)
	out.Task = &picked
	return out, nil
}
