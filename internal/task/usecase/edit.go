package usecase

import (
	"context"

	"decidr/internal/model"
	"decidr/internal/task"
)

// BeginEdit puts a task into edit mode.
func (uc *implUseCase) BeginEdit(ctx context.Context, id string) (task.TaskOutput, error) {
	return uc.updateTask(ctx, "BeginEdit", id, func(t *model.Task) error {
		t.IsEditing = true
		return nil
	})
}

// CancelEdit leaves edit mode without touching any field.
func (uc *implUseCase) CancelEdit(ctx context.Context, id string) (task.TaskOutput, error) {
	return uc.updateTask(ctx, "CancelEdit", id, func(t *model.Task) error {
		t.IsEditing = false
		return nil
	})
}

// SaveEdit replaces the editable fields and leaves edit mode.
// Invalid input is rejected before the task is touched.
func (uc *implUseCase) SaveEdit(ctx context.Context, input task.SaveEditInput) (task.TaskOutput, error) {
	fields, err := uc.parseFields(input.Name, input.RemainingTime, input.UserPriority, input.Deadline, uc.now())
	if err != nil {
		return task.TaskOutput{}, err
	}

	return uc.updateTask(ctx, "SaveEdit", input.ID, func(t *model.Task) error {
		fields.apply(t)
		t.IsEditing = false
		return nil
	})
}
