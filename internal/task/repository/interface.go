package repository

import (
	"context"

	"decidr/internal/model"
)

// Repository persists the whole task list as one snapshot.
type Repository interface {
	// Load returns the persisted tasks in stored order. An empty slot yields an empty list.
	Load(ctx context.Context) ([]model.Task, error)
	// Save overwrites the snapshot with tasks.
	Save(ctx context.Context, tasks []model.Task) error
}
