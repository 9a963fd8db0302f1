package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"decidr/internal/model"
	"decidr/internal/task/repository"
)

// Load reads the snapshot. A missing slot is an empty list.
func (r *implRepository) Load(ctx context.Context) ([]model.Task, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	if !found || len(raw) == 0 {
		return []model.Task{}, nil
	}

	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrCorruptSnapshot, err)
	}

	tasks := make([]model.Task, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		t, ok := r.fromRecord(ctx, rec)
		if !ok {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			r.l.Warnf(ctx, "%s: skipping duplicate id %q", r.dsn("Load"), t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save overwrites the slot with the full list.
func (r *implRepository) Save(ctx context.Context, tasks []model.Task) error {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = toRecord(t)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	if err := r.store.Set(ctx, r.key, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}
