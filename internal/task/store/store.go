// Package store is the in-memory task collection, the source of truth within a session.
package store

import (
	"errors"
	"slices"
	"sync"

	"decidr/internal/model"
)

var (
	ErrDuplicateID = errors.New("task id already exists")
	ErrNotFound    = errors.New("task not found in store")
)

// Store keeps tasks in insertion order.
type Store struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func New() *Store {
	return &Store{}
}

// Replace swaps the whole collection, e.g. after loading a snapshot.
func (s *Store) Replace(tasks []model.Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return ErrDuplicateID
		}
		seen[t.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = slices.Clone(tasks)
	return nil
}

func (s *Store) Add(t model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(t.ID) >= 0 {
		return ErrDuplicateID
	}
	s.tasks = append(s.tasks, t)
	return nil
}

func (s *Store) Get(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

// Update applies fn to a copy of the task and stores the result only when fn succeeds.
// ID and CreatedAt are immutable and are restored if fn changes them.
func (s *Store) Update(id string, fn func(t *model.Task) error) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}

	t := s.tasks[i]
	if err := fn(&t); err != nil {
		return model.Task{}, err
	}
	t.ID = s.tasks[i].ID
	t.CreatedAt = s.tasks[i].CreatedAt
	s.tasks[i] = t
	return t, nil
}

func (s *Store) Delete(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	t := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return t, true
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store) Snapshot() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}
