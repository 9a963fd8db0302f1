package engine

import (
	"cmp"
	"slices"
	"time"

	"decidr/internal/model"
)

// Rank returns a new slice holding tasks ordered by what matters most at now.
// Priorities are refreshed first; the input is left untouched.
//
// Order: higher priority weight, then earlier deadline (having one beats
// having none), then less remaining time, then earlier creation. The sort is
// stable, so ranking an already ranked slice reproduces it.
func Rank(tasks []model.Task, now time.Time) []model.Task {
	ranked := Refresh(tasks, now)
	slices.SortStableFunc(ranked, compareTasks)
	return ranked
}

func compareTasks(a, b model.Task) int {
	if c := cmp.Compare(b.Priority.Weight(), a.Priority.Weight()); c != 0 {
		return c
	}
	if c := compareDeadlines(a.Deadline, b.Deadline); c != 0 {
		return c
	}
	if c := cmp.Compare(a.RemainingTime, b.RemainingTime); c != 0 {
		return c
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

func compareDeadlines(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
