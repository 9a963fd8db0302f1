package engine

import (
	"time"

	"decidr/internal/model"
)

const (
	urgentWindow = 24 * time.Hour
	soonWindow   = 72 * time.Hour
)

// DerivePriority computes the effective priority of t at now.
//
// very-high set by the user always wins. Otherwise a deadline within 24h
// (including overdue) yields high and within 72h yields medium, overriding
// any lower user setting. Past that window, or with no deadline, the user
// setting applies, defaulting to low.
func DerivePriority(t model.Task, now time.Time) model.Priority {
	if t.UserPriority == model.PriorityVeryHigh {
		return model.PriorityVeryHigh
	}

	if t.Deadline != nil {
		until := t.Deadline.Sub(now)
		switch {
		case until <= urgentWindow:
			return model.PriorityHigh
		case until <= soonWindow:
			return model.PriorityMedium
		}
	}

	if t.UserPriority.IsValid() {
		return t.UserPriority
	}
	return model.PriorityLow
}

// Refresh returns a copy of tasks with Priority recomputed at now.
func Refresh(tasks []model.Task, now time.Time) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		t.Priority = DerivePriority(t, now)
		out[i] = t
	}
	return out
}
