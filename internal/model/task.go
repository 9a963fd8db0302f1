package model

import "time"

// Task is a unit of work on the list.
type Task struct {
	ID            string
	Name          string
	RemainingTime int // minutes, always > 0

	// UserPriority is what the user picked. PriorityAuto lets the system decide.
	UserPriority Priority

	// Priority is derived from UserPriority, Deadline and the current time.
	// It is advisory on the stored record; refresh it before reading.
	Priority Priority

	Deadline  *time.Time
	CreatedAt time.Time
	IsEditing bool
}

// HasDeadline reports whether the task carries a deadline.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil
}
