package task

import (
	"time"

	"decidr/internal/model"
)

// AddInput carries the fields of a new task. UserPriority and Deadline may be
// empty, meaning auto priority and no deadline.
type AddInput struct {
	Name          string
	RemainingTime int
	UserPriority  string
	Deadline      string
}

// SaveEditInput replaces every editable field of the task with the given ID.
type SaveEditInput struct {
	ID            string
	Name          string
	RemainingTime int
	UserPriority  string
	Deadline      string
}

type SuggestInput struct {
	AvailableMinutes int
	Mode             string
}

// NoMatchReason explains an empty suggestion.
type NoMatchReason string

const (
	NoMatchNone       NoMatchReason = ""
	NoMatchNoTasks    NoMatchReason = "no_tasks"
	NoMatchNoTaskFits NoMatchReason = "no_task_fits"
)

// ListOutput is the ranked list at Now.
type ListOutput struct {
	Tasks []model.Task
	Now   time.Time
}

// TaskOutput is the task an event acted on plus the ranked list after it.
type TaskOutput struct {
	Task  model.Task
	Tasks []model.Task
	Now   time.Time
}

// SuggestOutput holds the pick. Task is nil when Reason is set.
type SuggestOutput struct {
	Task   *model.Task
	Reason NoMatchReason
	Mode   model.Mode
	Now    time.Time
}
