package task

import "errors"

// Validation errors. The operation is aborted and no state changes.
var (
	ErrEmptyName               = errors.New("task name is required")
	ErrInvalidRemainingTime    = errors.New("remaining time must be a positive number of minutes")
	ErrInvalidPriority         = errors.New("priority must be one of very-high, high, medium, low or empty for auto")
	ErrInvalidDeadline         = errors.New("deadline is not a recognized date")
	ErrInvalidAvailableMinutes = errors.New("available minutes must be positive")
	ErrInvalidMode             = errors.New("mode must be finishable or strategic")
)

var ErrTaskNotFound = errors.New("task not found")
