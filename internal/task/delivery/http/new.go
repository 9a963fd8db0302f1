package http

import (
	"decidr/internal/task"
	"decidr/pkg/datemath"
	"decidr/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    task.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the task domain.
// dates supplies the location datetime-local fields are rendered in.
func New(l log.Logger, uc task.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
