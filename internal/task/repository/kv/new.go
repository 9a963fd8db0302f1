package kv

import (
	"fmt"
	"time"

	"decidr/internal/task/repository"
	"decidr/pkg/datemath"
	"decidr/pkg/kvstore"
	"decidr/pkg/log"
)

type implRepository struct {
	store kvstore.Store
	key   string
	dates *datemath.Parser
	l     log.Logger
	now   func() time.Time
}

// New creates a Repository that keeps the task list as a JSON array in one kv slot.
// dates interprets stored deadlines that carry no zone.
func New(store kvstore.Store, opt repository.Options, dates *datemath.Parser, l log.Logger) repository.Repository {
	if store == nil {
		panic("task/repository/kv: store is required")
	}
	if dates == nil {
		panic("task/repository/kv: date parser is required")
	}
	return &implRepository{
		store: store,
		key:   opt.SlotKey(),
		dates: dates,
		l:     l,
		now:   time.Now,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/kv.%s", method)
}
