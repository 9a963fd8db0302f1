package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"decidr/internal/task/repository"
	"decidr/internal/task/store"
	"decidr/pkg/datemath"
	pkgLog "decidr/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	store *store.Store
	dates *datemath.Parser
	now   func() time.Time
	newID func() string

	// mu serialises mutate-then-persist so snapshots are written in order.
	mu sync.Mutex
}

// New creates a new task UseCase instance.
// A nil clock uses time.Now; a nil newID uses random UUIDs.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	st *store.Store,
	dates *datemath.Parser,
	clock func() time.Time,
	newID func() string,
) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		store: st,
		dates: dates,
		now:   clock,
		newID: newID,
	}
}
