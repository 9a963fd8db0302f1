package engine

import (
	"time"

	"decidr/internal/model"
)

// Suggest picks one task from the ranked view of tasks.
//
// In finishable mode it returns the best-ranked task whose remaining time
// fits availableMinutes. In strategic mode it returns the best-ranked task
// outright. ok is false when nothing qualifies. Callers validate that
// availableMinutes is positive and mode is known; an unknown mode selects
// nothing.
func Suggest(tasks []model.Task, now time.Time, availableMinutes int, mode model.Mode) (model.Task, bool) {
	ranked := Rank(tasks, now)

	switch mode {
	case model.ModeStrategic:
		if len(ranked) == 0 {
			return model.Task{}, false
		}
		return ranked[0], true
	case model.ModeFinishable:
		for _, t := range ranked {
			if t.RemainingTime <= availableMinutes {
				return t, true
			}
		}
	}
	return model.Task{}, false
}
