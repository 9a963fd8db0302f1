package model

// Mode is how the suggestion engine picks a task.
type Mode string

const (
	// ModeFinishable picks the best-ranked task that fits the available time.
	ModeFinishable Mode = "finishable"
	// ModeStrategic picks the best-ranked task regardless of time.
	ModeStrategic Mode = "strategic"
)

// ParseMode validates a decision mode string.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeFinishable, ModeStrategic:
		return m, true
	default:
		return "", false
	}
}
