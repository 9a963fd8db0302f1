package model

// Priority is a task urgency label.
type Priority string

const (
	PriorityAuto     Priority = ""
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityVeryHigh Priority = "very-high"
)

// Weight orders priorities by urgency. Unrecognized labels weigh the same as low.
func (p Priority) Weight() int {
	switch p {
	case PriorityVeryHigh:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// IsValid reports whether p is one of the four concrete labels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityVeryHigh:
		return true
	default:
		return false
	}
}

// ParseUserPriority accepts a concrete label or the empty string (auto).
func ParseUserPriority(s string) (Priority, bool) {
	p := Priority(s)
	if p == PriorityAuto || p.IsValid() {
		return p, true
	}
	return PriorityAuto, false
}

func (p Priority) String() string {
	if p == PriorityAuto {
		return "auto"
	}
	return string(p)
}
