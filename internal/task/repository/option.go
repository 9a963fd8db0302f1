package repository

// DefaultKey is the slot the task list lives under.
const DefaultKey = "decidr_tasks"

// Options configures a snapshot repository.
type Options struct {
	// Key names the slot. Empty means DefaultKey.
	Key string
}

// SlotKey returns the configured key or DefaultKey.
func (o Options) SlotKey() string {
	if o.Key == "" {
		return DefaultKey
	}
	return o.Key
}
