// Package kvstore provides named byte slots. Each value is overwritten as a
// whole; there are no partial writes.
package kvstore

import "context"

// Store is a key-value slot store.
type Store interface {
	// Get returns the value stored under key. found is false when the slot is empty.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set overwrites the slot with value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete clears the slot. Clearing an empty slot is not an error.
	Delete(ctx context.Context, key string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}
