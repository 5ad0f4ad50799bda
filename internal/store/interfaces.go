package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/slot_storage_mock.go -package=mock

// SlotStorage is a key-addressed medium holding opaque serialized records.
// The editor only ever uses one fixed key; a Put replaces the previous value
// wholesale, and a failed Put leaves the previous value untouched.
type SlotStorage interface {
	// Get returns the value stored under key or [ErrSlotNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	// Put atomically replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying medium.
	Close() error
}
