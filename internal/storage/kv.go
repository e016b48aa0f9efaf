// Package storage provides the key-value persistence layer for learner state.
package storage

import "context"

// KV is the abstract persistence contract consumed by the progress store.
// Implementations are last-write-wins with no merge logic; callers serialize
// read-modify-write cycles themselves.
type KV interface {
	// Get returns the value for key. The second return is false when the
	// key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteMany removes all given keys.
	DeleteMany(ctx context.Context, keys []string) error
}
