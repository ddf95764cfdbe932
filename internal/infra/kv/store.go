// Package kv contains the key-value store adapter backing all persistence.
// The store is a single flat namespace of string keys holding raw string
// values; collection semantics (JSON arrays, read-modify-write) are layered
// on top by the repositories. There is no atomicity across keys.
package kv

import "context"

// Store is the injected storage capability. Implementations must be safe for
// concurrent use within one process; cross-process races on read-modify-write
// sequences are an accepted limitation of the design.
type Store interface {
	// Get returns the raw value under key. The boolean reports presence;
	// an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the raw value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// Backend names accepted by the store factory.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
