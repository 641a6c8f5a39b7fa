package ports

import "context"

// KeyValueStore is the durable storage the session layer persists its
// credential keys to. Implementations must keep sequentially issued
// operations in order for a single caller; no multi-key atomicity is
// promised and callers tolerate partial writes.
type KeyValueStore interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
