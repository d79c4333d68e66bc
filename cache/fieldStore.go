package cache

import (
	"context"
	"time"
)

// FieldStore is the hash-like per-key field storage contract the snapshot
// cache is built on. Implementations must report "key or field absent" via
// the bool/empty-map returns, not as errors.
type FieldStore interface {
	// SetFields writes all fields under key in one operation.
	SetFields(ctx context.Context, key string, fields map[string]string) error
	// GetField reads a single field; the bool is false when the key or
	// field does not exist.
	GetField(ctx context.Context, key string, field string) (string, bool, error)
	// GetAllFields returns every field under key; an empty map means the
	// key does not exist.
	GetAllFields(ctx context.Context, key string) (map[string]string, error)
	// Expire sets the time-to-live on the whole key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}
