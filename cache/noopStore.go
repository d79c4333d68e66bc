package cache

import (
	"context"
	"time"
)

// NoopFieldStore is used when the cache is disabled (CACHE_DISABLED): every
// read misses and writes go nowhere, so all requests take the record-store
// path.
type NoopFieldStore struct{}

func NewNoopFieldStore() *NoopFieldStore { return &NoopFieldStore{} }

func (NoopFieldStore) SetFields(ctx context.Context, key string, fields map[string]string) error {
	return nil
}

func (NoopFieldStore) GetField(ctx context.Context, key string, field string) (string, bool, error) {
	return "", false, nil
}

func (NoopFieldStore) GetAllFields(ctx context.Context, key string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (NoopFieldStore) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (NoopFieldStore) Delete(ctx context.Context, key string) error { return nil }
