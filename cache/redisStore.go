package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFieldStore implements FieldStore over Redis hashes.
type RedisFieldStore struct {
	rdb *redis.Client
}

func NewRedisFieldStore(rdb *redis.Client) *RedisFieldStore {
	return &RedisFieldStore{rdb: rdb}
}

func (s *RedisFieldStore) SetFields(ctx context.Context, key string, fields map[string]string) error {
	values := make(map[string]interface{}, len(fields))
	for field, value := range fields {
		values[field] = value
	}
	return s.rdb.HSet(ctx, key, values).Err()
}

func (s *RedisFieldStore) GetField(ctx context.Context, key string, field string) (string, bool, error) {
	value, err := s.rdb.HGet(ctx, key, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisFieldStore) GetAllFields(ctx context.Context, key string) (map[string]string, error) {
	// HGetAll returns an empty map (no error) for a missing key.
	return s.rdb.HGetAll(ctx, key).Result()
}

func (s *RedisFieldStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return s.rdb.Expire(ctx, key, ttl).Err()
}

func (s *RedisFieldStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
