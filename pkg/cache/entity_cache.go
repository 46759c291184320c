package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// EntityCache is a read-model cache for one aggregate type. Values are stored
// as JSON strings under "{prefix}:{id}" and expire after ttl.
//
// A nil *EntityCache is valid and behaves as an always-empty cache, so
// services can run without Redis.
type EntityCache[T any] struct {
	client *RedisClient
	prefix string
	ttl    time.Duration
}

// NewEntityCache returns an EntityCache for the given key prefix, or nil when r is nil.
func NewEntityCache[T any](r *RedisClient, prefix string, ttl time.Duration) *EntityCache[T] {
	if r == nil {
		return nil
	}
	return &EntityCache[T]{client: r, prefix: prefix, ttl: ttl}
}

// Get returns the cached value for id. Returns redis.Nil when the key does
// not exist, has expired, or the cache is disabled.
func (c *EntityCache[T]) Get(ctx context.Context, id int64) (*T, error) {
	if c == nil {
		return nil, redis.Nil
	}
	raw, err := c.client.Client().Get(ctx, c.Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("cache decode %s: %w", c.Key(id), err)
	}
	return &v, nil
}

// Set stores v under id with the configured TTL.
func (c *EntityCache[T]) Set(ctx context.Context, id int64, v *T) error {
	if c == nil || v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", c.Key(id), err)
	}
	if err := c.client.Client().Set(ctx, c.Key(id), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete evicts id. Evicting a missing key is not an error.
func (c *EntityCache[T]) Delete(ctx context.Context, id int64) error {
	if c == nil {
		return nil
	}
	if err := c.client.Client().Del(ctx, c.Key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Key builds the Redis key: "{prefix}:{id}".
func (c *EntityCache[T]) Key(id int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}
