package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/bizservices/pkg/config"
)

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
	pingTimeout = 2 * time.Second
)

// RedisClient is the connection behind every EntityCache. A nil
// *RedisClient is a disabled cache: Ping and Close succeed and Enabled
// reports false.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient connects to cfg.RedisURL and pings it. It returns nil, nil
// when cfg.CacheEnabled is false.
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	if !cfg.CacheEnabled {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.RedisPool > 0 {
		opts.PoolSize = cfg.RedisPool
		opts.MinIdleConns = max(1, cfg.RedisPool/5)
	}
	opts.MaxRetries = 3
	opts.DialTimeout = dialTimeout
	opts.ReadTimeout = ioTimeout
	opts.WriteTimeout = ioTimeout
	opts.PoolTimeout = ioTimeout + time.Second

	rc := &RedisClient{client: redis.NewClient(opts)}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		_ = rc.client.Close()
		return nil, err
	}
	return rc, nil
}

// Enabled reports whether r is connected.
func (r *RedisClient) Enabled() bool {
	return r != nil && r.client != nil
}

// Ping checks the connection.
func (r *RedisClient) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *RedisClient) Close() error {
	if !r.Enabled() {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client returns the underlying client, or nil when the cache is disabled.
func (r *RedisClient) Client() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}
