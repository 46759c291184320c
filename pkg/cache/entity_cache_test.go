package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type cachedThing struct {
	ID   int64
	Name string
	At   time.Time
}

func TestEntityCache_NilIsEmpty(t *testing.T) {
	c := NewEntityCache[cachedThing](nil, "thing", time.Minute)
	if c != nil {
		t.Fatal("expected nil cache without a redis client")
	}

	ctx := context.Background()
	if _, err := c.Get(ctx, 1); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil from disabled cache, got %v", err)
	}
	if err := c.Set(ctx, 1, &cachedThing{ID: 1}); err != nil {
		t.Fatalf("Set on disabled cache: %v", err)
	}
	if err := c.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete on disabled cache: %v", err)
	}
}

func TestEntityCache_Key(t *testing.T) {
	c := &EntityCache[cachedThing]{prefix: "order"}
	if got := c.Key(42); got != "order:42" {
		t.Fatalf("unexpected key %q", got)
	}
}

// Integration test: skipped unless REDIS_URL is set.
func TestEntityCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(redisConfig(redisURL))
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	c := NewEntityCache[cachedThing](rc, "test-thing", time.Minute)
	want := &cachedThing{ID: 99, Name: "widget", At: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}

	if err := c.Set(ctx, want.ID, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := c.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != want.Name || !got.At.Equal(want.At) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if err := c.Delete(ctx, want.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, want.ID); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil after delete, got %v", err)
	}
}
