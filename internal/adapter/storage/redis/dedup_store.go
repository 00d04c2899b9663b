package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupStore implements ports.DedupStore using Redis SET NX. Dispatch ticks
// from overlapping triggers race on the same idempotency key; exactly one
// caller wins the set and delivers.
type DedupStore struct {
	client *goredis.Client
	prefix string
}

// NewDedupStore creates a new Redis-backed dedup store.
func NewDedupStore(client *goredis.Client) *DedupStore {
	return &DedupStore{
		client: client,
		prefix: "dispatch:",
	}
}

// CheckAndSet atomically claims the idempotency key, setting it if absent.
// Returns true when this caller owns the key (proceed with delivery), false
// when another caller already claimed it within the TTL window.
func (s *DedupStore) CheckAndSet(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — a concurrent tick claimed it first
			return false, nil
		}
		return false, fmt.Errorf("redis dedup check: %w", err)
	}
	return result == "OK", nil
}
