package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis as the
// fast path in front of the idempotency-record table (spec C3). Keys are
// tenant-scoped since the idempotency-key space is per-tenant.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: "idempotency:",
	}
}

func (c *IdempotencyCache) cacheKey(tenantID uuid.UUID, key string) string {
	return c.prefix + tenantID.String() + ":" + key
}

// Get retrieves a cached response by idempotency key.
// Returns nil, nil if the key does not exist.
func (c *IdempotencyCache) Get(ctx context.Context, tenantID uuid.UUID, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.cacheKey(tenantID, key)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

// Set stores a response in the idempotency cache with TTL.
func (c *IdempotencyCache) Set(ctx context.Context, tenantID uuid.UUID, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.cacheKey(tenantID, key), value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}
