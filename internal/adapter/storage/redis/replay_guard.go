package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ReplayGuard implements ports.ProcessorReplayGuard using Redis SET NX,
// generalized from the teacher's nonce_store.go. It rejects a webhook
// signature whose (tenant, t, v1) digest has already been consumed within
// the tolerance window, independent of the WebhookRecord event-id dedupe.
type ReplayGuard struct {
	client *goredis.Client
	prefix string
}

// NewReplayGuard creates a new Redis-backed processor replay guard.
func NewReplayGuard(client *goredis.Client) *ReplayGuard {
	return &ReplayGuard{
		client: client,
		prefix: "webhook-sig:",
	}
}

// CheckAndSet atomically checks if a signature digest has been seen,
// recording it if not. Returns true if the digest is new (valid), false
// if it has already been consumed.
func (g *ReplayGuard) CheckAndSet(ctx context.Context, tenantID uuid.UUID, signatureDigest string, ttl time.Duration) (bool, error) {
	key := g.prefix + tenantID.String() + ":" + signatureDigest
	ok, err := g.client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis replay guard check: %w", err)
	}
	return ok, nil
}
