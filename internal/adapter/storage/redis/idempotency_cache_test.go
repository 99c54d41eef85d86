package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewIdempotencyCache(client)
	ctx := context.Background()
	tenantID := uuid.New()

	key := "create-invoice-req-001"
	value := []byte(`{"invoice_id":"abc","status":"CREATED"}`)

	result, err := cache.Get(ctx, tenantID, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	err = cache.Set(ctx, tenantID, key, value, 24*time.Hour)
	require.NoError(t, err)

	result, err = cache.Get(ctx, tenantID, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewIdempotencyCache(client)
	ctx := context.Background()
	tenantID := uuid.New()

	key := "charge-invoice-req-002"
	value := []byte(`{"data":"test"}`)

	err := cache.Set(ctx, tenantID, key, value, 1*time.Second)
	require.NoError(t, err)

	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, tenantID, key)
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestIdempotencyCache_TenantIsolation(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	tenantA := uuid.New()
	tenantB := uuid.New()
	key := "create-invoice-req-003"

	err := cache.Set(ctx, tenantA, key, []byte("tenant-a-response"), 1*time.Hour)
	require.NoError(t, err)

	result, err := cache.Get(ctx, tenantB, key)
	require.NoError(t, err)
	assert.Nil(t, result, "same idempotency key under a different tenant must not collide")

	result, err = cache.Get(ctx, tenantA, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("tenant-a-response"), result)
}

func TestIdempotencyCache_OverwriteKey(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewIdempotencyCache(client)
	ctx := context.Background()
	tenantID := uuid.New()

	key := "create-invoice-req-004"

	err := cache.Set(ctx, tenantID, key, []byte("first"), 1*time.Hour)
	require.NoError(t, err)

	err = cache.Set(ctx, tenantID, key, []byte("second"), 1*time.Hour)
	require.NoError(t, err)

	result, err := cache.Get(ctx, tenantID, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), result)
}
