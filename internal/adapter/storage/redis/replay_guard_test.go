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

func TestReplayGuard_CheckAndSet_NewSignature(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()
	tenantID := uuid.New()

	ok, err := guard.CheckAndSet(ctx, tenantID, "digest-abc", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "new signature digest should return true")
}

func TestReplayGuard_CheckAndSet_ReplayedSignature(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()
	tenantID := uuid.New()

	ok, err := guard.CheckAndSet(ctx, tenantID, "digest-xyz", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.CheckAndSet(ctx, tenantID, "digest-xyz", 5*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "replayed signature digest should return false")
}

func TestReplayGuard_CheckAndSet_DifferentTenants(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()

	tenantA := uuid.New()
	tenantB := uuid.New()

	okA, err := guard.CheckAndSet(ctx, tenantA, "digest-shared", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, okA)

	okB, err := guard.CheckAndSet(ctx, tenantB, "digest-shared", 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, okB, "same digest under a different tenant should be independent")
}

func TestReplayGuard_CheckAndSet_ExpiredWindow(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewReplayGuard(client)
	ctx := context.Background()
	tenantID := uuid.New()

	ok, err := guard.CheckAndSet(ctx, tenantID, "digest-expire", 1*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = guard.CheckAndSet(ctx, tenantID, "digest-expire", 1*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "digest outside the tolerance window should be accepted again")
}
