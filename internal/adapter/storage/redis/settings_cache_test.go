package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCache_SetGetInvalidate(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewSettingsCache(client)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "pool_floor")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "pool_floor", "25", 30*time.Second))

	v, ok, err := cache.Get(ctx, "pool_floor")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "25", v)

	require.NoError(t, cache.Invalidate(ctx, "pool_floor"))

	_, ok, err = cache.Get(ctx, "pool_floor")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettingsCache_TTL(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewSettingsCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "loss_limit", "10", time.Second))
	mr.FastForward(2 * time.Second)

	_, ok, err := cache.Get(ctx, "loss_limit")
	require.NoError(t, err)
	assert.False(t, ok)
}
