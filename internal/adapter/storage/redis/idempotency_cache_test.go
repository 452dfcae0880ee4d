package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache_MissThenHit(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	val, err := cache.Get(ctx, "wdr-1")
	require.NoError(t, err)
	assert.Nil(t, val)

	payload := []byte(`{"status":"PENDING"}`)
	require.NoError(t, cache.Set(ctx, "wdr-1", payload, time.Minute))

	val, err = cache.Get(ctx, "wdr-1")
	require.NoError(t, err)
	assert.Equal(t, payload, val)
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "wdr-2", []byte("x"), time.Second))
	mr.FastForward(2 * time.Second)

	val, err := cache.Get(ctx, "wdr-2")
	require.NoError(t, err)
	assert.Nil(t, val)
}
