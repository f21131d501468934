package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	key := "intent:abc123"
	value := []byte("shipment")

	require.NoError(t, adapter.Set(ctx, key, value, 10*time.Second))

	got, err := adapter.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestRedisAdapter_GetMiss(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "intent:missing")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisAdapter_TTLExpiry(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "intent:short", []byte("sla"), time.Second))

	_, err := adapter.Get(ctx, "intent:short")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "intent:short")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
