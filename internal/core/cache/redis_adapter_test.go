package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter returns an adapter backed by an in-process miniredis.
func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "sigep:plp:1", []byte(`{"remote_id":1}`), 10*time.Second)
	require.NoError(t, err)

	got, err := adapter.Get(ctx, "sigep:plp:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"remote_id":1}`), got)
}

func TestRedisAdapter_GetNotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "non_existent_key")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), "non_existent_key")
}

func TestRedisAdapter_Incr(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	first, err := adapter.Incr(ctx, "sigep:plp:seq")
	require.NoError(t, err)
	second, err := adapter.Incr(ctx, "sigep:plp:seq")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	stored, err := mr.Get("sigep:plp:seq")
	require.NoError(t, err)
	assert.Equal(t, "2", stored)
}

func TestRedisAdapter_Incr_NotInteger(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	require.NoError(t, mr.Set("sigep:plp:seq", "abc"))

	_, err := adapter.Incr(context.Background(), "sigep:plp:seq")
	assert.Error(t, err)
}

func TestRedisAdapter_TTL(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl_test", []byte("expires_soon"), time.Second))

	_, err := adapter.Get(ctx, "ttl_test")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl_test")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, mr := newTestAdapter(t)

	assert.NoError(t, adapter.Ping(context.Background()))

	mr.Close()
	assert.Error(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
