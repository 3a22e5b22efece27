package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreGetSet(t *testing.T) {
	s, _ := newRedisStore(t, time.Minute)
	ctx := context.Background()

	_, ok := s.Get(ctx, "missing")
	assert.False(t, ok)

	s.Set(ctx, "k", json.RawMessage(`{"a":1}`))
	payload, ok := s.Get(ctx, "k")
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(payload))
}

func TestRedisStoreTTLExpiry(t *testing.T) {
	s, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	s.Set(ctx, "k", json.RawMessage(`1`))
	_, ok := s.Get(ctx, "k")
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)
	_, ok = s.Get(ctx, "k")
	assert.False(t, ok, "redis must expire the entry server-side")
}

func TestRedisStoreClearAndStats(t *testing.T) {
	s, _ := newRedisStore(t, time.Minute)
	ctx := context.Background()

	s.Set(ctx, "b", json.RawMessage(`1`))
	s.Set(ctx, "a", json.RawMessage(`2`))

	stats := s.Stats(ctx)
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, []string{"a", "b"}, stats.Keys)

	s.Clear(ctx)
	assert.Equal(t, 0, s.Stats(ctx).Size)
}
