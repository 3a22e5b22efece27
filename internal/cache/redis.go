package cache

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the cache with Redis so entry lifetime is handled
// server-side and survives process restarts.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *RedisStore) Set(ctx context.Context, key string, payload json.RawMessage) {
	s.rdb.Set(ctx, key, []byte(payload), s.ttl)
}

func (s *RedisStore) Clear(ctx context.Context) {
	s.rdb.FlushDB(ctx)
}

func (s *RedisStore) Stats(ctx context.Context) Stats {
	keys, err := s.rdb.Keys(ctx, "*").Result()
	if err != nil {
		return Stats{}
	}
	sort.Strings(keys)
	return Stats{Size: len(keys), Keys: keys}
}
