package cache

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
)

type entry struct {
	payload  json.RawMessage
	storedAt time.Time
}

// MemoryStore is a process-wide map of cached payloads. An entry is valid iff
// now-storedAt < ttl. Expired entries stay in the map until the same key is
// set again; there is no eviction and no capacity limit, so the map grows for
// the life of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok || s.now().Sub(e.storedAt) >= s.ttl {
		return nil, false
	}
	return e.payload, true
}

func (s *MemoryStore) Set(_ context.Context, key string, payload json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{payload: payload, storedAt: s.now()}
}

func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

func (s *MemoryStore) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Stats{Size: len(s.entries), Keys: keys}
}
