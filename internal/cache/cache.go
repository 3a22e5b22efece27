// Package cache provides the short-TTL response cache that wraps outbound
// webhook calls, with pluggable backing stores.
package cache

import (
	"context"
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stats exposes cache size and keys for diagnostics.
type Stats struct {
	Size int      `json:"size"`
	Keys []string `json:"entries"`
}

// Store is the injected backing store for cached payloads. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Set(ctx context.Context, key string, payload json.RawMessage)
	Clear(ctx context.Context)
	Stats(ctx context.Context) Stats
}

var (
	hits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "api_cache_hits_total",
		Help: "Number of outbound fetches served from cache.",
	})
	misses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "api_cache_misses_total",
		Help: "Number of outbound fetches that went to the network.",
	})
)
