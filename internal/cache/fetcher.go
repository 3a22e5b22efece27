package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

// Options are the request options that participate in the cache key, so
// distinct methods or bodies map to distinct entries.
type Options struct {
	Method string `json:"method,omitempty"`
	Body   []byte `json:"body,omitempty"`
}

// Fetcher memoizes outbound JSON requests in a Store. A failed attempt is
// never cached, so the next call retries the network. Concurrent misses for
// the same key are coalesced into a single outbound call.
type Fetcher struct {
	store Store
	httpc *http.Client
	log   *slog.Logger
	group singleflight.Group
}

func NewFetcher(store Store, timeout time.Duration, log *slog.Logger) *Fetcher {
	return &Fetcher{
		store: store,
		httpc: &http.Client{Timeout: timeout},
		log:   log,
	}
}

// FetchJSON returns the cached payload for url+opts when a live entry exists,
// otherwise performs the request, validates the body as JSON and caches it.
func (f *Fetcher) FetchJSON(ctx context.Context, url string, opts *Options) (json.RawMessage, error) {
	key := Key(url, opts)
	if payload, ok := f.store.Get(ctx, key); ok {
		hits.Inc()
		f.log.Debug("cache hit", slog.String("url", url))
		return payload, nil
	}
	misses.Inc()
	v, err, _ := f.group.Do(key, func() (any, error) {
		payload, err := f.fetch(ctx, url, opts)
		if err != nil {
			return nil, err
		}
		f.store.Set(ctx, key, payload)
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

func (f *Fetcher) fetch(ctx context.Context, url string, opts *Options) (json.RawMessage, error) {
	if url == "" {
		return nil, errors.New("empty url")
	}
	method := http.MethodGet
	var body io.Reader
	if opts != nil {
		if opts.Method != "" {
			method = opts.Method
		}
		if len(opts.Body) > 0 {
			body = bytes.NewReader(opts.Body)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("non-2xx: %d body=%s", resp.StatusCode, string(b))
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(payload) {
		return nil, errors.New("response body is not valid JSON")
	}
	return payload, nil
}

// Key builds the deterministic cache key for a url+options pair.
func Key(url string, opts *Options) string {
	if opts == nil {
		opts = &Options{}
	}
	b, _ := json.Marshal(opts)
	return url + "-" + string(b)
}
