package cache

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchJSONCachesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"n":1}`))
	}))
	defer srv.Close()

	f := NewFetcher(NewMemoryStore(5*time.Minute), 2*time.Second, discardLogger())
	ctx := context.Background()

	first, err := f.FetchJSON(ctx, srv.URL, nil)
	require.NoError(t, err)
	second, err := f.FetchJSON(ctx, srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "cached payload must be byte-identical")
	assert.Equal(t, int32(1), calls.Load(), "second call within TTL must not hit the network")
}

func TestFetchJSONRefetchesAfterExpiry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"n":1}`))
	}))
	defer srv.Close()

	store := NewMemoryStore(5 * time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	f := NewFetcher(store, 2*time.Second, discardLogger())
	ctx := context.Background()

	_, err := f.FetchJSON(ctx, srv.URL, nil)
	require.NoError(t, err)

	current = current.Add(6 * time.Minute)
	_, err = f.FetchJSON(ctx, srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load(), "expired entry must trigger exactly one new call")
}

func TestFetchJSONDistinctOptionsDistinctEntries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := NewFetcher(NewMemoryStore(5*time.Minute), 2*time.Second, discardLogger())
	ctx := context.Background()

	_, err := f.FetchJSON(ctx, srv.URL, nil)
	require.NoError(t, err)
	_, err = f.FetchJSON(ctx, srv.URL, &Options{Method: http.MethodPost, Body: []byte(`{"q":"a"}`)})
	require.NoError(t, err)
	_, err = f.FetchJSON(ctx, srv.URL, &Options{Method: http.MethodPost, Body: []byte(`{"q":"b"}`)})
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls.Load(), "distinct bodies must map to distinct entries")
}

func TestFetchJSONErrorsAreNotCached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewFetcher(NewMemoryStore(5*time.Minute), 2*time.Second, discardLogger())
	ctx := context.Background()

	_, err := f.FetchJSON(ctx, srv.URL, nil)
	require.Error(t, err, "non-2xx must surface as an error")

	payload, err := f.FetchJSON(ctx, srv.URL, nil)
	require.NoError(t, err, "failed attempt must not be cached; next call retries")
	assert.JSONEq(t, `{"ok":true}`, string(payload))
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchJSONRejectsInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	f := NewFetcher(NewMemoryStore(5*time.Minute), 2*time.Second, discardLogger())
	_, err := f.FetchJSON(context.Background(), srv.URL, nil)
	assert.Error(t, err)
}

func TestFetchJSONCoalescesConcurrentMisses(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"n":1}`))
	}))
	defer srv.Close()

	f := NewFetcher(NewMemoryStore(5*time.Minute), 5*time.Second, discardLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.FetchJSON(ctx, srv.URL, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent misses for one key must share a single outbound call")
}

func TestKeyDeterminism(t *testing.T) {
	a := Key("http://x", &Options{Method: "POST", Body: []byte(`{}`)})
	b := Key("http://x", &Options{Method: "POST", Body: []byte(`{}`)})
	c := Key("http://x", nil)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
