package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/syedd/creator-analytics-api/internal/assistant"
	"github.com/syedd/creator-analytics-api/internal/cache"
	"github.com/syedd/creator-analytics-api/internal/config"
	"github.com/syedd/creator-analytics-api/internal/httpx"
	"github.com/syedd/creator-analytics-api/internal/mockdata"
	"github.com/syedd/creator-analytics-api/internal/upstream"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var store cache.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("bad REDIS_URL", slog.String("err", err.Error()))
			os.Exit(1)
		}
		store = cache.NewRedisStore(redis.NewClient(opts), cfg.CacheTTL)
		logger.Info("using redis cache store")
	} else {
		store = cache.NewMemoryStore(cfg.CacheTTL)
	}

	fetcher := cache.NewFetcher(store, cfg.HTTPTimeout, logger)
	up := upstream.NewClient(fetcher, cfg, logger)
	asst := assistant.New(mockdata.YouTubeVideos, mockdata.MonthlyRevenue, mockdata.LeadAttribution)

	r := httpx.NewRouter(logger, cfg, up, asst, store)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
