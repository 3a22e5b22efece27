package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	YouTubeWebhookURL string
	ChatWebhookURL    string
	SummaryWebhookURL string
	RedisURL          string
	AllowedOrigins    []string
	HTTPTimeout       time.Duration
	CacheTTL          time.Duration
	LogLevel          slog.Level
}

// FromEnv loads .env if present and falls back to process env vars.
func FromEnv() Config {
	_ = godotenv.Load()

	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	ttl := 5 * time.Minute
	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		if d, err := time.ParseDuration(v + "m"); err == nil {
			ttl = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	origins := []string{"*"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}
	return Config{
		Port:              envOr("PORT", "8080"),
		YouTubeWebhookURL: os.Getenv("YOUTUBE_WEBHOOK_URL"),
		ChatWebhookURL:    os.Getenv("CHAT_WEBHOOK_URL"),
		SummaryWebhookURL: os.Getenv("SUMMARY_WEBHOOK_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		AllowedOrigins:    origins,
		HTTPTimeout:       to,
		CacheTTL:          ttl,
		LogLevel:          lvl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
