package httpx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/syedd/creator-analytics-api/internal/assistant"
	"github.com/syedd/creator-analytics-api/internal/cache"
	"github.com/syedd/creator-analytics-api/internal/config"
	"github.com/syedd/creator-analytics-api/internal/upstream"
	"github.com/syedd/creator-analytics-api/internal/utils"
)

func NewRouter(log *slog.Logger, cfg config.Config, up *upstream.Client, asst *assistant.Assistant, store cache.Store) http.Handler {
	h := &Handlers{log: log, up: up, asst: asst, store: store}

	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.Recoverer(log))
	mux.Use(utils.Metrics)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/api", func(r chi.Router) {
		r.Get("/youtube/data", h.youtubeData)
		r.Post("/youtube/data", h.youtubeData)
		r.Get("/kajabi/monthly-revenue", h.monthlyRevenue)
		r.Get("/cal/monthly-calls", h.monthlyCalls)

		r.Get("/analytics/overview", h.overview)
		r.Get("/analytics/videos", h.videos)
		r.Get("/analytics/countries", h.countries)
		r.Get("/analytics/sales", h.sales)

		r.Post("/chat", h.chat)
		r.Post("/ai-summary", h.aiSummary)

		r.Get("/cache/stats", h.cacheStats)
		r.Post("/cache/clear", h.cacheClear)
	})

	return mux
}
