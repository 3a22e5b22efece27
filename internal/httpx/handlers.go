package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/syedd/creator-analytics-api/internal/analytics"
	"github.com/syedd/creator-analytics-api/internal/assistant"
	"github.com/syedd/creator-analytics-api/internal/cache"
	"github.com/syedd/creator-analytics-api/internal/mockdata"
	"github.com/syedd/creator-analytics-api/internal/models"
	"github.com/syedd/creator-analytics-api/internal/upstream"
)

type Handlers struct {
	log   *slog.Logger
	up    *upstream.Client
	asst  *assistant.Assistant
	store cache.Store
}

// resolveVideos tries the live webhook and degrades to the bundled dataset.
// The fallback is not an error path for callers: they get data either way,
// plus the source tag and the diagnostic message when the webhook failed.
func (h *Handlers) resolveVideos(r *http.Request) ([]models.YouTubeVideo, string, string) {
	videos, err := h.up.FetchVideos(r.Context())
	if err != nil {
		h.log.Warn("youtube webhook failed, serving mock data", slog.String("err", err.Error()))
		return mockdata.YouTubeVideos, models.SourceMock, err.Error()
	}
	return videos, models.SourceWebhook, ""
}

func (h *Handlers) youtubeData(w http.ResponseWriter, r *http.Request) {
	videos, source, errMsg := h.resolveVideos(r)
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: videos, Source: source, Error: errMsg})
}

// monthlyRevenue and monthlyCalls have no live upstream in the current
// deployment; they serve the bundled dataset in the same envelope so clients
// stay source-agnostic.
func (h *Handlers) monthlyRevenue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: mockdata.MonthlyRevenue, Source: models.SourceAPI})
}

func (h *Handlers) monthlyCalls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: mockdata.MonthlyCalls, Source: models.SourceAPI})
}

func (h *Handlers) overview(w http.ResponseWriter, r *http.Request) {
	videos, source, errMsg := h.resolveVideos(r)
	ov := analytics.Overview(videos, mockdata.MonthlyRevenue, mockdata.MonthlyCalls, mockdata.LeadAttribution)
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: ov, Source: source, Error: errMsg})
}

func (h *Handlers) videos(w http.ResponseWriter, r *http.Request) {
	videos, source, errMsg := h.resolveVideos(r)
	ranked := analytics.RankVideos(videos, mockdata.LeadAttribution)
	if limit := atoiDef(r.URL.Query().Get("limit"), 0); limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: ranked, Source: source, Error: errMsg})
}

func (h *Handlers) countries(w http.ResponseWriter, r *http.Request) {
	breakdown := analytics.CountryBreakdown(mockdata.LeadAttribution)
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: breakdown, Source: models.SourceAPI})
}

func (h *Handlers) sales(w http.ResponseWriter, r *http.Request) {
	report := models.SalesReport{
		Breakdown: analytics.RevenueBreakdown(mockdata.MonthlyRevenue),
		Trend:     analytics.RevenueTrend(mockdata.MonthlyRevenue),
		Products:  mockdata.Products,
	}
	if best, ok := analytics.BestMonth(mockdata.MonthlyRevenue); ok {
		report.BestMonth = &best
	}
	if worst, ok := analytics.WorstMonth(mockdata.MonthlyRevenue); ok {
		report.WorstMonth = &worst
	}
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: report, Source: models.SourceAPI})
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query   string `json:"query"`
		Context any    `json:"context,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Response{Success: false, Error: "invalid request body"})
		return
	}
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, models.Response{Success: false, Error: "query is required"})
		return
	}
	reply, err := h.up.Ask(r.Context(), req.Query, req.Context)
	if err != nil {
		h.log.Warn("chat webhook failed, answering locally", slog.String("err", err.Error()))
		writeJSON(w, http.StatusOK, models.Response{Success: true, Data: h.asst.Respond(req.Query), Source: models.SourceMock, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: reply, Source: models.SourceWebhook})
}

func (h *Handlers) aiSummary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page string `json:"page"`
		Data any    `json:"data,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Response{Success: false, Error: "invalid request body"})
		return
	}
	summary, err := h.up.Summarize(r.Context(), req.Page, req.Data)
	if err != nil {
		canned, ok := mockdata.PageSummaries[req.Page]
		if !ok {
			writeJSON(w, http.StatusBadGateway, models.Response{Success: false, Error: err.Error()})
			return
		}
		h.log.Warn("summary webhook failed, serving canned summary", slog.String("page", req.Page), slog.String("err", err.Error()))
		writeJSON(w, http.StatusOK, models.Response{Success: true, Data: map[string]string{"summary": canned}, Source: models.SourceMock, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: map[string]string{"summary": summary}, Source: models.SourceWebhook})
}

func (h *Handlers) cacheStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: h.store.Stats(r.Context())})
}

func (h *Handlers) cacheClear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear(r.Context())
	writeJSON(w, http.StatusOK, models.Response{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

func atoiDef(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
