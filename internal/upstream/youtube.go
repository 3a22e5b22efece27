// Package upstream holds the clients for the workflow-automation webhooks
// that front the live data sources. Each call returns (data, error) so the
// handler decides the fallback branch explicitly.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/syedd/creator-analytics-api/internal/cache"
	"github.com/syedd/creator-analytics-api/internal/config"
	"github.com/syedd/creator-analytics-api/internal/models"
)

type Client struct {
	fetcher *cache.Fetcher
	cfg     config.Config
	log     *slog.Logger
}

func NewClient(fetcher *cache.Fetcher, cfg config.Config, log *slog.Logger) *Client {
	return &Client{fetcher: fetcher, cfg: cfg, log: log}
}

// FetchVideos POSTs an empty JSON body to the YouTube webhook and normalizes
// whatever shape comes back: an array of video-platform records, a single
// record, or an already-flat payload passed through as-is.
func (c *Client) FetchVideos(ctx context.Context) ([]models.YouTubeVideo, error) {
	raw, err := c.fetcher.FetchJSON(ctx, c.cfg.YouTubeWebhookURL, &cache.Options{
		Method: http.MethodPost,
		Body:   []byte("{}"),
	})
	if err != nil {
		return nil, err
	}
	return c.decodeVideos(raw)
}

func (c *Client) decodeVideos(raw json.RawMessage) ([]models.YouTubeVideo, error) {
	// Some workflow errors come back as 200s with an error marker payload.
	var marker struct {
		Code    *int   `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &marker); err == nil &&
		marker.Code != nil && *marker.Code == 0 && strings.Contains(marker.Message, "Error") {
		return nil, fmt.Errorf("webhook error: %s", marker.Message)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		out := make([]models.YouTubeVideo, 0, len(items))
		for _, item := range items {
			var yt youtubeItem
			if err := json.Unmarshal(item, &yt); err != nil {
				c.log.Warn("dropping undecodable video item", slog.String("err", err.Error()))
				continue
			}
			v, err := transformVideo(yt)
			if err != nil {
				// a per-item transform failure drops only that item
				c.log.Warn("dropping video item", slog.String("video_id", yt.ID), slog.String("err", err.Error()))
				continue
			}
			out = append(out, v)
		}
		return out, nil
	}

	var yt youtubeItem
	if err := json.Unmarshal(raw, &yt); err == nil && yt.Snippet != nil {
		v, err := transformVideo(yt)
		if err != nil {
			return nil, err
		}
		return []models.YouTubeVideo{v}, nil
	}

	// Not the video-platform shape; pass the raw record through.
	c.log.Warn("webhook payload has unexpected shape, passing through")
	var flat models.YouTubeVideo
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	return []models.YouTubeVideo{flat}, nil
}
