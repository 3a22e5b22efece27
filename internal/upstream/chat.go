package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/syedd/creator-analytics-api/internal/cache"
	"github.com/syedd/creator-analytics-api/internal/models"
)

// Ask forwards a data question to the chat webhook. The webhook answers
// either flat ({response}) or nested ({message:{content:{response}}});
// both are accepted.
func (c *Client) Ask(ctx context.Context, query string, extra any) (models.ChatReply, error) {
	body, err := json.Marshal(map[string]any{"query": query, "context": extra})
	if err != nil {
		return models.ChatReply{}, err
	}
	raw, err := c.fetcher.FetchJSON(ctx, c.cfg.ChatWebhookURL, &cache.Options{
		Method: http.MethodPost,
		Body:   body,
	})
	if err != nil {
		return models.ChatReply{}, err
	}

	var payload struct {
		Response string `json:"response"`
		Message  *struct {
			Content struct {
				Response string `json:"response"`
			} `json:"content"`
		} `json:"message"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.ChatReply{}, err
	}
	answer := payload.Response
	if answer == "" && payload.Message != nil {
		answer = payload.Message.Content.Response
	}
	if answer == "" {
		return models.ChatReply{}, errors.New("chat webhook returned no response")
	}
	return models.ChatReply{Response: answer, Suggestions: payload.Suggestions}, nil
}

// Summarize asks the summary webhook for an AI blurb about one dashboard page.
func (c *Client) Summarize(ctx context.Context, page string, data any) (string, error) {
	body, err := json.Marshal(map[string]any{"page": page, "data": data})
	if err != nil {
		return "", err
	}
	raw, err := c.fetcher.FetchJSON(ctx, c.cfg.SummaryWebhookURL, &cache.Options{
		Method: http.MethodPost,
		Body:   body,
	})
	if err != nil {
		return "", err
	}
	var payload struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", err
	}
	if payload.Summary == "" {
		return "", errors.New("summary webhook returned no summary")
	}
	return payload.Summary, nil
}
