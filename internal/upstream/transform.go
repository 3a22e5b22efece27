package upstream

import (
	"errors"
	"strconv"
	"time"

	"github.com/syedd/creator-analytics-api/internal/models"
)

// youtubeItem is the nested video-platform API shape the webhook relays.
// It is decoded once at the boundary; everything downstream works with the
// flat models.YouTubeVideo.
type youtubeItem struct {
	ID      string `json:"id"`
	Snippet *struct {
		PublishedAt  string   `json:"publishedAt"`
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		ChannelTitle string   `json:"channelTitle"`
		Tags         []string `json:"tags"`
		Thumbnails   struct {
			Default thumbnail `json:"default"`
			Medium  thumbnail `json:"medium"`
			High    thumbnail `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails *struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics *struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
	Player *struct {
		EmbedHTML string `json:"embedHtml"`
	} `json:"player"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// transformVideo flattens one webhook record, defaulting each missing field
// to a safe placeholder instead of failing the whole record. Only a record
// missing both of its core sections is rejected.
func transformVideo(yt youtubeItem) (models.YouTubeVideo, error) {
	if yt.Snippet == nil || yt.Statistics == nil {
		return models.YouTubeVideo{}, errors.New("missing snippet or statistics")
	}
	v := models.YouTubeVideo{
		VideoID:      coalesce(yt.ID, "unknown"),
		Title:        coalesce(yt.Snippet.Title, "Untitled"),
		ViewCount:    atoiDef(yt.Statistics.ViewCount, 0),
		Likes:        atoiDef(yt.Statistics.LikeCount, 0),
		CommentCount: atoiDef(yt.Statistics.CommentCount, 0),
		PublishedAt:  coalesce(yt.Snippet.PublishedAt, time.Now().UTC().Format(time.RFC3339)),
		Description:  yt.Snippet.Description,
		ChannelTitle: coalesce(yt.Snippet.ChannelTitle, "Unknown Channel"),
		Duration:     "PT0S",
		Tags:         yt.Snippet.Tags,
	}
	// prefer the largest thumbnail available
	switch {
	case yt.Snippet.Thumbnails.High.URL != "":
		v.ThumbnailURL = yt.Snippet.Thumbnails.High.URL
	case yt.Snippet.Thumbnails.Medium.URL != "":
		v.ThumbnailURL = yt.Snippet.Thumbnails.Medium.URL
	default:
		v.ThumbnailURL = yt.Snippet.Thumbnails.Default.URL
	}
	if yt.ContentDetails != nil && yt.ContentDetails.Duration != "" {
		v.Duration = yt.ContentDetails.Duration
	}
	if yt.Player != nil {
		v.EmbedHTML = yt.Player.EmbedHTML
	}
	return v, nil
}

func coalesce(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func atoiDef(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
