package analytics

import (
	"sort"

	"github.com/syedd/creator-analytics-api/internal/models"
)

// AttributionTotals sums the attribution records into one set of funnel counts.
func AttributionTotals(attrs []models.LeadAttribution) models.FunnelTotals {
	var t models.FunnelTotals
	for _, a := range attrs {
		t.TotalViews += a.TotalViews
		t.WebsiteClicks += a.WebsiteClicks
		t.CallsBooked += a.CallsBooked
		t.ShowUps += a.ShowUps
		t.TotalCloses += a.TotalCloses
		t.TotalRevenue += a.TotalRevenue
	}
	return t
}

// RankVideos joins attribution onto videos by video_id and sorts by attributed
// revenue, descending. A video with no attribution record keeps zero revenue
// and calls rather than being an error. The sort is stable: equal-revenue
// videos keep their input order.
func RankVideos(videos []models.YouTubeVideo, attrs []models.LeadAttribution) []models.RankedVideo {
	byID := make(map[string]models.LeadAttribution, len(attrs))
	for _, a := range attrs {
		byID[a.VideoID] = a
	}
	out := make([]models.RankedVideo, 0, len(videos))
	for _, v := range videos {
		a := byID[v.VideoID]
		out = append(out, models.RankedVideo{
			YouTubeVideo: v,
			CallsBooked:  a.CallsBooked,
			TotalCloses:  a.TotalCloses,
			TotalRevenue: a.TotalRevenue,
			ROIPerView:   round(safeDiv(a.TotalRevenue, float64(v.ViewCount)), 2),
			ROIPerLead:   round(safeDiv(a.TotalRevenue, float64(a.CallsBooked)), 0),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue > out[j].TotalRevenue
	})
	return out
}

// TopVideo returns the attribution record with the highest revenue; ties keep
// the first occurrence. ok is false for an empty input.
func TopVideo(attrs []models.LeadAttribution) (models.LeadAttribution, bool) {
	if len(attrs) == 0 {
		return models.LeadAttribution{}, false
	}
	top := attrs[0]
	for _, a := range attrs[1:] {
		if a.TotalRevenue > top.TotalRevenue {
			top = a
		}
	}
	return top, true
}
