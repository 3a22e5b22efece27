package analytics

import (
	"sort"

	"github.com/syedd/creator-analytics-api/internal/models"
)

// CountryBreakdown merges the per-country lead counts across all attribution
// records, derives each country's percentage of the total and sorts by count
// descending (name ascending on equal counts, for a deterministic order).
func CountryBreakdown(attrs []models.LeadAttribution) []models.CountryStat {
	merged := make(map[string]int)
	total := 0
	for _, a := range attrs {
		for country, count := range a.Countries {
			merged[country] += count
			total += count
		}
	}
	out := make([]models.CountryStat, 0, len(merged))
	for country, count := range merged {
		out = append(out, models.CountryStat{
			Country:    country,
			Count:      count,
			Percentage: pct(count, total, 1),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Country < out[j].Country
	})
	return out
}
