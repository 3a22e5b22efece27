package analytics

import "github.com/syedd/creator-analytics-api/internal/models"

// Overview assembles the home-dashboard payload from the four datasets.
// Views come from attribution, visitors and revenue from the monthly revenue
// records, booked calls from the call records and closes from the sales
// records; the funnel chain follows views → visitors → calls → closes.
func Overview(videos []models.YouTubeVideo, revenue []models.MonthlyRevenue, calls []models.MonthlyCalls, attrs []models.LeadAttribution) models.Overview {
	totals := AttributionTotals(attrs)

	var visitors, booked int
	var cash float64
	for _, m := range revenue {
		visitors += m.UniqueWebsiteVisitors
		cash += m.TotalCashCollected
	}
	for _, c := range calls {
		booked += c.TotalBooked
	}
	closes := TotalCloses(revenue)

	ov := models.Overview{
		Totals: totals,
		Rates:  ConversionRates(totals),
		Funnel: BuildFunnel([]StageCount{
			{Stage: "YouTube Views", Value: totals.TotalViews},
			{Stage: "Website Visitors", Value: visitors},
			{Stage: "Calls Booked", Value: booked},
			{Stage: "Sales Closed", Value: closes},
		}),
		Monthly:  MonthlyDeltas(revenue, calls),
		Averages: PeriodAverages(revenue, calls),
	}
	if best, ok := BestMonth(revenue); ok {
		ov.BestMonth = &best
	}
	if len(videos) > 0 {
		if ranked := RankVideos(videos, attrs); len(ranked) > 0 {
			ov.TopVideo = &ranked[0]
		}
	}
	return ov
}
