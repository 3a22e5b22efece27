// Package analytics holds the pure funnel and KPI calculations. Every
// function is deterministic, side-effect free, guards zero denominators by
// returning 0, and returns zero values for empty inputs.
package analytics

import (
	"math"

	"github.com/syedd/creator-analytics-api/internal/models"
)

// ConversionRates derives the percentage chain from aggregate funnel counts.
func ConversionRates(t models.FunnelTotals) models.ConversionRates {
	return models.ConversionRates{
		ViewToClick:    pct(t.WebsiteClicks, t.TotalViews, 2),
		ClickToCall:    pct(t.CallsBooked, t.WebsiteClicks, 2),
		CallToShow:     pct(t.ShowUps, t.CallsBooked, 2),
		ShowToClose:    pct(t.TotalCloses, t.ShowUps, 2),
		Overall:        pct(t.TotalCloses, t.TotalViews, 4),
		RevenuePerView: round(safeDiv(t.TotalRevenue, float64(t.TotalViews)), 2),
	}
}

// Change is the month-over-month percentage delta, one decimal place.
// Defined as 0 when previous is 0.
func Change(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round((current-previous)/previous*100, 1)
}

func pct(num, den, places int) float64 {
	if den == 0 {
		return 0
	}
	return round(float64(num)/float64(den)*100, places)
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func round(f float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(f*p) / p
}
