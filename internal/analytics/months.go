package analytics

import "github.com/syedd/creator-analytics-api/internal/models"

// BestMonth returns the month with the highest total cash collected. Ties
// keep the first occurrence. ok is false for an empty input.
func BestMonth(months []models.MonthlyRevenue) (models.MonthlyRevenue, bool) {
	if len(months) == 0 {
		return models.MonthlyRevenue{}, false
	}
	best := months[0]
	for _, m := range months[1:] {
		if m.TotalCashCollected > best.TotalCashCollected {
			best = m
		}
	}
	return best, true
}

// WorstMonth is the counterpart of BestMonth for the lowest total.
func WorstMonth(months []models.MonthlyRevenue) (models.MonthlyRevenue, bool) {
	if len(months) == 0 {
		return models.MonthlyRevenue{}, false
	}
	worst := months[0]
	for _, m := range months[1:] {
		if m.TotalCashCollected < worst.TotalCashCollected {
			worst = m
		}
	}
	return worst, true
}

// TotalCloses counts every close (high-ticket and discount, PIF and
// installment) across the given months.
func TotalCloses(months []models.MonthlyRevenue) int {
	total := 0
	for _, m := range months {
		total += m.HighTicketCloses.PIF + m.HighTicketCloses.Installments +
			m.DiscountCloses.PIF + m.DiscountCloses.Installments
	}
	return total
}

// RevenueBreakdown sums the cash and close mix over the given months.
func RevenueBreakdown(months []models.MonthlyRevenue) models.RevenueBreakdown {
	var b models.RevenueBreakdown
	for _, m := range months {
		b.TotalRevenue += m.TotalCashCollected
		b.TotalPIF += m.NewCashCollected.PIF
		b.TotalInstallment += m.NewCashCollected.Installments
		b.HighTicketCloses += m.HighTicketCloses.PIF + m.HighTicketCloses.Installments
		b.DiscountCloses += m.DiscountCloses.PIF + m.DiscountCloses.Installments
	}
	b.PIFShare = round(safeDiv(b.TotalPIF, b.TotalRevenue)*100, 1)
	b.InstallmentShare = round(safeDiv(b.TotalInstallment, b.TotalRevenue)*100, 1)
	return b
}

// RevenueTrend annotates each month with its MoM change; the first month's
// change is 0.
func RevenueTrend(months []models.MonthlyRevenue) []models.TrendPoint {
	out := make([]models.TrendPoint, 0, len(months))
	for i, m := range months {
		change := 0.0
		if i > 0 {
			change = Change(m.TotalCashCollected, months[i-1].TotalCashCollected)
		}
		out = append(out, models.TrendPoint{
			Month:              m.Month,
			TotalCashCollected: m.TotalCashCollected,
			Change:             change,
		})
	}
	return out
}

// MonthlyDeltas compares the latest month against the previous one for the
// headline metrics. With fewer than two months every change is 0.
func MonthlyDeltas(revenue []models.MonthlyRevenue, calls []models.MonthlyCalls) []models.MonthlyDelta {
	var out []models.MonthlyDelta
	if n := len(revenue); n > 0 {
		latest, prev := revenue[n-1], revenue[n-1]
		if n > 1 {
			prev = revenue[n-2]
		}
		out = append(out,
			delta("unique_website_visitors", float64(latest.UniqueWebsiteVisitors), float64(prev.UniqueWebsiteVisitors)),
			delta("total_cash_collected", latest.TotalCashCollected, prev.TotalCashCollected),
		)
	}
	if n := len(calls); n > 0 {
		latest, prev := calls[n-1], calls[n-1]
		if n > 1 {
			prev = calls[n-2]
		}
		out = append(out,
			delta("calls_booked", float64(latest.TotalBooked), float64(prev.TotalBooked)),
			delta("show_ups", float64(latest.ShowUps), float64(prev.ShowUps)),
		)
	}
	return out
}

func delta(metric string, current, previous float64) models.MonthlyDelta {
	return models.MonthlyDelta{Metric: metric, Current: current, Previous: previous, Change: Change(current, previous)}
}

// PeriodAverages derives the per-month and per-unit averages for the period.
func PeriodAverages(revenue []models.MonthlyRevenue, calls []models.MonthlyCalls) models.Averages {
	var totalRevenue float64
	var totalVisitors, totalCalls int
	for _, m := range revenue {
		totalRevenue += m.TotalCashCollected
		totalVisitors += m.UniqueWebsiteVisitors
	}
	for _, c := range calls {
		totalCalls += c.TotalBooked
	}
	return models.Averages{
		MonthlyRevenue:    round(safeDiv(totalRevenue, float64(len(revenue))), 0),
		MonthlyVisitors:   round(safeDiv(float64(totalVisitors), float64(len(revenue))), 0),
		MonthlyCalls:      round(safeDiv(float64(totalCalls), float64(len(calls))), 0),
		RevenuePerVisitor: round(safeDiv(totalRevenue, float64(totalVisitors)), 2),
		RevenuePerCall:    round(safeDiv(totalRevenue, float64(totalCalls)), 0),
	}
}
