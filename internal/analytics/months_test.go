package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedd/creator-analytics-api/internal/mockdata"
	"github.com/syedd/creator-analytics-api/internal/models"
)

func TestBestAndWorstMonth(t *testing.T) {
	best, ok := BestMonth(mockdata.MonthlyRevenue)
	require.True(t, ok)
	assert.Equal(t, "2025-06", best.Month)
	assert.Equal(t, 145200.0, best.TotalCashCollected)

	worst, ok := WorstMonth(mockdata.MonthlyRevenue)
	require.True(t, ok)
	assert.Equal(t, "2025-03", worst.Month)

	_, ok = BestMonth(nil)
	assert.False(t, ok)
}

func TestBestMonthTieKeepsFirstOccurrence(t *testing.T) {
	months := []models.MonthlyRevenue{
		{Month: "2025-01", TotalCashCollected: 100},
		{Month: "2025-02", TotalCashCollected: 100},
	}
	best, ok := BestMonth(months)
	require.True(t, ok)
	assert.Equal(t, "2025-01", best.Month)
}

func TestRevenueBreakdown(t *testing.T) {
	b := RevenueBreakdown(mockdata.MonthlyRevenue)

	assert.Equal(t, 413000.0, b.TotalRevenue)
	assert.Equal(t, 260000.0, b.TotalPIF)
	assert.Equal(t, 81000.0, b.TotalInstallment)
	assert.Equal(t, 44, b.HighTicketCloses)
	assert.Equal(t, 33, b.DiscountCloses)
	assert.InDelta(t, 63.0, b.PIFShare, 0.05)
	assert.InDelta(t, 19.6, b.InstallmentShare, 0.05)
}

func TestRevenueBreakdownEmpty(t *testing.T) {
	b := RevenueBreakdown(nil)
	assert.Zero(t, b.TotalRevenue)
	assert.Zero(t, b.PIFShare, "share of zero revenue is 0, not NaN")
}

func TestRevenueTrend(t *testing.T) {
	trend := RevenueTrend(mockdata.MonthlyRevenue)
	require.Len(t, trend, 4)

	assert.Equal(t, 0.0, trend[0].Change, "first month has no base")
	assert.Equal(t, 63.6, trend[1].Change)
	assert.Equal(t, 48.8, trend[2].Change)
	assert.Equal(t, 12.9, trend[3].Change)
}

func TestMonthlyDeltas(t *testing.T) {
	deltas := MonthlyDeltas(mockdata.MonthlyRevenue, mockdata.MonthlyCalls)
	require.Len(t, deltas, 4)

	byMetric := map[string]models.MonthlyDelta{}
	for _, d := range deltas {
		byMetric[d.Metric] = d
	}

	cash := byMetric["total_cash_collected"]
	assert.Equal(t, 145200.0, cash.Current)
	assert.Equal(t, 128600.0, cash.Previous)
	assert.Equal(t, 12.9, cash.Change)

	calls := byMetric["calls_booked"]
	assert.Equal(t, 74.0, calls.Current)
	assert.Equal(t, 68.0, calls.Previous)
}

func TestMonthlyDeltasSingleMonth(t *testing.T) {
	deltas := MonthlyDeltas(mockdata.MonthlyRevenue[:1], nil)
	require.Len(t, deltas, 2)
	for _, d := range deltas {
		assert.Equal(t, 0.0, d.Change, "one month of data means no delta")
	}
}

func TestPeriodAverages(t *testing.T) {
	avg := PeriodAverages(mockdata.MonthlyRevenue, mockdata.MonthlyCalls)

	assert.Equal(t, 103250.0, avg.MonthlyRevenue)
	assert.Equal(t, 4165.0, avg.MonthlyVisitors)
	assert.Equal(t, 58.0, avg.MonthlyCalls)
	assert.InDelta(t, 24.79, avg.RevenuePerVisitor, 0.01)
	assert.InDelta(t, 1780.0, avg.RevenuePerCall, 0.5)

	assert.Equal(t, models.Averages{}, PeriodAverages(nil, nil), "empty period has defined zero averages")
}
