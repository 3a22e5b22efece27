package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syedd/creator-analytics-api/internal/models"
)

func TestConversionRates(t *testing.T) {
	rates := ConversionRates(models.FunnelTotals{
		TotalViews:    50000,
		WebsiteClicks: 1800,
		CallsBooked:   45,
		ShowUps:       38,
		TotalCloses:   8,
		TotalRevenue:  95000,
	})

	assert.InDelta(t, 3.6, rates.ViewToClick, 0.001)
	assert.InDelta(t, 2.5, rates.ClickToCall, 0.001)
	assert.InDelta(t, 84.44, rates.CallToShow, 0.001)
	assert.InDelta(t, 21.05, rates.ShowToClose, 0.001)
	assert.InDelta(t, 0.016, rates.Overall, 0.0001)
	assert.InDelta(t, 1.9, rates.RevenuePerView, 0.001)
}

func TestConversionRatesZeroDenominators(t *testing.T) {
	rates := ConversionRates(models.FunnelTotals{})

	// a zero denominator must yield a defined 0, never NaN/Inf
	assert.Zero(t, rates.ViewToClick)
	assert.Zero(t, rates.ClickToCall)
	assert.Zero(t, rates.CallToShow)
	assert.Zero(t, rates.ShowToClose)
	assert.Zero(t, rates.Overall)
	assert.Zero(t, rates.RevenuePerView)
}

func TestConversionRatesPartialZeros(t *testing.T) {
	// revenue without views: only revenue_per_view has a zero denominator
	rates := ConversionRates(models.FunnelTotals{
		CallsBooked: 10,
		ShowUps:     5,
		TotalCloses: 1,
	})
	assert.Zero(t, rates.ViewToClick)
	assert.Zero(t, rates.ClickToCall)
	assert.InDelta(t, 50.0, rates.CallToShow, 0.001)
	assert.InDelta(t, 20.0, rates.ShowToClose, 0.001)
}

func TestChange(t *testing.T) {
	assert.Equal(t, 20.0, Change(120, 100))
	assert.Equal(t, -20.0, Change(80, 100))
	assert.Equal(t, 0.0, Change(100, 100))
	assert.Equal(t, 0.0, Change(42, 0), "change against a zero base is defined as 0")
	assert.Equal(t, 0.0, Change(0, 0))
}

func TestChangeRounding(t *testing.T) {
	// June vs May from the bundled revenue dataset
	assert.Equal(t, 12.9, Change(145200, 128600))
}
