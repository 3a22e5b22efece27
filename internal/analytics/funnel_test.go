package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFunnelDropOffIsRateDelta(t *testing.T) {
	// counts chosen so the rate chain is [100, 60, 40, 10]
	stages := BuildFunnel([]StageCount{
		{Stage: "Views", Value: 1000},
		{Stage: "Visitors", Value: 600},
		{Stage: "Calls", Value: 240},
		{Stage: "Closes", Value: 24},
	})
	require.Len(t, stages, 4)

	rates := []float64{100, 60, 40, 10}
	drops := []float64{0, 40, 20, 30}
	for i, s := range stages {
		assert.Equal(t, rates[i], s.ConversionRate, "stage %d rate", i)
		assert.Equal(t, drops[i], s.DropOff, "drop-off is a delta of consecutive rates, not counts")
	}
}

func TestBuildFunnelZeroStage(t *testing.T) {
	stages := BuildFunnel([]StageCount{
		{Stage: "Views", Value: 0},
		{Stage: "Visitors", Value: 0},
	})
	require.Len(t, stages, 2)
	assert.Equal(t, 100.0, stages[0].ConversionRate)
	assert.Equal(t, 0.0, stages[1].ConversionRate, "zero denominator yields 0, not NaN")
	assert.Equal(t, 100.0, stages[1].DropOff)
}

func TestBuildFunnelEmpty(t *testing.T) {
	assert.Empty(t, BuildFunnel(nil))
}
