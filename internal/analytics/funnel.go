package analytics

import "github.com/syedd/creator-analytics-api/internal/models"

// StageCount is one named raw count fed into BuildFunnel, ordered from the
// widest stage to the narrowest.
type StageCount struct {
	Stage string
	Value int
}

// BuildFunnel turns ordered stage counts into funnel stages. Each stage's
// conversion rate is relative to the immediately preceding stage's count,
// and drop_off is the delta between consecutive conversion rates, not
// between raw counts. Downstream display relies on that exact definition.
func BuildFunnel(stages []StageCount) []models.FunnelStage {
	out := make([]models.FunnelStage, 0, len(stages))
	prevRate := 100.0
	for i, s := range stages {
		rate := 100.0
		dropOff := 0.0
		if i > 0 {
			rate = pct(s.Value, stages[i-1].Value, 2)
			dropOff = round(prevRate-rate, 2)
		}
		out = append(out, models.FunnelStage{
			Stage:          s.Stage,
			Value:          s.Value,
			ConversionRate: rate,
			DropOff:        dropOff,
		})
		prevRate = rate
	}
	return out
}
