package reliability

import "github.com/mvidal/opskpi/pkg/domain/entities"

// TeamSummary aggregates one period report across the whole team and
// flags analysts needing attention.
type TeamSummary struct {
	Period        entities.Period
	TotalAnalysts int
	TotalVolume   int
	AvgVolume     entities.Ratio
	AvgQuality    entities.Ratio // mean over analysts whose quality is defined

	// LowQuality lists analysts whose quality is defined and below the
	// yellow cutoff. LowVolume lists analysts under half the mean volume.
	LowQuality []entities.AnalystID
	LowVolume  []entities.AnalystID
}

// Summarize rolls one period report up to team level
func (m *Monitor) Summarize(report *PeriodReport) TeamSummary {
	summary := TeamSummary{
		Period:        report.Period,
		TotalAnalysts: len(report.Analysts),
	}

	var qualitySum float64
	var qualityCount int
	for _, kpis := range report.Analysts {
		summary.TotalVolume += kpis.Volume
		if kpis.Quality.Defined {
			qualitySum += kpis.Quality.Value
			qualityCount++
		}
	}
	summary.AvgVolume = entities.RatioOf(float64(summary.TotalVolume), float64(len(report.Analysts)))
	summary.AvgQuality = entities.RatioOf(qualitySum, float64(qualityCount))

	for _, kpis := range report.Analysts {
		if kpis.Quality.Defined && kpis.Quality.Value < m.thresholds.YellowMin {
			summary.LowQuality = append(summary.LowQuality, kpis.AnalystID)
		}
		if summary.AvgVolume.Defined && float64(kpis.Volume) < summary.AvgVolume.Value*0.5 {
			summary.LowVolume = append(summary.LowVolume, kpis.AnalystID)
		}
	}

	return summary
}
