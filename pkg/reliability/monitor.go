// Package reliability implements the 3-KPI operational monitor.
//
// Exactly three KPIs are produced, each computable from records with
// guaranteed 100% completeness: volume (direct count), completion
// (completed/assigned) and quality (error-free share). The monitor
// never reads processing durations, sampled data or survey scores.
package reliability

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// Monitor computes the three reliability KPIs per analyst per period.
// Stateless: each call is a pure function of the input records.
type Monitor struct {
	thresholds Thresholds
}

// New creates a monitor, validating the thresholds before any
// computation can run
func New(thresholds Thresholds) (*Monitor, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid reliability thresholds")
	}
	return &Monitor{thresholds: thresholds}, nil
}

// AnalystKPIs holds the three KPIs for one analyst in one period
type AnalystKPIs struct {
	AnalystID entities.AnalystID
	Volume    int // records attributed in the period, no upper bound

	Completion       entities.Ratio // completed/assigned×100, undefined when nothing was assigned
	CompletionStatus Status

	Quality       entities.Ratio // error-free share ×100, undefined when volume is zero
	QualityStatus Status
}

// PeriodReport is the monitor output for one ISO week
type PeriodReport struct {
	Period   entities.Period
	Analysts []AnalystKPIs
}

// ComputePeriod produces the three KPIs per analyst for the given
// period. Invoices outside the period are ignored.
func (m *Monitor) ComputePeriod(invoices []*entities.Invoice, period entities.Period) *PeriodReport {
	type tally struct {
		volume    int
		assigned  int
		completed int
		errors    int
	}
	tallies := make(map[entities.AnalystID]*tally)

	for _, inv := range invoices {
		if inv.Period() != period {
			continue
		}
		t, ok := tallies[inv.AnalystID]
		if !ok {
			t = &tally{}
			tallies[inv.AnalystID] = t
		}

		t.volume++
		if inv.Assigned {
			t.assigned++
		}
		if inv.Completed {
			t.completed++
		}
		if inv.HasError {
			t.errors++
		}
	}

	analysts := make([]AnalystKPIs, 0, len(tallies))
	for analystID, t := range tallies {
		kpis := AnalystKPIs{
			AnalystID:  analystID,
			Volume:     t.volume,
			Completion: entities.PercentOf(float64(t.completed), float64(t.assigned)),
			Quality:    entities.PercentOf(float64(t.volume-t.errors), float64(t.volume)),
		}
		kpis.CompletionStatus = m.thresholds.Classify(kpis.Completion)
		kpis.QualityStatus = m.thresholds.Classify(kpis.Quality)
		analysts = append(analysts, kpis)
	}
	sort.Slice(analysts, func(i, j int) bool { return analysts[i].AnalystID < analysts[j].AnalystID })

	return &PeriodReport{Period: period, Analysts: analysts}
}

// LatestPeriod returns the most recent ISO week present in the data.
// The second return value is false when there are no invoices.
func LatestPeriod(invoices []*entities.Invoice) (entities.Period, bool) {
	var latest entities.Period
	found := false
	for _, inv := range invoices {
		p := inv.Period()
		if !found || latest.Before(p) {
			latest = p
			found = true
		}
	}
	return latest, found
}

// Trend computes per-period reports walking back the given number of
// weeks from the latest period in the data, oldest first. When
// analystID is non-empty, each report is restricted to that analyst.
// Year boundaries are crossed using the ISO calendar.
func (m *Monitor) Trend(invoices []*entities.Invoice, analystID entities.AnalystID, weeks int) []*PeriodReport {
	latest, ok := LatestPeriod(invoices)
	if !ok || weeks <= 0 {
		return nil
	}

	reports := make([]*PeriodReport, 0, weeks)
	period := latest
	for i := 0; i < weeks; i++ {
		report := m.ComputePeriod(invoices, period)
		if analystID != "" {
			var filtered []AnalystKPIs
			for _, kpis := range report.Analysts {
				if kpis.AnalystID == analystID {
					filtered = append(filtered, kpis)
				}
			}
			report.Analysts = filtered
		}
		reports = append(reports, report)
		period = period.Prev()
	}

	// Oldest first for time-series presentation.
	for i, j := 0, len(reports)-1; i < j; i, j = i+1, j-1 {
		reports[i], reports[j] = reports[j], reports[i]
	}
	return reports
}
