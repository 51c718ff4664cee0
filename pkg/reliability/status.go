package reliability

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/errs"
)

// Status classifies a KPI percentage against the configured cutoffs
type Status int

const (
	StatusNoData Status = iota
	StatusGreen
	StatusYellow
	StatusRed
)

// String method for Status enum
func (s Status) String() string {
	switch s {
	case StatusNoData:
		return "NoData"
	case StatusGreen:
		return "Green"
	case StatusYellow:
		return "Yellow"
	case StatusRed:
		return "Red"
	default:
		return "Unknown"
	}
}

// Thresholds holds the traffic-light cutoffs for percentage KPIs.
// They are configuration so deployments can calibrate them, not
// constants baked into the monitor.
type Thresholds struct {
	GreenMin  float64 // percentage at or above which a KPI is green
	YellowMin float64 // percentage at or above which a KPI is yellow
}

// DefaultThresholds matches the usual back-office calibration:
// ≥98 green, 95–97 yellow, <95 red.
func DefaultThresholds() Thresholds {
	return Thresholds{GreenMin: 98, YellowMin: 95}
}

// Validate checks the cutoffs are ordered and within [0, 100]
func (t Thresholds) Validate() error {
	if t.GreenMin < 0 || t.GreenMin > 100 || t.YellowMin < 0 || t.YellowMin > 100 {
		return goerr.New("thresholds must be within [0, 100]",
			goerr.T(errs.ErrTagConfig),
			goerr.V("green_min", t.GreenMin), goerr.V("yellow_min", t.YellowMin))
	}
	if t.YellowMin > t.GreenMin {
		return goerr.New("yellow threshold cannot exceed green threshold",
			goerr.T(errs.ErrTagConfig),
			goerr.V("green_min", t.GreenMin), goerr.V("yellow_min", t.YellowMin))
	}
	return nil
}

// Classify tags a percentage. An undefined ratio means "no data" and is
// reported distinctly; it never counts as red or as a 0% result.
func (t Thresholds) Classify(r entities.Ratio) Status {
	switch {
	case !r.Defined:
		return StatusNoData
	case r.Value >= t.GreenMin:
		return StatusGreen
	case r.Value >= t.YellowMin:
		return StatusYellow
	default:
		return StatusRed
	}
}
