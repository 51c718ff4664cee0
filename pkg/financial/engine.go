// Package financial computes margin, transaction-value and supplier
// concentration metrics over purchase orders. All functions are pure:
// input records plus static configuration in, materialized tables out.
package financial

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"

	"github.com/mvidal/opskpi/pkg/domain/errs"
)

// ConcentrationLevel classifies an HHI value
type ConcentrationLevel int

const (
	ConcentrationUnknown ConcentrationLevel = iota
	ConcentrationLow
	ConcentrationModerate
	ConcentrationHigh
)

// String method for ConcentrationLevel enum
func (l ConcentrationLevel) String() string {
	switch l {
	case ConcentrationUnknown:
		return "Unknown"
	case ConcentrationLow:
		return "Low"
	case ConcentrationModerate:
		return "Moderate"
	case ConcentrationHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// ConcentrationCutoffs holds the HHI classification boundaries.
// Configuration, not constants: deployments calibrate them.
type ConcentrationCutoffs struct {
	ModerateMin float64 // HHI at or above which concentration is moderate
	HighMin     float64 // HHI at or above which concentration is high
}

// DefaultConcentrationCutoffs returns the standard antitrust bands:
// <1500 low, 1500–2500 moderate, ≥2500 high.
func DefaultConcentrationCutoffs() ConcentrationCutoffs {
	return ConcentrationCutoffs{ModerateMin: 1500, HighMin: 2500}
}

// Validate checks the cutoffs are positive and ordered
func (c ConcentrationCutoffs) Validate() error {
	if c.ModerateMin <= 0 || c.HighMin <= 0 {
		return goerr.New("concentration cutoffs must be positive",
			goerr.T(errs.ErrTagConfig),
			goerr.V("moderate_min", c.ModerateMin), goerr.V("high_min", c.HighMin))
	}
	if c.ModerateMin >= c.HighMin {
		return goerr.New("moderate cutoff must be below high cutoff",
			goerr.T(errs.ErrTagConfig),
			goerr.V("moderate_min", c.ModerateMin), goerr.V("high_min", c.HighMin))
	}
	return nil
}

// Classify maps an HHI value to its concentration level
func (c ConcentrationCutoffs) Classify(hhi float64) ConcentrationLevel {
	switch {
	case hhi >= c.HighMin:
		return ConcentrationHigh
	case hhi >= c.ModerateMin:
		return ConcentrationModerate
	default:
		return ConcentrationLow
	}
}

// Engine is the financial metrics engine
type Engine struct {
	cutoffs       ConcentrationCutoffs
	lowMarginPct  float64
	highMarginPct float64
}

// New creates a financial engine, validating the configuration before
// any computation can run
func New(cutoffs ConcentrationCutoffs, lowMarginPct, highMarginPct float64) (*Engine, error) {
	if err := cutoffs.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid concentration cutoffs")
	}
	if lowMarginPct >= highMarginPct {
		return nil, goerr.New("low margin cutoff must be below high margin cutoff",
			goerr.T(errs.ErrTagConfig),
			goerr.V("low_margin_pct", lowMarginPct), goerr.V("high_margin_pct", highMarginPct))
	}
	return &Engine{
		cutoffs:       cutoffs,
		lowMarginPct:  lowMarginPct,
		highMarginPct: highMarginPct,
	}, nil
}

// MarginPct computes (sale − cost) / cost × 100. A zero cost makes the
// ratio undefined and is reported as ErrDivisionUndefined, never
// silently zeroed.
func MarginPct(cost, sale decimal.Decimal) (float64, error) {
	if cost.IsZero() {
		return 0, goerr.Wrap(errs.ErrDivisionUndefined, "margin undefined for zero cost",
			goerr.V("sale", sale.String()))
	}
	return sale.Sub(cost).Div(cost).InexactFloat64() * 100, nil
}
