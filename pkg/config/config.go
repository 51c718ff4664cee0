// Package config is the external configuration surface: complexity
// bands, KPI thresholds and HHI cutoffs, all defaulted but overridable
// from a YAML file. Configuration is passed explicitly into each engine
// call. There is no process-wide mutable state.
package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/mvidal/opskpi/pkg/domain/errs"
	"github.com/mvidal/opskpi/pkg/financial"
	"github.com/mvidal/opskpi/pkg/reliability"
	"github.com/mvidal/opskpi/pkg/workload"
)

// BandConfig defines one complexity band. MaxSKUs 0 means open-ended.
type BandConfig struct {
	Name    string  `yaml:"name"`
	MinSKUs int     `yaml:"min_skus"`
	MaxSKUs int     `yaml:"max_skus"`
	Weight  float64 `yaml:"weight"`
}

// ReliabilityConfig holds the traffic-light cutoffs for the 3-KPI monitor
type ReliabilityConfig struct {
	GreenMin  float64 `yaml:"green_min"`
	YellowMin float64 `yaml:"yellow_min"`
}

// ConcentrationConfig holds the HHI classification boundaries
type ConcentrationConfig struct {
	ModerateMin float64 `yaml:"moderate_min"`
	HighMin     float64 `yaml:"high_min"`
}

// MarginConfig holds the margin classification cutoffs and the
// opportunity-scan threshold, all in percentage points
type MarginConfig struct {
	LowPct                  float64 `yaml:"low_pct"`
	HighPct                 float64 `yaml:"high_pct"`
	OpportunityThresholdPct float64 `yaml:"opportunity_threshold_pct"`
}

// Config is the full configuration for the three KPI engines
type Config struct {
	Bands         []BandConfig        `yaml:"bands"`
	Reliability   ReliabilityConfig   `yaml:"reliability"`
	Concentration ConcentrationConfig `yaml:"concentration"`
	Margin        MarginConfig        `yaml:"margin"`
}

// Default returns the standard calibration: four bands weighting SKU
// complexity from 1.0 to 10.0, 98/95 reliability cutoffs, 1500/2500
// HHI bands and 10/20 margin cutoffs with a 15% opportunity threshold.
func Default() *Config {
	return &Config{
		Bands: []BandConfig{
			{Name: "Muy Simple", MinSKUs: 1, MaxSKUs: 5, Weight: 1.0},
			{Name: "Simple", MinSKUs: 6, MaxSKUs: 20, Weight: 2.5},
			{Name: "Moderado", MinSKUs: 21, MaxSKUs: 50, Weight: 5.0},
			{Name: "Complejo", MinSKUs: 51, MaxSKUs: 0, Weight: 10.0},
		},
		Reliability:   ReliabilityConfig{GreenMin: 98, YellowMin: 95},
		Concentration: ConcentrationConfig{ModerateMin: 1500, HighMin: 2500},
		Margin:        MarginConfig{LowPct: 10, HighPct: 20, OpportunityThresholdPct: 15},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged. The result is validated before it is returned, so
// a malformed band table or threshold ordering fails here, before any
// computation starts.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse config file",
				goerr.T(errs.ErrTagConfig), goerr.V("path", path))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate builds every derived configuration value once, surfacing the
// first configuration error
func (c *Config) Validate() error {
	if _, err := c.BandTable(); err != nil {
		return err
	}
	if err := c.Thresholds().Validate(); err != nil {
		return err
	}
	if err := c.Cutoffs().Validate(); err != nil {
		return err
	}
	if c.Margin.LowPct >= c.Margin.HighPct {
		return goerr.New("low margin cutoff must be below high margin cutoff",
			goerr.T(errs.ErrTagConfig),
			goerr.V("low_pct", c.Margin.LowPct), goerr.V("high_pct", c.Margin.HighPct))
	}
	return nil
}

// BandTable builds the validated workload band table
func (c *Config) BandTable() (workload.BandTable, error) {
	bands := make([]workload.Band, 0, len(c.Bands))
	for _, b := range c.Bands {
		bands = append(bands, workload.Band{
			Name:    b.Name,
			MinSKUs: b.MinSKUs,
			MaxSKUs: b.MaxSKUs,
			Weight:  b.Weight,
		})
	}
	return workload.NewBandTable(bands)
}

// Thresholds returns the reliability monitor cutoffs
func (c *Config) Thresholds() reliability.Thresholds {
	return reliability.Thresholds{GreenMin: c.Reliability.GreenMin, YellowMin: c.Reliability.YellowMin}
}

// Cutoffs returns the HHI classification boundaries
func (c *Config) Cutoffs() financial.ConcentrationCutoffs {
	return financial.ConcentrationCutoffs{ModerateMin: c.Concentration.ModerateMin, HighMin: c.Concentration.HighMin}
}
