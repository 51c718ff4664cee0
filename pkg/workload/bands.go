package workload

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/domain/errs"
)

// Band maps a SKU-count range to a complexity weight. MaxSKUs == 0
// means the range is open-ended.
type Band struct {
	Name    string
	MinSKUs int
	MaxSKUs int
	Weight  float64
}

// Contains reports whether numSKUs falls inside the band's range
func (b Band) Contains(numSKUs int) bool {
	if numSKUs < b.MinSKUs {
		return false
	}
	return b.MaxSKUs == 0 || numSKUs <= b.MaxSKUs
}

// BandTable is a validated set of complexity bands partitioning [1, ∞).
// Every SKU count maps to exactly one band.
type BandTable struct {
	bands []Band
}

// NewBandTable validates and builds a band table. The bands must cover
// [1, ∞) with no gaps or overlaps: coverage starts at 1, each band
// starts where the previous one ended, and the last band is open-ended.
// A violation is a configuration error, fatal before computation.
func NewBandTable(bands []Band) (BandTable, error) {
	if len(bands) == 0 {
		return BandTable{}, goerr.New("band table cannot be empty", goerr.T(errs.ErrTagConfig))
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinSKUs < sorted[j].MinSKUs })

	seen := make(map[string]bool, len(sorted))
	for i, band := range sorted {
		if band.Name == "" {
			return BandTable{}, goerr.New("band name cannot be empty", goerr.T(errs.ErrTagConfig))
		}
		if seen[band.Name] {
			return BandTable{}, goerr.New("duplicate band name",
				goerr.T(errs.ErrTagConfig), goerr.V("band", band.Name))
		}
		seen[band.Name] = true

		if band.Weight <= 0 {
			return BandTable{}, goerr.New("band weight must be positive",
				goerr.T(errs.ErrTagConfig), goerr.V("band", band.Name), goerr.V("weight", band.Weight))
		}

		if i == 0 {
			if band.MinSKUs != 1 {
				return BandTable{}, goerr.New("band coverage must start at 1",
					goerr.T(errs.ErrTagConfig), goerr.V("band", band.Name), goerr.V("min_skus", band.MinSKUs))
			}
		} else {
			prev := sorted[i-1]
			if prev.MaxSKUs == 0 {
				return BandTable{}, goerr.New("only the last band may be open-ended",
					goerr.T(errs.ErrTagConfig), goerr.V("band", prev.Name))
			}
			if band.MinSKUs <= prev.MaxSKUs {
				return BandTable{}, goerr.New("band ranges overlap",
					goerr.T(errs.ErrTagConfig), goerr.V("band", band.Name), goerr.V("previous", prev.Name))
			}
			if band.MinSKUs != prev.MaxSKUs+1 {
				return BandTable{}, goerr.New("gap between band ranges",
					goerr.T(errs.ErrTagConfig), goerr.V("band", band.Name), goerr.V("previous", prev.Name))
			}
		}
		if band.MaxSKUs != 0 && band.MaxSKUs < band.MinSKUs {
			return BandTable{}, goerr.New("band range is inverted",
				goerr.T(errs.ErrTagConfig), goerr.V("band", band.Name))
		}
	}

	if last := sorted[len(sorted)-1]; last.MaxSKUs != 0 {
		return BandTable{}, goerr.New("last band must be open-ended to cover [1, ∞)",
			goerr.T(errs.ErrTagConfig), goerr.V("band", last.Name), goerr.V("max_skus", last.MaxSKUs))
	}

	return BandTable{bands: sorted}, nil
}

// BandFor maps a SKU count to its band. The table partitions [1, ∞),
// so every valid count selects exactly one band.
func (t BandTable) BandFor(numSKUs int) (Band, error) {
	if numSKUs < 1 {
		return Band{}, goerr.New("SKU count must be at least 1", goerr.V("num_skus", numSKUs))
	}
	for _, band := range t.bands {
		if band.Contains(numSKUs) {
			return band, nil
		}
	}
	// Unreachable for a table built by NewBandTable.
	return Band{}, goerr.New("no band covers SKU count",
		goerr.T(errs.ErrTagConfig), goerr.V("num_skus", numSKUs))
}

// Bands returns the bands in ascending range order
func (t BandTable) Bands() []Band {
	out := make([]Band, len(t.bands))
	copy(out, t.bands)
	return out
}
