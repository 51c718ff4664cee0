// Package workload computes complexity-weighted workload per analyst.
//
// The key idea carried over from ticket-count systems: an order with
// 100 SKUs takes far more effort than an order with 1 SKU, but both
// count as "1 ticket". Each order is mapped to a complexity band by its
// SKU count and contributes the band's weight to its analyst's total.
package workload

import (
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// Engine is the workload aggregator. It is stateless: every call is a
// pure function of the input records and the band table.
type Engine struct {
	bands BandTable
}

// New creates a workload engine from a validated band table
func New(bands BandTable) *Engine {
	return &Engine{bands: bands}
}

// AnalystWorkload holds the weighted workload figures for one analyst
type AnalystWorkload struct {
	AnalystID           entities.AnalystID
	AnalystName         string
	TotalOrders         int
	TotalSKUs           int
	WeightedWorkload    float64
	ByBand              map[string]int
	AvgSKUsPerOrder     entities.Ratio
	AvgWeight           entities.Ratio
	ModalBand           string
	SpecializationRatio entities.Ratio // share of orders in the modal band
}

// Balance summarizes how evenly the weighted workload is distributed.
// Analysts with zero orders are excluded from these statistics.
type Balance struct {
	MaxWorkload            float64
	MinWorkload            float64
	MeanWorkload           float64
	StdDevWorkload         float64
	ImbalanceRatio         entities.Ratio // max/min, undefined when min is zero
	CoefficientOfVariation entities.Ratio // stddev/mean*100
}

// BandStats holds the global order distribution for one band
type BandStats struct {
	Band        string
	Weight      float64
	Orders      int
	PctOrders   entities.Ratio
	MeanSKUs    entities.Ratio
	MedianSKUs  entities.Ratio
	MaxSKUs     int
	TotalWeight float64
}

// Report is the full output of one workload aggregation
type Report struct {
	Analysts     []AnalystWorkload
	Balance      Balance
	Distribution []BandStats
}

// ComputeWorkload aggregates weighted workload per analyst. Every
// analyst in the roster appears in the output, including those with
// zero orders; those are reported with zero totals and undefined
// ratios, and skipped by the balance statistics.
func (e *Engine) ComputeWorkload(orders []*entities.PurchaseOrder, analysts []*entities.Analyst) (*Report, error) {
	names := make(map[entities.AnalystID]string, len(analysts))
	for _, a := range analysts {
		names[a.ID] = a.Name
	}

	byAnalyst := make(map[entities.AnalystID]*AnalystWorkload)
	ensure := func(id entities.AnalystID) *AnalystWorkload {
		w, ok := byAnalyst[id]
		if !ok {
			w = &AnalystWorkload{
				AnalystID:   id,
				AnalystName: names[id],
				ByBand:      make(map[string]int),
			}
			byAnalyst[id] = w
		}
		return w
	}
	for _, a := range analysts {
		ensure(a.ID)
	}

	skusByBand := make(map[string][]int)
	for _, order := range orders {
		band, err := e.bands.BandFor(order.NumSKUs)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to band order", goerr.V("order_id", order.ID))
		}

		w := ensure(order.AnalystID)
		w.TotalOrders++
		w.TotalSKUs += order.NumSKUs
		w.WeightedWorkload += band.Weight
		w.ByBand[band.Name]++

		skusByBand[band.Name] = append(skusByBand[band.Name], order.NumSKUs)
	}

	result := make([]AnalystWorkload, 0, len(byAnalyst))
	for _, w := range byAnalyst {
		w.AvgSKUsPerOrder = entities.RatioOf(float64(w.TotalSKUs), float64(w.TotalOrders))
		w.AvgWeight = entities.RatioOf(w.WeightedWorkload, float64(w.TotalOrders))
		w.ModalBand, w.SpecializationRatio = modalBand(w.ByBand, w.TotalOrders)
		result = append(result, *w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AnalystID < result[j].AnalystID })

	return &Report{
		Analysts:     result,
		Balance:      computeBalance(result),
		Distribution: e.distribution(skusByBand, len(orders)),
	}, nil
}

// modalBand returns the band with the most orders and its share of the
// analyst's total. Ties break to the lexicographically smallest name so
// results are deterministic.
func modalBand(byBand map[string]int, totalOrders int) (string, entities.Ratio) {
	if totalOrders == 0 {
		return "", entities.UndefinedRatio()
	}

	var modal string
	var count int
	for name, n := range byBand {
		if n > count || (n == count && (modal == "" || name < modal)) {
			modal, count = name, n
		}
	}
	return modal, entities.RatioOf(float64(count), float64(totalOrders))
}

func computeBalance(analysts []AnalystWorkload) Balance {
	var loads []float64
	for _, w := range analysts {
		if w.TotalOrders > 0 {
			loads = append(loads, w.WeightedWorkload)
		}
	}
	if len(loads) == 0 {
		return Balance{
			ImbalanceRatio:         entities.UndefinedRatio(),
			CoefficientOfVariation: entities.UndefinedRatio(),
		}
	}

	minLoad, maxLoad, sum := loads[0], loads[0], 0.0
	for _, l := range loads {
		if l < minLoad {
			minLoad = l
		}
		if l > maxLoad {
			maxLoad = l
		}
		sum += l
	}
	mean := sum / float64(len(loads))

	var sqSum float64
	for _, l := range loads {
		sqSum += (l - mean) * (l - mean)
	}
	stdDev := math.Sqrt(sqSum / float64(len(loads)))

	b := Balance{
		MaxWorkload:    maxLoad,
		MinWorkload:    minLoad,
		MeanWorkload:   mean,
		StdDevWorkload: stdDev,
		ImbalanceRatio: entities.RatioOf(maxLoad, minLoad),
	}
	if mean == 0 {
		b.CoefficientOfVariation = entities.UndefinedRatio()
	} else {
		b.CoefficientOfVariation = entities.DefinedRatio(stdDev / mean * 100)
	}
	return b
}

func (e *Engine) distribution(skusByBand map[string][]int, totalOrders int) []BandStats {
	stats := make([]BandStats, 0, len(e.bands.Bands()))
	for _, band := range e.bands.Bands() {
		counts := skusByBand[band.Name]
		s := BandStats{
			Band:      band.Name,
			Weight:    band.Weight,
			Orders:    len(counts),
			PctOrders: entities.PercentOf(float64(len(counts)), float64(totalOrders)),
		}

		if len(counts) > 0 {
			sum, maxSKUs := 0, counts[0]
			for _, n := range counts {
				sum += n
				if n > maxSKUs {
					maxSKUs = n
				}
			}
			s.MeanSKUs = entities.RatioOf(float64(sum), float64(len(counts)))
			s.MedianSKUs = entities.DefinedRatio(median(counts))
			s.MaxSKUs = maxSKUs
			s.TotalWeight = band.Weight * float64(len(counts))
		} else {
			s.MeanSKUs = entities.UndefinedRatio()
			s.MedianSKUs = entities.UndefinedRatio()
		}

		stats = append(stats, s)
	}
	return stats
}

func median(values []int) float64 {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
