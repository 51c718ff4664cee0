package financial

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// MarginMetrics summarizes margins across a set of orders. Orders with
// zero cost cannot have a margin percentage; they are listed in
// UndefinedMarginOrders and excluded from the percentage statistics,
// while their amounts still count toward the totals.
type MarginMetrics struct {
	TotalCost   decimal.Decimal
	TotalSale   decimal.Decimal
	TotalMargin decimal.Decimal

	AvgMarginPct    entities.Ratio
	MedianMarginPct entities.Ratio
	StdDevMarginPct entities.Ratio

	LowMarginOrders  int // margin pct below the configured low cutoff
	HighMarginOrders int // margin pct above the configured high cutoff

	UndefinedMarginOrders []entities.OrderID
}

// ComputeMarginMetrics aggregates margin figures over all orders
func (e *Engine) ComputeMarginMetrics(orders []*entities.PurchaseOrder) *MarginMetrics {
	m := &MarginMetrics{
		TotalCost:   decimal.Zero,
		TotalSale:   decimal.Zero,
		TotalMargin: decimal.Zero,
	}

	var pcts []float64
	for _, order := range orders {
		m.TotalCost = m.TotalCost.Add(order.TotalCost)
		m.TotalSale = m.TotalSale.Add(order.SaleAmount)
		m.TotalMargin = m.TotalMargin.Add(order.Margin())

		pct, err := MarginPct(order.TotalCost, order.SaleAmount)
		if err != nil {
			m.UndefinedMarginOrders = append(m.UndefinedMarginOrders, order.ID)
			continue
		}
		pcts = append(pcts, pct)

		if pct < e.lowMarginPct {
			m.LowMarginOrders++
		}
		if pct > e.highMarginPct {
			m.HighMarginOrders++
		}
	}

	if len(pcts) == 0 {
		m.AvgMarginPct = entities.UndefinedRatio()
		m.MedianMarginPct = entities.UndefinedRatio()
		m.StdDevMarginPct = entities.UndefinedRatio()
		return m
	}

	var sum float64
	for _, pct := range pcts {
		sum += pct
	}
	mean := sum / float64(len(pcts))

	var sqSum float64
	for _, pct := range pcts {
		sqSum += (pct - mean) * (pct - mean)
	}

	m.AvgMarginPct = entities.DefinedRatio(mean)
	m.MedianMarginPct = entities.DefinedRatio(medianFloat(pcts))
	m.StdDevMarginPct = entities.DefinedRatio(math.Sqrt(sqSum / float64(len(pcts))))
	return m
}

// MarginOpportunity is an order whose margin sits under the expected
// threshold, with the margin that closing the gap would recover
type MarginOpportunity struct {
	OrderID                   entities.OrderID
	SupplierID                entities.SupplierID
	TotalCost                 decimal.Decimal
	MarginPct                 float64
	ImprovementPotential      float64 // percentage points below threshold
	PotentialAdditionalMargin decimal.Decimal
}

// FindMarginOpportunities lists orders below the margin threshold,
// sorted by potential additional margin descending. Zero-cost orders
// have no defined margin and are skipped.
func (e *Engine) FindMarginOpportunities(orders []*entities.PurchaseOrder, thresholdPct float64) []MarginOpportunity {
	var opportunities []MarginOpportunity
	for _, order := range orders {
		pct, err := MarginPct(order.TotalCost, order.SaleAmount)
		if err != nil || pct >= thresholdPct {
			continue
		}

		gap := thresholdPct - pct
		opportunities = append(opportunities, MarginOpportunity{
			OrderID:                   order.ID,
			SupplierID:                order.SupplierID,
			TotalCost:                 order.TotalCost,
			MarginPct:                 pct,
			ImprovementPotential:      gap,
			PotentialAdditionalMargin: order.TotalCost.Mul(decimal.NewFromFloat(gap)).Div(decimal.NewFromInt(100)),
		})
	}

	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].PotentialAdditionalMargin.GreaterThan(opportunities[j].PotentialAdditionalMargin)
	})
	return opportunities
}

func medianFloat(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
