package financial

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// SupplierMetrics holds the financial performance of one supplier
type SupplierMetrics struct {
	SupplierID   entities.SupplierID
	SupplierName string
	SupplierType string
	Rating       float64

	NumOrders      int
	TotalPurchases decimal.Decimal
	TotalSales     decimal.Decimal
	TotalMargin    decimal.Decimal
	AvgOrderValue  decimal.Decimal // mean purchase amount per order
	AvgMarginPct   entities.Ratio  // mean over orders with defined margins
	PctPurchases   entities.Ratio  // share of total purchase spend
}

// ComputeSupplierMetrics aggregates financial performance per supplier,
// sorted by purchase spend descending. Suppliers present in the roster
// but absent from the orders are omitted.
func (e *Engine) ComputeSupplierMetrics(
	orders []*entities.PurchaseOrder,
	suppliers []*entities.Supplier,
) []SupplierMetrics {
	roster := make(map[entities.SupplierID]*entities.Supplier, len(suppliers))
	for _, s := range suppliers {
		roster[s.ID] = s
	}

	type tally struct {
		numOrders  int
		purchases  decimal.Decimal
		sales      decimal.Decimal
		margin     decimal.Decimal
		pctSum     float64
		pctSamples int
	}
	tallies := make(map[entities.SupplierID]*tally)

	totalPurchases := decimal.Zero
	for _, order := range orders {
		t, ok := tallies[order.SupplierID]
		if !ok {
			t = &tally{purchases: decimal.Zero, sales: decimal.Zero, margin: decimal.Zero}
			tallies[order.SupplierID] = t
		}

		t.numOrders++
		t.purchases = t.purchases.Add(order.TotalCost)
		t.sales = t.sales.Add(order.SaleAmount)
		t.margin = t.margin.Add(order.Margin())
		totalPurchases = totalPurchases.Add(order.TotalCost)

		if pct, err := MarginPct(order.TotalCost, order.SaleAmount); err == nil {
			t.pctSum += pct
			t.pctSamples++
		}
	}

	metrics := make([]SupplierMetrics, 0, len(tallies))
	for supplierID, t := range tallies {
		m := SupplierMetrics{
			SupplierID:     supplierID,
			NumOrders:      t.numOrders,
			TotalPurchases: t.purchases,
			TotalSales:     t.sales,
			TotalMargin:    t.margin,
			AvgOrderValue:  t.purchases.Div(decimal.NewFromInt(int64(t.numOrders))),
			AvgMarginPct:   entities.RatioOf(t.pctSum, float64(t.pctSamples)),
		}
		if totalPurchases.IsZero() {
			m.PctPurchases = entities.UndefinedRatio()
		} else {
			m.PctPurchases = entities.DefinedRatio(t.purchases.InexactFloat64() / totalPurchases.InexactFloat64() * 100)
		}
		if s, ok := roster[supplierID]; ok {
			m.SupplierName = s.Name
			m.SupplierType = s.Type
			m.Rating = s.Rating
		}
		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if !metrics[i].TotalPurchases.Equal(metrics[j].TotalPurchases) {
			return metrics[i].TotalPurchases.GreaterThan(metrics[j].TotalPurchases)
		}
		return metrics[i].SupplierID < metrics[j].SupplierID
	})
	return metrics
}
