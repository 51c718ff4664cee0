package financial

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// CategoryMetrics holds the financial performance of one product
// category, derived by joining order lines with the SKU catalog
type CategoryMetrics struct {
	Category      string
	NumOrders     int // distinct orders touching the category
	TotalSales    decimal.Decimal
	PctSales      entities.Ratio
	AvgOrderValue decimal.Decimal
	AvgMarginPct  entities.Ratio // mean margin of the orders touching the category
}

// ComputeCategoryMetrics aggregates sales and margin per product
// category. Lines referencing unknown SKUs fall into "Sin categoría".
func (e *Engine) ComputeCategoryMetrics(
	orders []*entities.PurchaseOrder,
	lines []*entities.OrderLine,
	skus []*entities.SKU,
) []CategoryMetrics {
	categoryBySKU := make(map[entities.SKUCode]string, len(skus))
	for _, s := range skus {
		categoryBySKU[s.Code] = s.Category
	}

	marginByOrder := make(map[entities.OrderID]float64, len(orders))
	for _, order := range orders {
		if pct, err := MarginPct(order.TotalCost, order.SaleAmount); err == nil {
			marginByOrder[order.ID] = pct
		}
	}

	type tally struct {
		orders     map[entities.OrderID]bool
		sales      decimal.Decimal
		pctSum     float64
		pctSamples int
	}
	tallies := make(map[string]*tally)

	totalSales := decimal.Zero
	for _, line := range lines {
		category, ok := categoryBySKU[line.SKU]
		if !ok {
			category = "Sin categoría"
		}
		t, tOK := tallies[category]
		if !tOK {
			t = &tally{orders: make(map[entities.OrderID]bool), sales: decimal.Zero}
			tallies[category] = t
		}

		t.sales = t.sales.Add(line.LineTotal)
		totalSales = totalSales.Add(line.LineTotal)

		if !t.orders[line.OrderID] {
			t.orders[line.OrderID] = true
			if pct, pctOK := marginByOrder[line.OrderID]; pctOK {
				t.pctSum += pct
				t.pctSamples++
			}
		}
	}

	metrics := make([]CategoryMetrics, 0, len(tallies))
	for category, t := range tallies {
		m := CategoryMetrics{
			Category:     category,
			NumOrders:    len(t.orders),
			TotalSales:   t.sales,
			AvgMarginPct: entities.RatioOf(t.pctSum, float64(t.pctSamples)),
		}
		if len(t.orders) > 0 {
			m.AvgOrderValue = t.sales.Div(decimal.NewFromInt(int64(len(t.orders))))
		}
		if totalSales.IsZero() {
			m.PctSales = entities.UndefinedRatio()
		} else {
			m.PctSales = entities.DefinedRatio(t.sales.InexactFloat64() / totalSales.InexactFloat64() * 100)
		}
		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if !metrics[i].TotalSales.Equal(metrics[j].TotalSales) {
			return metrics[i].TotalSales.GreaterThan(metrics[j].TotalSales)
		}
		return metrics[i].Category < metrics[j].Category
	})
	return metrics
}
