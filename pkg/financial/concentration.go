package financial

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// SupplierShare is one supplier's slice of total purchase spend
type SupplierShare struct {
	SupplierID entities.SupplierID
	Spend      decimal.Decimal
	SharePct   float64
}

// Concentration measures supplier concentration risk over a scope of
// orders. HHI is the sum of squared percentage market shares: a single
// supplier holding 100% scores 10000, N equal suppliers score 10000/N.
type Concentration struct {
	TotalSuppliers int
	Shares         []SupplierShare // sorted by spend descending
	Top5Pct        entities.Ratio
	HHI            entities.Ratio
	Level          ConcentrationLevel
}

// ComputeConcentration computes supplier spend shares and the HHI for
// the given orders. With no spend at all the index is undefined.
func (e *Engine) ComputeConcentration(orders []*entities.PurchaseOrder) *Concentration {
	spend := make(map[entities.SupplierID]decimal.Decimal)
	for _, order := range orders {
		spend[order.SupplierID] = spend[order.SupplierID].Add(order.TotalCost)
	}

	total := decimal.Zero
	for _, s := range spend {
		total = total.Add(s)
	}

	result := &Concentration{TotalSuppliers: len(spend)}
	if total.IsZero() {
		result.HHI = entities.UndefinedRatio()
		result.Top5Pct = entities.UndefinedRatio()
		result.Level = ConcentrationUnknown
		return result
	}

	totalF := total.InexactFloat64()
	for supplierID, s := range spend {
		result.Shares = append(result.Shares, SupplierShare{
			SupplierID: supplierID,
			Spend:      s,
			SharePct:   s.InexactFloat64() / totalF * 100,
		})
	}
	sort.Slice(result.Shares, func(i, j int) bool {
		if !result.Shares[i].Spend.Equal(result.Shares[j].Spend) {
			return result.Shares[i].Spend.GreaterThan(result.Shares[j].Spend)
		}
		return result.Shares[i].SupplierID < result.Shares[j].SupplierID
	})

	var hhi float64
	for _, share := range result.Shares {
		hhi += share.SharePct * share.SharePct
	}

	var top5 float64
	for i, share := range result.Shares {
		if i >= 5 {
			break
		}
		top5 += share.SharePct
	}

	result.HHI = entities.DefinedRatio(hhi)
	result.Top5Pct = entities.DefinedRatio(top5)
	result.Level = e.cutoffs.Classify(hhi)
	return result
}
