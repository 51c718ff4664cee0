package workload

import (
	"sort"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// CategorySpecialization reports whether analysts concentrate on a
// product category. Each order is attributed to the modal category of
// its lines, then the per-analyst category distribution is summarized.
type CategorySpecialization struct {
	AnalystID          entities.AnalystID
	PrimaryCategory    string
	PrimaryCategoryPct entities.Ratio // share of orders in the primary category
	CategoriesHandled  int
}

// ComputeCategorySpecialization attributes each order to its dominant
// product category and measures how concentrated every analyst's order
// mix is. Orders whose lines reference unknown SKUs fall into the
// "Sin categoría" bucket, matching how uncategorized work is reported.
func (e *Engine) ComputeCategorySpecialization(
	orders []*entities.PurchaseOrder,
	lines []*entities.OrderLine,
	skus []*entities.SKU,
) []CategorySpecialization {
	categoryBySKU := make(map[entities.SKUCode]string, len(skus))
	for _, s := range skus {
		categoryBySKU[s.Code] = s.Category
	}

	// Modal category per order from its lines.
	categoryCounts := make(map[entities.OrderID]map[string]int)
	for _, line := range lines {
		category, ok := categoryBySKU[line.SKU]
		if !ok {
			category = "Sin categoría"
		}
		if categoryCounts[line.OrderID] == nil {
			categoryCounts[line.OrderID] = make(map[string]int)
		}
		categoryCounts[line.OrderID][category]++
	}

	orderCategory := make(map[entities.OrderID]string, len(categoryCounts))
	for orderID, counts := range categoryCounts {
		orderCategory[orderID] = modalCategory(counts)
	}

	byAnalyst := make(map[entities.AnalystID]map[string]int)
	for _, order := range orders {
		category, ok := orderCategory[order.ID]
		if !ok {
			category = "Sin categoría"
		}
		if byAnalyst[order.AnalystID] == nil {
			byAnalyst[order.AnalystID] = make(map[string]int)
		}
		byAnalyst[order.AnalystID][category]++
	}

	result := make([]CategorySpecialization, 0, len(byAnalyst))
	for analystID, counts := range byAnalyst {
		total := 0
		for _, n := range counts {
			total += n
		}
		primary := modalCategory(counts)

		result = append(result, CategorySpecialization{
			AnalystID:          analystID,
			PrimaryCategory:    primary,
			PrimaryCategoryPct: entities.PercentOf(float64(counts[primary]), float64(total)),
			CategoriesHandled:  len(counts),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AnalystID < result[j].AnalystID })

	return result
}

func modalCategory(counts map[string]int) string {
	var modal string
	var best int
	for category, n := range counts {
		if n > best || (n == best && (modal == "" || category < modal)) {
			modal, best = category, n
		}
	}
	return modal
}
