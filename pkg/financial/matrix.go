package financial

import "sort"

// Action is the static recommendation for a category based on where it
// lands in the volume-quartile × margin-quartile cross-tab
type Action int

const (
	ActionPrioritize Action = iota
	ActionOptimizePrice
	ActionNiche
	ActionDiscontinueCandidate
)

// String method for Action enum
func (a Action) String() string {
	switch a {
	case ActionPrioritize:
		return "Prioritize"
	case ActionOptimizePrice:
		return "OptimizePrice"
	case ActionNiche:
		return "Niche"
	case ActionDiscontinueCandidate:
		return "DiscontinueCandidate"
	default:
		return "Unknown"
	}
}

// ValueCell places one category in the value matrix
type ValueCell struct {
	Category       string
	VolumeQuartile int // 1 (lowest) .. 4 (highest) by total sales
	MarginQuartile int // 1 (lowest) .. 4 (highest) by average margin
	Action         Action
}

// ComputeValueMatrix cross-tabulates volume quartile against margin
// quartile per category and applies the static rule: high volume and
// high margin → prioritize; high volume, low margin → optimize price;
// low volume, high margin → niche; low on both → discontinue candidate.
// "High" means the upper half (quartiles 3 and 4). Categories with an
// undefined average margin rank in the lowest margin quartile.
func ComputeValueMatrix(categories []CategoryMetrics) []ValueCell {
	if len(categories) == 0 {
		return nil
	}

	volumes := make([]float64, len(categories))
	margins := make([]float64, len(categories))
	for i, c := range categories {
		volumes[i] = c.TotalSales.InexactFloat64()
		if c.AvgMarginPct.Defined {
			margins[i] = c.AvgMarginPct.Value
		} else {
			margins[i] = 0
		}
	}

	volumeQ := quartileRanks(volumes)
	marginQ := quartileRanks(margins)

	cells := make([]ValueCell, len(categories))
	for i, c := range categories {
		cell := ValueCell{
			Category:       c.Category,
			VolumeQuartile: volumeQ[i],
			MarginQuartile: marginQ[i],
		}

		highVolume := cell.VolumeQuartile >= 3
		highMargin := cell.MarginQuartile >= 3
		switch {
		case highVolume && highMargin:
			cell.Action = ActionPrioritize
		case highVolume:
			cell.Action = ActionOptimizePrice
		case highMargin:
			cell.Action = ActionNiche
		default:
			cell.Action = ActionDiscontinueCandidate
		}
		cells[i] = cell
	}
	return cells
}

// quartileRanks assigns each value its quartile (1..4) by ascending
// rank. Equal values share the lower rank's quartile so ties are
// deterministic.
func quartileRanks(values []float64) []int {
	n := len(values)
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool { return values[indexes[a]] < values[indexes[b]] })

	ranks := make([]int, n)
	for pos, idx := range indexes {
		if pos > 0 && values[idx] == values[indexes[pos-1]] {
			ranks[idx] = ranks[indexes[pos-1]]
			continue
		}
		ranks[idx] = pos*4/n + 1
	}
	return ranks
}
