package financial

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

func categoryMetric(name string, sales int64, marginPct float64) CategoryMetrics {
	return CategoryMetrics{
		Category:     name,
		TotalSales:   decimal.NewFromInt(sales),
		AvgMarginPct: entities.DefinedRatio(marginPct),
	}
}

func TestComputeValueMatrixQuadrants(t *testing.T) {
	categories := []CategoryMetrics{
		categoryMetric("Limpieza", 100, 5),    // low volume, low margin
		categoryMetric("Tecnología", 200, 25), // low volume, high margin
		categoryMetric("Bebidas", 300, 8),     // high volume, low margin
		categoryMetric("Alimentos", 400, 20),  // high volume, high margin
	}

	cells := ComputeValueMatrix(categories)
	require.Len(t, cells, 4)

	byCategory := make(map[string]ValueCell, len(cells))
	for _, cell := range cells {
		byCategory[cell.Category] = cell
	}

	assert.Equal(t, ActionDiscontinueCandidate, byCategory["Limpieza"].Action)
	assert.Equal(t, ActionNiche, byCategory["Tecnología"].Action)
	assert.Equal(t, ActionOptimizePrice, byCategory["Bebidas"].Action)
	assert.Equal(t, ActionPrioritize, byCategory["Alimentos"].Action)

	assert.Equal(t, 4, byCategory["Alimentos"].VolumeQuartile)
	assert.Equal(t, 1, byCategory["Limpieza"].VolumeQuartile)
	assert.Equal(t, 4, byCategory["Tecnología"].MarginQuartile)
}

func TestComputeValueMatrixTiesShareQuartile(t *testing.T) {
	categories := []CategoryMetrics{
		categoryMetric("A", 100, 10),
		categoryMetric("B", 100, 10),
		categoryMetric("C", 100, 10),
		categoryMetric("D", 100, 10),
	}

	cells := ComputeValueMatrix(categories)
	require.Len(t, cells, 4)
	for _, cell := range cells {
		assert.Equal(t, 1, cell.VolumeQuartile, "equal values share the lowest quartile")
		assert.Equal(t, 1, cell.MarginQuartile)
	}
}

func TestComputeValueMatrixUndefinedMargin(t *testing.T) {
	categories := []CategoryMetrics{
		categoryMetric("A", 100, 15),
		{Category: "B", TotalSales: decimal.NewFromInt(200), AvgMarginPct: entities.UndefinedRatio()},
	}

	cells := ComputeValueMatrix(categories)
	require.Len(t, cells, 2)

	byCategory := make(map[string]ValueCell, len(cells))
	for _, cell := range cells {
		byCategory[cell.Category] = cell
	}

	// Undefined margin ranks lowest
	assert.Less(t, byCategory["B"].MarginQuartile, byCategory["A"].MarginQuartile)
}

func TestComputeValueMatrixEmpty(t *testing.T) {
	assert.Nil(t, ComputeValueMatrix(nil))
}
