package workload

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	table, err := NewBandTable(defaultBands())
	require.NoError(t, err)
	return New(table)
}

func testOrder(t *testing.T, id, analystID string, numSKUs int) *entities.PurchaseOrder {
	t.Helper()
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	order, err := entities.NewPurchaseOrder(
		entities.OrderID(id), date, "SUP0001", entities.AnalystID(analystID),
		numSKUs, decimal.NewFromInt(1000), decimal.NewFromInt(1200),
		entities.OrderCompleted, date.AddDate(0, 0, 7))
	require.NoError(t, err)
	return order
}

func testAnalyst(t *testing.T, id, name string) *entities.Analyst {
	t.Helper()
	analyst, err := entities.NewAnalyst(
		entities.AnalystID(id), name,
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	return analyst
}

// Three analysts with one order each of 2, 30 and 60 SKUs: the raw
// order count is identical but the weighted workload differs 10x.
func TestComputeWorkloadWeighting(t *testing.T) {
	engine := testEngine(t)

	orders := []*entities.PurchaseOrder{
		testOrder(t, "OC000001", "AN001", 2),
		testOrder(t, "OC000002", "AN002", 30),
		testOrder(t, "OC000003", "AN003", 60),
	}
	analysts := []*entities.Analyst{
		testAnalyst(t, "AN001", "Ana"),
		testAnalyst(t, "AN002", "Bruno"),
		testAnalyst(t, "AN003", "Carla"),
	}

	report, err := engine.ComputeWorkload(orders, analysts)
	require.NoError(t, err)
	require.Len(t, report.Analysts, 3)

	assert.InDelta(t, 1.0, report.Analysts[0].WeightedWorkload, 1e-9)
	assert.InDelta(t, 5.0, report.Analysts[1].WeightedWorkload, 1e-9)
	assert.InDelta(t, 10.0, report.Analysts[2].WeightedWorkload, 1e-9)

	for _, a := range report.Analysts {
		assert.Equal(t, 1, a.TotalOrders)
	}

	require.True(t, report.Balance.ImbalanceRatio.Defined)
	assert.InDelta(t, 10.0, report.Balance.ImbalanceRatio.Value, 1e-9)
}

func TestComputeWorkloadZeroOrderAnalyst(t *testing.T) {
	engine := testEngine(t)

	orders := []*entities.PurchaseOrder{
		testOrder(t, "OC000001", "AN001", 10),
	}
	analysts := []*entities.Analyst{
		testAnalyst(t, "AN001", "Ana"),
		testAnalyst(t, "AN002", "Bruno"),
	}

	report, err := engine.ComputeWorkload(orders, analysts)
	require.NoError(t, err)
	require.Len(t, report.Analysts, 2)

	idle := report.Analysts[1]
	assert.Equal(t, entities.AnalystID("AN002"), idle.AnalystID)
	assert.Equal(t, 0, idle.TotalOrders)
	assert.False(t, idle.AvgSKUsPerOrder.Defined)
	assert.False(t, idle.AvgWeight.Defined)
	assert.False(t, idle.SpecializationRatio.Defined)

	// The idle analyst must not drag the balance stats down
	assert.InDelta(t, 2.5, report.Balance.MinWorkload, 1e-9)
	assert.InDelta(t, 2.5, report.Balance.MaxWorkload, 1e-9)
}

func TestComputeWorkloadModalBandTie(t *testing.T) {
	engine := testEngine(t)

	// One order in each of two bands: the tie breaks to the
	// lexicographically smaller band name.
	orders := []*entities.PurchaseOrder{
		testOrder(t, "OC000001", "AN001", 2),  // Muy Simple
		testOrder(t, "OC000002", "AN001", 30), // Moderado
	}
	analysts := []*entities.Analyst{testAnalyst(t, "AN001", "Ana")}

	report, err := engine.ComputeWorkload(orders, analysts)
	require.NoError(t, err)
	require.Len(t, report.Analysts, 1)
	assert.Equal(t, "Moderado", report.Analysts[0].ModalBand)
	assert.InDelta(t, 0.5, report.Analysts[0].SpecializationRatio.Value, 1e-9)
}

func TestComputeWorkloadDistribution(t *testing.T) {
	engine := testEngine(t)

	orders := []*entities.PurchaseOrder{
		testOrder(t, "OC000001", "AN001", 1),
		testOrder(t, "OC000002", "AN001", 3),
		testOrder(t, "OC000003", "AN001", 5),
		testOrder(t, "OC000004", "AN001", 25),
	}
	analysts := []*entities.Analyst{testAnalyst(t, "AN001", "Ana")}

	report, err := engine.ComputeWorkload(orders, analysts)
	require.NoError(t, err)
	require.Len(t, report.Distribution, 4)

	simple := report.Distribution[0]
	assert.Equal(t, "Muy Simple", simple.Band)
	assert.Equal(t, 3, simple.Orders)
	assert.InDelta(t, 75.0, simple.PctOrders.Value, 1e-9)
	assert.InDelta(t, 3.0, simple.MeanSKUs.Value, 1e-9)
	assert.InDelta(t, 3.0, simple.MedianSKUs.Value, 1e-9)
	assert.Equal(t, 5, simple.MaxSKUs)

	// Bands with no orders report undefined means, not zeros
	empty := report.Distribution[1]
	assert.Equal(t, "Simple", empty.Band)
	assert.Equal(t, 0, empty.Orders)
	assert.False(t, empty.MeanSKUs.Defined)
	assert.False(t, empty.MedianSKUs.Defined)
}

func TestComputeWorkloadNoOrders(t *testing.T) {
	engine := testEngine(t)

	report, err := engine.ComputeWorkload(nil, []*entities.Analyst{testAnalyst(t, "AN001", "Ana")})
	require.NoError(t, err)
	assert.False(t, report.Balance.ImbalanceRatio.Defined)
	assert.False(t, report.Balance.CoefficientOfVariation.Defined)
}
