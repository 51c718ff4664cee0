package financial

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

func TestComputeConcentrationSingleSupplier(t *testing.T) {
	engine := testEngine(t)

	c := engine.ComputeConcentration([]*entities.PurchaseOrder{
		testOrder(t, "OC000001", "SUP0001", 1000, 1100),
		testOrder(t, "OC000002", "SUP0001", 500, 600),
	})

	assert.Equal(t, 1, c.TotalSuppliers)
	require.True(t, c.HHI.Defined)
	assert.InDelta(t, 10000.0, c.HHI.Value, 1e-6)
	assert.Equal(t, ConcentrationHigh, c.Level)
	assert.InDelta(t, 100.0, c.Top5Pct.Value, 1e-9)
}

func TestComputeConcentrationEqualSuppliers(t *testing.T) {
	engine := testEngine(t)

	// N equal suppliers score 10000/N
	tests := []struct {
		n         int
		wantLevel ConcentrationLevel
	}{
		{4, ConcentrationHigh},     // 2500
		{5, ConcentrationModerate}, // 2000
		{10, ConcentrationLow},     // 1000
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d suppliers", tt.n), func(t *testing.T) {
			var orders []*entities.PurchaseOrder
			for i := 0; i < tt.n; i++ {
				orders = append(orders, testOrder(t,
					fmt.Sprintf("OC%06d", i+1), fmt.Sprintf("SUP%04d", i+1), 1000, 1100))
			}

			c := engine.ComputeConcentration(orders)
			assert.Equal(t, tt.n, c.TotalSuppliers)
			require.True(t, c.HHI.Defined)
			assert.InDelta(t, 10000.0/float64(tt.n), c.HHI.Value, 1e-6)
			assert.Equal(t, tt.wantLevel, c.Level)
		})
	}
}

func TestComputeConcentrationSharesSorted(t *testing.T) {
	engine := testEngine(t)

	c := engine.ComputeConcentration([]*entities.PurchaseOrder{
		testOrder(t, "OC000001", "SUP0002", 300, 330),
		testOrder(t, "OC000002", "SUP0001", 700, 770),
	})

	require.Len(t, c.Shares, 2)
	assert.Equal(t, entities.SupplierID("SUP0001"), c.Shares[0].SupplierID)
	assert.InDelta(t, 70.0, c.Shares[0].SharePct, 1e-9)
	assert.InDelta(t, 30.0, c.Shares[1].SharePct, 1e-9)

	// 70² + 30²
	assert.InDelta(t, 5800.0, c.HHI.Value, 1e-6)
}

func TestComputeConcentrationNoSpend(t *testing.T) {
	engine := testEngine(t)

	c := engine.ComputeConcentration(nil)
	assert.Equal(t, 0, c.TotalSuppliers)
	assert.False(t, c.HHI.Defined)
	assert.False(t, c.Top5Pct.Defined)
	assert.Equal(t, ConcentrationUnknown, c.Level)
}
