package datagen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

func testConfig() Config {
	return Config{
		Suppliers: 10,
		Analysts:  4,
		SKUs:      60,
		Orders:    200,
		Seed:      42,
		DateStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero suppliers", func(c *Config) { c.Suppliers = 0 }},
		{"zero orders", func(c *Config) { c.Orders = 0 }},
		{"inverted date range", func(c *Config) { c.DateEnd = c.DateStart }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			tt.modify(&config)
			_, err := New(config)
			assert.Error(t, err)
		})
	}
}

func TestGenerateCounts(t *testing.T) {
	gen, err := New(testConfig())
	require.NoError(t, err)

	dataset, err := gen.Generate()
	require.NoError(t, err)

	assert.Len(t, dataset.Suppliers, 10)
	assert.Len(t, dataset.Analysts, 4)
	assert.Len(t, dataset.SKUs, 60)
	assert.Len(t, dataset.Orders, 200)
	assert.NotEmpty(t, dataset.Lines)
	assert.NotEmpty(t, dataset.Invoices)
}

func TestGenerateDeterministic(t *testing.T) {
	gen1, err := New(testConfig())
	require.NoError(t, err)
	first, err := gen1.Generate()
	require.NoError(t, err)

	gen2, err := New(testConfig())
	require.NoError(t, err)
	second, err := gen2.Generate()
	require.NoError(t, err)

	require.Len(t, second.Orders, len(first.Orders))
	for i := range first.Orders {
		assert.Equal(t, first.Orders[i].ID, second.Orders[i].ID)
		assert.True(t, first.Orders[i].TotalCost.Equal(second.Orders[i].TotalCost))
		assert.Equal(t, first.Orders[i].OrderDate, second.Orders[i].OrderDate)
	}
	require.Len(t, second.Invoices, len(first.Invoices))
	for i := range first.Invoices {
		assert.Equal(t, first.Invoices[i].ID, second.Invoices[i].ID)
		assert.Equal(t, first.Invoices[i].HasError, second.Invoices[i].HasError)
	}
}

func TestGenerateInvariants(t *testing.T) {
	gen, err := New(testConfig())
	require.NoError(t, err)

	dataset, err := gen.Generate()
	require.NoError(t, err)

	ordersByID := make(map[entities.OrderID]*entities.PurchaseOrder, len(dataset.Orders))
	completed := 0
	for _, order := range dataset.Orders {
		ordersByID[order.ID] = order
		if order.Status == entities.OrderCompleted {
			completed++
		}
		assert.GreaterOrEqual(t, order.NumSKUs, 1)
		assert.True(t, order.SaleAmount.GreaterThan(order.TotalCost),
			"sale amount must carry a positive markup")
		assert.True(t, order.DeliveryDate.After(order.OrderDate))
	}
	assert.Greater(t, completed, 0)
	assert.Less(t, completed, len(dataset.Orders))

	// Invoices exist only for completed orders
	assert.Len(t, dataset.Invoices, completed)
	for _, inv := range dataset.Invoices {
		order, ok := ordersByID[inv.OrderID]
		require.True(t, ok)
		assert.Equal(t, entities.OrderCompleted, order.Status)

		if inv.Completed {
			assert.True(t, inv.Assigned)
		}
		if inv.HasError {
			assert.NotEmpty(t, inv.ErrorType)
		} else {
			assert.Empty(t, inv.ErrorType)
		}
		assert.False(t, inv.InvoiceDate.Before(order.OrderDate))
		assert.True(t, inv.ProcessedDate.After(inv.InvoiceDate))
	}

	linesByOrder := make(map[entities.OrderID]int)
	for _, line := range dataset.Lines {
		linesByOrder[line.OrderID]++
	}
	for _, order := range dataset.Orders {
		assert.Equal(t, order.NumSKUs, linesByOrder[order.ID])
	}
}

func TestGenerateSpecialistBias(t *testing.T) {
	gen, err := New(testConfig())
	require.NoError(t, err)

	dataset, err := gen.Generate()
	require.NoError(t, err)

	categoryBySKU := make(map[entities.SKUCode]string, len(dataset.SKUs))
	for _, sku := range dataset.SKUs {
		categoryBySKU[sku.Code] = sku.Category
	}
	linesByOrder := make(map[entities.OrderID][]*entities.OrderLine)
	for _, line := range dataset.Lines {
		linesByOrder[line.OrderID] = append(linesByOrder[line.OrderID], line)
	}
	specialization := make(map[entities.AnalystID]string, len(dataset.Analysts))
	for _, analyst := range dataset.Analysts {
		specialization[analyst.ID] = analyst.Specialization
	}

	inCategory, total := 0, 0
	for _, order := range dataset.Orders {
		spec := specialization[order.AnalystID]
		if spec == "" {
			continue
		}
		for _, line := range linesByOrder[order.ID] {
			total++
			if categoryBySKU[line.SKU] == spec {
				inCategory++
			}
		}
	}
	if total == 0 {
		t.Skip("no specialist orders in this sample")
	}
	// Specialists order mostly within their own category
	assert.Greater(t, float64(inCategory)/float64(total), 0.5)
}
