package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	date := time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC)

	t.Run("valid invoice", func(t *testing.T) {
		inv, err := NewInvoice("INV000001", "OC000001", "AN001",
			date, date.AddDate(0, 0, 2), 2, decimal.NewFromInt(1000),
			true, true, false, "")
		require.NoError(t, err)
		assert.Equal(t, InvoiceID("INV000001"), inv.ID)
		assert.Equal(t, Period{2024, 7}, inv.Period())
	})

	t.Run("completed requires assigned", func(t *testing.T) {
		_, err := NewInvoice("INV000001", "OC000001", "AN001",
			date, date, 0, decimal.NewFromInt(1000),
			false, true, false, "")
		assert.Error(t, err)
	})

	t.Run("error requires error type", func(t *testing.T) {
		_, err := NewInvoice("INV000001", "OC000001", "AN001",
			date, date, 0, decimal.NewFromInt(1000),
			true, true, true, "")
		assert.Error(t, err)
	})

	t.Run("empty ID rejected", func(t *testing.T) {
		_, err := NewInvoice("", "OC000001", "AN001",
			date, date, 0, decimal.NewFromInt(1000),
			true, true, false, "")
		assert.Error(t, err)
	})
}

func TestInvoicePeriodFromProcessedDate(t *testing.T) {
	// The reporting period comes from the processed date, not the
	// invoice date.
	invoiceDate := time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC)   // Sunday of W07
	processedDate := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC) // W08

	inv, err := NewInvoice("INV000002", "OC000002", "AN002",
		invoiceDate, processedDate, 2, decimal.NewFromInt(500),
		true, true, false, "")
	require.NoError(t, err)
	assert.Equal(t, Period{2024, 8}, inv.Period())
}
