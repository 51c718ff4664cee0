package reliability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

func TestSummarize(t *testing.T) {
	monitor := testMonitor(t)
	day := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	period := entities.Period{Year: 2024, Week: 7}

	var invoices []*entities.Invoice
	// AN001: 8 clean invoices
	for i := 0; i < 8; i++ {
		invoices = append(invoices, testInvoice(t, "A"+string(rune('0'+i)), "AN001", day, true, true, false))
	}
	// AN002: 2 invoices, one with an error (quality 50%)
	invoices = append(invoices,
		testInvoice(t, "B1", "AN002", day, true, true, false),
		testInvoice(t, "B2", "AN002", day, true, true, true),
	)

	summary := monitor.Summarize(monitor.ComputePeriod(invoices, period))

	assert.Equal(t, 2, summary.TotalAnalysts)
	assert.Equal(t, 10, summary.TotalVolume)
	require.True(t, summary.AvgVolume.Defined)
	assert.InDelta(t, 5.0, summary.AvgVolume.Value, 1e-9)

	// (100 + 50) / 2
	require.True(t, summary.AvgQuality.Defined)
	assert.InDelta(t, 75.0, summary.AvgQuality.Value, 1e-9)

	assert.Equal(t, []entities.AnalystID{"AN002"}, summary.LowQuality)
	assert.Equal(t, []entities.AnalystID{"AN002"}, summary.LowVolume)
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	monitor := testMonitor(t)
	summary := monitor.Summarize(monitor.ComputePeriod(nil, entities.Period{Year: 2024, Week: 7}))

	assert.Equal(t, 0, summary.TotalAnalysts)
	assert.False(t, summary.AvgVolume.Defined)
	assert.False(t, summary.AvgQuality.Defined)
	assert.Empty(t, summary.LowQuality)
	assert.Empty(t, summary.LowVolume)
}
