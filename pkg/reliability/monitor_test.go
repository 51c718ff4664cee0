package reliability

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

func testMonitor(t *testing.T) *Monitor {
	t.Helper()
	monitor, err := New(DefaultThresholds())
	require.NoError(t, err)
	return monitor
}

// testInvoice builds an invoice processed on the given date
func testInvoice(t *testing.T, id, analystID string, processed time.Time, assigned, completed, hasError bool) *entities.Invoice {
	t.Helper()
	errorType := ""
	if hasError {
		errorType = "Monto incorrecto"
	}
	inv, err := entities.NewInvoice(
		entities.InvoiceID(id), "OC000001", entities.AnalystID(analystID),
		processed.AddDate(0, 0, -2), processed, 2,
		decimal.NewFromInt(1000),
		assigned, completed, hasError, errorType)
	require.NoError(t, err)
	return inv
}

func TestComputePeriod(t *testing.T) {
	monitor := testMonitor(t)
	day := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC) // 2024-W07
	period := entities.Period{Year: 2024, Week: 7}

	invoices := []*entities.Invoice{
		testInvoice(t, "INV1", "AN001", day, true, true, false),
		testInvoice(t, "INV2", "AN001", day, true, true, false),
		testInvoice(t, "INV3", "AN001", day, true, false, true),
		testInvoice(t, "INV4", "AN001", day, false, false, false),
		// Different week, must be ignored
		testInvoice(t, "INV5", "AN001", day.AddDate(0, 0, 7), true, true, false),
	}

	report := monitor.ComputePeriod(invoices, period)
	require.Len(t, report.Analysts, 1)

	kpi := report.Analysts[0]
	assert.Equal(t, 4, kpi.Volume)

	// 2 completed of 3 assigned
	require.True(t, kpi.Completion.Defined)
	assert.InDelta(t, 100.0*2/3, kpi.Completion.Value, 1e-9)
	assert.Equal(t, StatusRed, kpi.CompletionStatus)

	// 3 error-free of 4
	require.True(t, kpi.Quality.Defined)
	assert.InDelta(t, 75.0, kpi.Quality.Value, 1e-9)
	assert.Equal(t, StatusRed, kpi.QualityStatus)
}

func TestComputePeriodNothingAssigned(t *testing.T) {
	monitor := testMonitor(t)
	day := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	period := entities.Period{Year: 2024, Week: 7}

	invoices := []*entities.Invoice{
		testInvoice(t, "INV1", "AN001", day, false, false, false),
	}

	report := monitor.ComputePeriod(invoices, period)
	require.Len(t, report.Analysts, 1)

	kpi := report.Analysts[0]
	assert.Equal(t, 1, kpi.Volume)
	assert.False(t, kpi.Completion.Defined, "zero assigned must yield undefined, not 0%%")
	assert.Equal(t, StatusNoData, kpi.CompletionStatus)
}

func TestComputePeriodEmpty(t *testing.T) {
	monitor := testMonitor(t)
	report := monitor.ComputePeriod(nil, entities.Period{Year: 2024, Week: 7})
	assert.Empty(t, report.Analysts)
}

func TestLatestPeriod(t *testing.T) {
	day := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	invoices := []*entities.Invoice{
		testInvoice(t, "INV1", "AN001", day, true, true, false),
		testInvoice(t, "INV2", "AN001", day.AddDate(0, 0, 14), true, true, false),
		testInvoice(t, "INV3", "AN001", day.AddDate(0, 0, -7), true, true, false),
	}

	latest, ok := LatestPeriod(invoices)
	require.True(t, ok)
	assert.Equal(t, entities.Period{Year: 2024, Week: 9}, latest)

	_, ok = LatestPeriod(nil)
	assert.False(t, ok)
}

func TestTrendAcrossYearBoundary(t *testing.T) {
	monitor := testMonitor(t)

	// 2024-W01 and the two weeks before it in the 2023 ISO year
	w01 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)  // 2024-W01
	w52 := time.Date(2023, 12, 27, 0, 0, 0, 0, time.UTC) // 2023-W52
	w51 := time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC) // 2023-W51

	invoices := []*entities.Invoice{
		testInvoice(t, "INV1", "AN001", w01, true, true, false),
		testInvoice(t, "INV2", "AN001", w52, true, true, true),
		testInvoice(t, "INV3", "AN001", w51, true, false, false),
	}

	reports := monitor.Trend(invoices, "AN001", 3)
	require.Len(t, reports, 3)

	// Oldest first
	assert.Equal(t, entities.Period{Year: 2023, Week: 51}, reports[0].Period)
	assert.Equal(t, entities.Period{Year: 2023, Week: 52}, reports[1].Period)
	assert.Equal(t, entities.Period{Year: 2024, Week: 1}, reports[2].Period)

	require.Len(t, reports[1].Analysts, 1)
	assert.InDelta(t, 0.0, reports[1].Analysts[0].Quality.Value, 1e-9)
}

func TestTrendFiltersAnalyst(t *testing.T) {
	monitor := testMonitor(t)
	day := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	invoices := []*entities.Invoice{
		testInvoice(t, "INV1", "AN001", day, true, true, false),
		testInvoice(t, "INV2", "AN002", day, true, true, false),
	}

	reports := monitor.Trend(invoices, "AN002", 1)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Analysts, 1)
	assert.Equal(t, entities.AnalystID("AN002"), reports[0].Analysts[0].AnalystID)
}
