package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/application/services"
	svctest "github.com/mvidal/opskpi/pkg/application/services/testing"
	"github.com/mvidal/opskpi/pkg/config"
	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/financial"
	"github.com/mvidal/opskpi/pkg/reliability"
)

func newTestService(t *testing.T) *services.ReportService {
	t.Helper()
	service, err := services.NewReportService(config.Default(), svctest.BuildRetailTestData())
	require.NoError(t, err)
	return service
}

func TestNewReportServiceRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Reliability.GreenMin = 90 // below yellow, thresholds are inverted

	_, err := services.NewReportService(cfg, svctest.BuildRetailTestData())
	assert.Error(t, err)
}

func TestAssemble(t *testing.T) {
	service := newTestService(t)
	period := entities.Period{Year: 2024, Week: 7}

	report, err := service.Assemble(context.Background(), period)
	require.NoError(t, err)

	assert.Equal(t, period, report.Period)
	assert.Equal(t, 4, report.TotalOrders)
	assert.Equal(t, 3, report.TotalInvoices)
	assert.Equal(t, 3, report.TotalAnalysts)

	t.Run("workload", func(t *testing.T) {
		require.NotNil(t, report.Workload)
		require.Len(t, report.Workload.Analysts, 3)

		byAnalyst := make(map[entities.AnalystID]float64)
		for _, a := range report.Workload.Analysts {
			byAnalyst[a.AnalystID] = a.WeightedWorkload
		}
		// AN001: 2 SKUs (×1.0) + 30 SKUs (×5.0); AN002: 60 (×10.0) + 5 (×1.0)
		assert.InDelta(t, 6.0, byAnalyst["AN001"], 1e-9)
		assert.InDelta(t, 11.0, byAnalyst["AN002"], 1e-9)
		assert.Zero(t, byAnalyst["AN003"])

		require.True(t, report.Workload.Balance.ImbalanceRatio.Defined)
		assert.InDelta(t, 11.0/6.0, report.Workload.Balance.ImbalanceRatio.Value, 1e-9)
	})

	t.Run("reliability", func(t *testing.T) {
		require.Len(t, report.Reliability, 2)

		byAnalyst := make(map[entities.AnalystID]reliability.AnalystKPIs)
		for _, kpis := range report.Reliability {
			byAnalyst[kpis.AnalystID] = kpis
		}

		an001 := byAnalyst["AN001"]
		assert.Equal(t, 1, an001.Volume)
		assert.Equal(t, reliability.StatusGreen, an001.QualityStatus)

		an002 := byAnalyst["AN002"]
		assert.Equal(t, 2, an002.Volume)
		require.True(t, an002.Quality.Defined)
		assert.InDelta(t, 50.0, an002.Quality.Value, 1e-9)
		assert.Equal(t, reliability.StatusRed, an002.QualityStatus)

		require.NotNil(t, report.Team)
		assert.Equal(t, 3, report.Team.TotalVolume)
		require.True(t, report.Team.AvgQuality.Defined)
		assert.InDelta(t, 75.0, report.Team.AvgQuality.Value, 1e-9)
		assert.Equal(t, []entities.AnalystID{"AN002"}, report.Team.LowQuality)
	})

	t.Run("financial", func(t *testing.T) {
		require.NotNil(t, report.Margins)
		require.True(t, report.Margins.AvgMarginPct.Defined)
		assert.InDelta(t, 16.25, report.Margins.AvgMarginPct.Value, 1e-9)

		require.NotNil(t, report.Concentration)
		assert.Equal(t, financial.ConcentrationHigh, report.Concentration.Level)

		assert.Len(t, report.Suppliers, 2)
		assert.Len(t, report.Categories, 3)
		assert.Len(t, report.ValueMatrix, 3)

		// Both 10% orders fall below the 15% opportunity threshold; the
		// larger order carries the larger potential gain and sorts first.
		require.Len(t, report.Opportunities, 2)
		assert.Equal(t, entities.OrderID("OC000003"), report.Opportunities[0].OrderID)
		assert.Equal(t, entities.OrderID("OC000002"), report.Opportunities[1].OrderID)
	})
}

func TestAssembleLatest(t *testing.T) {
	service := newTestService(t)

	report, err := service.AssembleLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.Period{Year: 2024, Week: 7}, report.Period)
}

func TestAssembleCancelledContext(t *testing.T) {
	service := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Assemble(ctx, entities.Period{Year: 2024, Week: 7})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReliabilityTrend(t *testing.T) {
	service := newTestService(t)

	trend, err := service.ReliabilityTrend(context.Background(), "AN001", 3)
	require.NoError(t, err)
	require.Len(t, trend, 3)

	// Oldest week first, ending at the latest week in the data
	assert.Equal(t, entities.Period{Year: 2024, Week: 5}, trend[0].Period)
	assert.Empty(t, trend[0].Analysts)

	assert.Equal(t, entities.Period{Year: 2024, Week: 6}, trend[1].Period)
	require.Len(t, trend[1].Analysts, 1)
	assert.Equal(t, 1, trend[1].Analysts[0].Volume)

	assert.Equal(t, entities.Period{Year: 2024, Week: 7}, trend[2].Period)
	require.Len(t, trend[2].Analysts, 1)
	assert.Equal(t, 1, trend[2].Analysts[0].Volume)
}
