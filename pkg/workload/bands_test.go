package workload

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/domain/errs"
)

func defaultBands() []Band {
	return []Band{
		{Name: "Muy Simple", MinSKUs: 1, MaxSKUs: 5, Weight: 1.0},
		{Name: "Simple", MinSKUs: 6, MaxSKUs: 20, Weight: 2.5},
		{Name: "Moderado", MinSKUs: 21, MaxSKUs: 50, Weight: 5.0},
		{Name: "Complejo", MinSKUs: 51, MaxSKUs: 0, Weight: 10.0},
	}
}

func TestNewBandTable(t *testing.T) {
	t.Run("default bands are valid", func(t *testing.T) {
		table, err := NewBandTable(defaultBands())
		require.NoError(t, err)
		assert.Len(t, table.Bands(), 4)
	})

	t.Run("order of definition does not matter", func(t *testing.T) {
		bands := defaultBands()
		bands[0], bands[3] = bands[3], bands[0]
		_, err := NewBandTable(bands)
		assert.NoError(t, err)
	})

	tests := []struct {
		name  string
		bands []Band
	}{
		{"empty table", nil},
		{"gap between ranges", []Band{
			{Name: "A", MinSKUs: 1, MaxSKUs: 5, Weight: 1},
			{Name: "B", MinSKUs: 7, MaxSKUs: 0, Weight: 2},
		}},
		{"overlapping ranges", []Band{
			{Name: "A", MinSKUs: 1, MaxSKUs: 5, Weight: 1},
			{Name: "B", MinSKUs: 5, MaxSKUs: 0, Weight: 2},
		}},
		{"coverage does not start at 1", []Band{
			{Name: "A", MinSKUs: 2, MaxSKUs: 0, Weight: 1},
		}},
		{"last band bounded", []Band{
			{Name: "A", MinSKUs: 1, MaxSKUs: 5, Weight: 1},
			{Name: "B", MinSKUs: 6, MaxSKUs: 50, Weight: 2},
		}},
		{"open-ended band not last", []Band{
			{Name: "A", MinSKUs: 1, MaxSKUs: 0, Weight: 1},
			{Name: "B", MinSKUs: 6, MaxSKUs: 0, Weight: 2},
		}},
		{"duplicate names", []Band{
			{Name: "A", MinSKUs: 1, MaxSKUs: 5, Weight: 1},
			{Name: "A", MinSKUs: 6, MaxSKUs: 0, Weight: 2},
		}},
		{"non-positive weight", []Band{
			{Name: "A", MinSKUs: 1, MaxSKUs: 5, Weight: 0},
			{Name: "B", MinSKUs: 6, MaxSKUs: 0, Weight: 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBandTable(tt.bands)
			require.Error(t, err)
			assert.True(t, goerr.HasTag(err, errs.ErrTagConfig), "expected a config error, got: %v", err)
		})
	}
}

func TestBandFor(t *testing.T) {
	table, err := NewBandTable(defaultBands())
	require.NoError(t, err)

	tests := []struct {
		numSKUs int
		want    string
	}{
		{1, "Muy Simple"},
		{5, "Muy Simple"},
		{6, "Simple"},
		{20, "Simple"},
		{21, "Moderado"},
		{50, "Moderado"},
		{51, "Complejo"},
		{100000, "Complejo"},
	}

	for _, tt := range tests {
		band, err := table.BandFor(tt.numSKUs)
		require.NoError(t, err)
		assert.Equal(t, tt.want, band.Name, "numSKUs=%d", tt.numSKUs)
	}

	_, err = table.BandFor(0)
	assert.Error(t, err)
}
