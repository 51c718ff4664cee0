package reliability

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/errs"
)

func TestThresholdsClassify(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		name  string
		ratio entities.Ratio
		want  Status
	}{
		{"green at boundary", entities.DefinedRatio(98), StatusGreen},
		{"green above", entities.DefinedRatio(100), StatusGreen},
		{"yellow at boundary", entities.DefinedRatio(95), StatusYellow},
		{"yellow just below green", entities.DefinedRatio(97.99), StatusYellow},
		{"red below yellow", entities.DefinedRatio(94.99), StatusRed},
		{"red at zero", entities.DefinedRatio(0), StatusRed},
		{"no data for undefined", entities.UndefinedRatio(), StatusNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, thresholds.Classify(tt.ratio))
		})
	}
}

func TestThresholdsValidate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())

	tests := []struct {
		name       string
		thresholds Thresholds
	}{
		{"yellow above green", Thresholds{GreenMin: 95, YellowMin: 98}},
		{"negative", Thresholds{GreenMin: -1, YellowMin: -5}},
		{"over 100", Thresholds{GreenMin: 101, YellowMin: 95}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.thresholds.Validate()
			require.Error(t, err)
			assert.True(t, goerr.HasTag(err, errs.ErrTagConfig))
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Green", StatusGreen.String())
	assert.Equal(t, "Yellow", StatusYellow.String())
	assert.Equal(t, "Red", StatusRed.String())
	assert.Equal(t, "NoData", StatusNoData.String())
}
