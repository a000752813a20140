package methods

import (
	"math"
	"testing"

	"goscore/domain/dataset"
	"goscore/domain/scoring"

	"github.com/stretchr/testify/assert"
)

func TestOneSided_RightOfAverage(t *testing.T) {
	m := NewOneSidedMethod()
	col := dataset.Column{Key: "x", Type: dataset.TypeNumeric, Average: dataset.Float64(10)}
	cfg := scoring.OneSidedConfig{
		BaselineMode: scoring.BaselineAverage,
		Side:         scoring.SideRight,
		Scaling:      scoring.ScalingLinear,
		Slope:        1,
	}

	out := m.Compute(col, floatsOf(5, 10, 15, 20, math.NaN()), nil, cfg)

	scores := scoresOf(out)
	assert.Equal(t, []float64{0, 0, 0.5, 1}, scores[:4])
	assert.True(t, math.IsNaN(scores[4]))
}

func TestOneSided_ExponentialSquares(t *testing.T) {
	m := NewOneSidedMethod()
	col := dataset.Column{Key: "x", Type: dataset.TypeNumeric}
	cfg := scoring.OneSidedConfig{
		BaselineMode:  scoring.BaselineCustom,
		BaselineValue: 10,
		Side:          scoring.SideLeft,
		Scaling:       scoring.ScalingExponential,
		Slope:         1,
	}

	out := m.Compute(col, floatsOf(0, 5, 10, 20), nil, cfg)

	assert.Equal(t, []float64{1, 0.25, 0, 0}, scoresOf(out))
}

func TestOneSided_BaselineFallsBackToMedian(t *testing.T) {
	m := NewOneSidedMethod()
	col := dataset.Column{Key: "x", Type: dataset.TypeNumeric, Median: dataset.Float64(4)}
	cfg := scoring.OneSidedConfig{BaselineMode: scoring.BaselineAverage, Side: scoring.SideRight, Scaling: scoring.ScalingLinear, Slope: 1}

	out := m.Compute(col, floatsOf(2, 4, 6, 8), nil, cfg)

	assert.Equal(t, 4.0, out.Diagnostics.Stats["baseline"])
	assert.Equal(t, []float64{0, 0, 0.5, 1}, scoresOf(out))
}

func TestOneSided_NoSpreadOnSideScoresZero(t *testing.T) {
	m := NewOneSidedMethod()
	col := dataset.Column{Key: "x", Type: dataset.TypeNumeric, Average: dataset.Float64(100)}
	cfg := scoring.OneSidedConfig{BaselineMode: scoring.BaselineAverage, Side: scoring.SideRight, Scaling: scoring.ScalingLinear, Slope: 1}

	out := m.Compute(col, floatsOf(1, 2, math.NaN()), nil, cfg)

	scores := scoresOf(out)
	assert.Equal(t, []float64{0, 0}, scores[:2])
	assert.True(t, math.IsNaN(scores[2]))
	assert.True(t, out.Diagnostics.HasWarning(WarningDegenerateSpread))
}

func TestOneSided_LogarithmicStaysInUnitInterval(t *testing.T) {
	m := NewOneSidedMethod()
	col := dataset.Column{Key: "x", Type: dataset.TypeNumeric, Average: dataset.Float64(0)}
	cfg := scoring.OneSidedConfig{BaselineMode: scoring.BaselineAverage, Side: scoring.SideRight, Scaling: scoring.ScalingLogarithmic, Slope: 9}

	out := m.Compute(col, floatsOf(0, 1, 5, 10), nil, cfg)

	scores := scoresOf(out)
	assert.Equal(t, 0.0, scores[0])
	assert.InDelta(t, math.Log1p(0.9)/math.Log1p(9), scores[1], 1e-12)
	assert.Greater(t, scores[2], 0.5, "concave ramp lifts the midpoint")
	assert.InDelta(t, 1.0, scores[3], 1e-12)
}
