package methods

import (
	"math"
	"testing"

	"goscore/domain/scoring"

	"github.com/stretchr/testify/assert"
)

func TestSignificance_ThresholdComparison(t *testing.T) {
	m := NewSignificanceMethod()
	values := floatsOf(1, 5, 6, math.NaN())
	cfg := scoring.SignificanceConfig{SignificanceLevel: 5, Mode: scoring.SignificanceTwoSided, FlagSignificant: true}

	out := m.Compute(numericColumn("p"), values, nil, cfg)

	scores := scoresOf(out)
	assert.Equal(t, []float64{1, 1, 0}, scores[:3])
	assert.True(t, math.IsNaN(scores[3]))
	assert.InDelta(t, 1.959964, out.Diagnostics.Stats["critical_z"], 1e-5)
}

func TestSignificance_Inverted(t *testing.T) {
	m := NewSignificanceMethod()
	cfg := scoring.SignificanceConfig{SignificanceLevel: 5, Mode: scoring.SignificanceOneSided, Tail: scoring.TailLower, FlagSignificant: false}

	out := m.Compute(numericColumn("p"), floatsOf(1, 50), nil, cfg)

	assert.Equal(t, []float64{0, 1}, scoresOf(out))
	assert.InDelta(t, -1.644854, out.Diagnostics.Stats["critical_z"], 1e-5)
}
