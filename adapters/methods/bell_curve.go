package methods

import (
	"math"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/extract"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// BellCurveMethod scores how far each value sits from the column mean,
// log-compressed so a single extreme outlier does not flatten everything else
type BellCurveMethod struct{}

// NewBellCurveMethod creates the bell-curve anomaly method
func NewBellCurveMethod() *BellCurveMethod {
	return &BellCurveMethod{}
}

func (m *BellCurveMethod) ID() scoring.MethodID { return scoring.MethodBellCurve }

func (m *BellCurveMethod) Name() string { return "Bell Curve Distance" }

func (m *BellCurveMethod) Description() string {
	return "Distance from the column mean in standard deviations, log-scaled to [0,1] against the largest distance"
}

// Compute takes no configuration; any given config is ignored
func (m *BellCurveMethod) Compute(col dataset.Column, values []core.NullFloat, _ []core.NullString, _ scoring.MethodConfig) Output {
	diag := newDiagnostics(m.ID(), col)
	data := extract.Valid(values)
	diag.ValidCount = len(data)

	if len(data) == 0 {
		diag.Warn(WarningEmptyColumn)
		return Output{Scores: nullScores(len(values)), Diagnostics: diag}
	}

	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)
	diag.Stats["mean"] = mean
	diag.Stats["std_dev"] = stdDev

	// Identical values can leave rounding noise in the standard deviation
	if floats.Min(data) == floats.Max(data) || stdDev == 0 || math.IsNaN(stdDev) {
		diag.Warn(WarningDegenerateSpread)
		return Output{Scores: zeroForValid(values), Diagnostics: diag}
	}

	maxZ := 0.0
	for _, x := range data {
		if z := math.Abs(x-mean) / stdDev; z > maxZ {
			maxZ = z
		}
	}
	diag.Stats["max_z"] = maxZ

	if maxZ == 0 {
		diag.Warn(WarningDegenerateSpread)
		return Output{Scores: zeroForValid(values), Diagnostics: diag}
	}

	denominator := math.Log1p(maxZ)
	scores := make([]core.NullFloat, len(values))
	for i, v := range values {
		if !v.Valid {
			continue
		}
		z := math.Abs(v.Value-mean) / stdDev
		scores[i] = core.Float(clamp01(math.Log1p(z) / denominator))
	}

	return Output{Scores: scores, Diagnostics: diag}
}
