package methods

import (
	"math"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/extract"
	"goscore/internal/methodconfig"

	"gonum.org/v1/gonum/floats"
)

// OneSidedMethod rewards distance from a baseline on one side only. Values on
// the other side of the baseline score 0.
type OneSidedMethod struct{}

// NewOneSidedMethod creates the one-sided distance method
func NewOneSidedMethod() *OneSidedMethod {
	return &OneSidedMethod{}
}

func (m *OneSidedMethod) ID() scoring.MethodID { return scoring.MethodOneSided }

func (m *OneSidedMethod) Name() string { return "One-Sided Distance" }

func (m *OneSidedMethod) Description() string {
	return "Distance above or below a baseline (average, median or custom), relative to the most extreme value on that side"
}

func (m *OneSidedMethod) Compute(col dataset.Column, values []core.NullFloat, _ []core.NullString, cfg scoring.MethodConfig) Output {
	diag := newDiagnostics(m.ID(), col)

	c, ok := scoring.Deref(cfg).(scoring.OneSidedConfig)
	if !ok {
		c = methodconfig.Default(m.ID(), col).(scoring.OneSidedConfig)
		diag.Warn(WarningConfigDefaulted)
	}

	data := extract.Valid(values)
	diag.ValidCount = len(data)
	if len(data) == 0 {
		diag.Warn(WarningEmptyColumn)
		return Output{Scores: nullScores(len(values)), Diagnostics: diag}
	}

	baseline := methodconfig.Baseline(col, c.BaselineMode, c.BaselineValue)

	var extreme float64
	if c.Side == scoring.SideLeft {
		extreme = math.Min(baseline, floats.Min(data))
	} else {
		extreme = math.Max(baseline, floats.Max(data))
	}

	denominator := math.Abs(extreme - baseline)
	diag.Stats["baseline"] = baseline
	diag.Stats["extreme"] = extreme

	if !(denominator > 0) {
		diag.Warn(WarningDegenerateSpread)
		return Output{Scores: zeroForValid(values), Diagnostics: diag}
	}

	scores := make([]core.NullFloat, len(values))
	for i, v := range values {
		if !v.Valid {
			continue
		}
		onSide := v.Value > baseline
		if c.Side == scoring.SideLeft {
			onSide = v.Value < baseline
		}
		if !onSide {
			scores[i] = core.Float(0)
			continue
		}
		distance := math.Abs(v.Value-baseline) / denominator
		scores[i] = core.Float(clamp01(applyScaling(distance, c.Scaling, c.Slope)))
	}

	return Output{Scores: scores, Diagnostics: diag}
}
