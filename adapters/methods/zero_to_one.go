package methods

import (
	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/extract"
	"goscore/internal/methodconfig"

	"gonum.org/v1/gonum/floats"
)

// ZeroToOneMethod applies min-max normalization over the non-null values
type ZeroToOneMethod struct{}

// NewZeroToOneMethod creates the zero-to-one scaling method
func NewZeroToOneMethod() *ZeroToOneMethod {
	return &ZeroToOneMethod{}
}

func (m *ZeroToOneMethod) ID() scoring.MethodID { return scoring.MethodZeroToOne }

func (m *ZeroToOneMethod) Name() string { return "Zero To One" }

func (m *ZeroToOneMethod) Description() string {
	return "Rescales the column so its minimum is 0 and its maximum is 1"
}

func (m *ZeroToOneMethod) Compute(col dataset.Column, values []core.NullFloat, _ []core.NullString, cfg scoring.MethodConfig) Output {
	diag := newDiagnostics(m.ID(), col)

	c, ok := scoring.Deref(cfg).(scoring.ZeroToOneConfig)
	if !ok {
		c = methodconfig.Default(m.ID(), col).(scoring.ZeroToOneConfig)
		diag.Warn(WarningConfigDefaulted)
	}

	data := extract.Valid(values)
	diag.ValidCount = len(data)
	if len(data) == 0 {
		diag.Warn(WarningEmptyColumn)
		return Output{Scores: nullScores(len(values)), Diagnostics: diag}
	}

	lo, hi := floats.Min(data), floats.Max(data)
	diag.Stats["min"] = lo
	diag.Stats["max"] = hi

	if hi == lo {
		diag.Warn(WarningDegenerateSpread)
		return Output{Scores: zeroForValid(values), Diagnostics: diag}
	}

	span := hi - lo
	scores := make([]core.NullFloat, len(values))
	for i, v := range values {
		if !v.Valid {
			continue
		}
		scores[i] = core.Float(clamp01(applyScaling((v.Value-lo)/span, c.Scaling, c.Slope)))
	}

	return Output{Scores: scores, Diagnostics: diag}
}
