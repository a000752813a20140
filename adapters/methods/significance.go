package methods

import (
	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/methodconfig"

	"gonum.org/v1/gonum/stat/distuv"
)

// SignificanceMethod flags values at or below the configured significance
// level. Mode and tail only feed the reported critical value; the score is
// the plain threshold comparison.
type SignificanceMethod struct{}

// NewSignificanceMethod creates the significance flag method
func NewSignificanceMethod() *SignificanceMethod {
	return &SignificanceMethod{}
}

func (m *SignificanceMethod) ID() scoring.MethodID { return scoring.MethodSignificance }

func (m *SignificanceMethod) Name() string { return "Significance Flag" }

func (m *SignificanceMethod) Description() string {
	return "Flags values at or below the significance level (1 significant, 0 otherwise, or inverted)"
}

func (m *SignificanceMethod) Compute(col dataset.Column, values []core.NullFloat, _ []core.NullString, cfg scoring.MethodConfig) Output {
	diag := newDiagnostics(m.ID(), col)

	c, ok := scoring.Deref(cfg).(scoring.SignificanceConfig)
	if !ok {
		c = methodconfig.Default(m.ID(), col).(scoring.SignificanceConfig)
		diag.Warn(WarningConfigDefaulted)
	}

	diag.Stats["significance_level"] = c.SignificanceLevel
	if z, ok := criticalZ(c); ok {
		diag.Stats["critical_z"] = z
	}

	hit, miss := 1.0, 0.0
	if !c.FlagSignificant {
		hit, miss = 0.0, 1.0
	}

	scores := make([]core.NullFloat, len(values))
	significant := 0
	for i, v := range values {
		if !v.Valid {
			continue
		}
		diag.ValidCount++
		if v.Value <= c.SignificanceLevel {
			significant++
			scores[i] = core.Float(hit)
		} else {
			scores[i] = core.Float(miss)
		}
	}
	diag.Stats["significant"] = float64(significant)

	return Output{Scores: scores, Diagnostics: diag}
}

// criticalZ is the standard normal critical value matching the configured
// level, mode and tail
func criticalZ(c scoring.SignificanceConfig) (float64, bool) {
	alpha := c.SignificanceLevel / 100
	if !(alpha > 0 && alpha < 1) {
		return 0, false
	}
	if c.Mode == scoring.SignificanceOneSided {
		if c.Tail == scoring.TailLower {
			return distuv.UnitNormal.Quantile(alpha), true
		}
		return distuv.UnitNormal.Quantile(1 - alpha), true
	}
	return distuv.UnitNormal.Quantile(1 - alpha/2), true
}
