package methods

import (
	"math"
	"strings"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/methodconfig"
)

// ConditionalFlagMethod emits 1 when a row meets a condition and 0 otherwise.
// It never emits null: a missing measurement counts as "condition not met".
type ConditionalFlagMethod struct{}

// NewConditionalFlagMethod creates the conditional flag method
func NewConditionalFlagMethod() *ConditionalFlagMethod {
	return &ConditionalFlagMethod{}
}

func (m *ConditionalFlagMethod) ID() scoring.MethodID { return scoring.MethodConditionalFlag }

func (m *ConditionalFlagMethod) Name() string { return "Conditional Flag" }

func (m *ConditionalFlagMethod) Description() string {
	return "1 when the cell is true, matches a value, or falls above, below or within numeric bounds; otherwise 0"
}

func (m *ConditionalFlagMethod) Compute(col dataset.Column, values []core.NullFloat, raw []core.NullString, cfg scoring.MethodConfig) Output {
	diag := newDiagnostics(m.ID(), col)

	c, ok := scoring.Deref(cfg).(scoring.ConditionalFlagConfig)
	if !ok {
		c = methodconfig.Default(m.ID(), col).(scoring.ConditionalFlagConfig)
		diag.Warn(WarningConfigDefaulted)
	}

	n := len(values)
	if len(raw) > n {
		n = len(raw)
	}

	lo, hi := math.Min(c.Min, c.Max), math.Max(c.Min, c.Max)
	trueValue := strings.ToLower(strings.TrimSpace(c.TrueValue))

	scores := make([]core.NullFloat, n)
	hits := 0
	for i := range scores {
		var met bool
		switch c.Mode {
		case scoring.FlagBoolean:
			met = strings.ToLower(strings.TrimSpace(cellText(raw, i))) == "true"
		case scoring.FlagBinary:
			text := strings.ToLower(strings.TrimSpace(cellText(raw, i)))
			met = text != "" && text == trueValue
		case scoring.FlagMin, scoring.FlagMax, scoring.FlagRange:
			v, valid := numberAt(values, i)
			if valid {
				diag.ValidCount++
			}
			switch {
			case !valid:
				met = false
			case c.Mode == scoring.FlagMin:
				met = v >= c.Threshold
			case c.Mode == scoring.FlagMax:
				met = v <= c.Threshold
			default:
				met = v >= lo && v <= hi
			}
		}

		if met {
			scores[i] = core.Float(1)
			hits++
		} else {
			scores[i] = core.Float(0)
		}
	}

	if !c.Mode.Numeric() {
		for i := range scores {
			if cellText(raw, i) != "" {
				diag.ValidCount++
			}
		}
	}
	diag.Stats["flagged"] = float64(hits)

	return Output{Scores: scores, Diagnostics: diag}
}

func cellText(raw []core.NullString, i int) string {
	if i >= len(raw) || !raw[i].Valid {
		return ""
	}
	return raw[i].Text
}

func numberAt(values []core.NullFloat, i int) (float64, bool) {
	if i >= len(values) || !values[i].Valid {
		return 0, false
	}
	v := values[i].Value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
