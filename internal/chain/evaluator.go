// Package chain evaluates analysis chains: each step scores one column, is
// weighted, and the step outputs are folded left to right through arithmetic
// operators.
package chain

import (
	"goscore/adapters/methods"
	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/extract"
)

// Result holds the combined scores and every weighted step output
type Result struct {
	Result      []core.NullFloat      `json:"result"`
	StepValues  [][]core.NullFloat    `json:"step_values"`
	Diagnostics []methods.Diagnostics `json:"diagnostics"`
}

// Evaluate runs steps over rows and combines them with operators. It never
// fails: configs are assumed validated, an unknown method contributes an
// all-null column, and degenerate data yields the documented fallback scores.
// A missing operator entry combines with addition. Zero steps yield an empty
// result.
func Evaluate(rows []dataset.Row, steps []scoring.Step, operators []scoring.Operator) Result {
	result := Result{
		Result:      []core.NullFloat{},
		StepValues:  make([][]core.NullFloat, 0, len(steps)),
		Diagnostics: make([]methods.Diagnostics, 0, len(steps)),
	}
	if len(steps) == 0 {
		return result
	}

	cache := extract.NewCache(rows)
	for _, step := range steps {
		values, diag := evaluateStep(cache, len(rows), step)
		result.StepValues = append(result.StepValues, values)
		result.Diagnostics = append(result.Diagnostics, diag)
	}

	acc := make([]core.NullFloat, len(rows))
	copy(acc, result.StepValues[0])
	for i := 1; i < len(result.StepValues); i++ {
		op := scoring.OpAdd
		if i-1 < len(operators) {
			op = operators[i-1]
		}
		next := result.StepValues[i]
		for r := range acc {
			acc[r] = Combine(acc[r], next[r], op)
		}
	}
	result.Result = acc

	return result
}

// EvaluateChain is Evaluate over a Chain value
func EvaluateChain(rows []dataset.Row, c scoring.Chain) Result {
	return Evaluate(rows, c.Steps, c.Operators)
}

func evaluateStep(cache *extract.Cache, n int, step scoring.Step) ([]core.NullFloat, methods.Diagnostics) {
	method, ok := methods.Lookup(step.Method)
	if !ok {
		diag := methods.Diagnostics{Method: step.Method, Column: step.Column.Key}
		diag.Warn(methods.WarningUnsupportedMethod)
		return make([]core.NullFloat, n), diag
	}

	key := step.Column.Key
	out := method.Compute(step.Column, cache.Numeric(key), cache.Raw(key), step.Config)

	weighted := make([]core.NullFloat, n)
	for i := 0; i < n && i < len(out.Scores); i++ {
		weighted[i] = out.Scores[i].Scale(step.Weight)
	}
	return weighted, out.Diagnostics
}

// Combine applies op to one row. A null operand is an absent term: the other
// operand is the result. Division is the exception and yields null when either
// side is null or the divisor is zero.
func Combine(a, b core.NullFloat, op scoring.Operator) core.NullFloat {
	if op == scoring.OpDivide {
		if !a.Valid || !b.Valid || b.Value == 0 {
			return core.Null()
		}
		return core.Float(a.Value / b.Value)
	}

	switch {
	case !a.Valid && !b.Valid:
		return core.Null()
	case !a.Valid:
		return b
	case !b.Valid:
		return a
	}

	switch op {
	case scoring.OpAdd:
		return core.Float(a.Value + b.Value)
	case scoring.OpSubtract:
		return core.Float(a.Value - b.Value)
	case scoring.OpMultiply:
		return core.Float(a.Value * b.Value)
	}
	return core.Null()
}
