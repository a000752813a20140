package scoring

import (
	"strings"

	"goscore/domain/core"
	"goscore/domain/dataset"
)

// MethodID identifies one analysis method. The set is closed.
type MethodID string

const (
	MethodBellCurve       MethodID = "bell_curve"
	MethodConditionalFlag MethodID = "conditional_flag"
	MethodOneSided        MethodID = "one_sided_distance"
	MethodZeroToOne       MethodID = "zero_to_one"
	MethodDistribution    MethodID = "distribution_density"
	MethodSignificance    MethodID = "significance_flag"
)

// MethodIDs lists every method in display order
func MethodIDs() []MethodID {
	return []MethodID{
		MethodBellCurve,
		MethodConditionalFlag,
		MethodOneSided,
		MethodZeroToOne,
		MethodDistribution,
		MethodSignificance,
	}
}

// Known reports whether id is one of the defined methods
func (id MethodID) Known() bool {
	for _, m := range MethodIDs() {
		if m == id {
			return true
		}
	}
	return false
}

// NumericOnly reports whether the method needs a numeric column regardless of config
func (id MethodID) NumericOnly() bool {
	switch id {
	case MethodBellCurve, MethodOneSided, MethodZeroToOne, MethodDistribution, MethodSignificance:
		return true
	}
	return false
}

// Operator combines the running chain result with the next step
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// ParseOperator accepts symbols and their spelled-out names
func ParseOperator(s string) (Operator, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "plus":
		return OpAdd, true
	case "-", "subtract", "minus":
		return OpSubtract, true
	case "*", "x", "multiply", "times":
		return OpMultiply, true
	case "/", "divide":
		return OpDivide, true
	}
	return "", false
}

// Valid reports whether op is a known operator
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// DefaultWeight applies when a step carries no explicit weight
const DefaultWeight = 1.0

// Step binds one method to a column with a weight and optional config
type Step struct {
	Column dataset.Column `json:"column"`
	Method MethodID       `json:"method"`
	Weight float64        `json:"weight"`
	Config MethodConfig   `json:"config,omitempty"`
}

// NewStep creates a step with the default weight
func NewStep(column dataset.Column, method MethodID, config MethodConfig) Step {
	return Step{Column: column, Method: method, Weight: DefaultWeight, Config: config}
}

// Chain is an ordered sequence of steps joined by operators.
// Operators[k] combines the running result with Steps[k+1].
type Chain struct {
	Steps     []Step     `json:"steps"`
	Operators []Operator `json:"operators"`
}

// Columns returns the distinct column keys referenced by the chain, in first-use order
func (c Chain) Columns() []string {
	seen := make(map[string]bool, len(c.Steps))
	keys := make([]string, 0, len(c.Steps))
	for _, step := range c.Steps {
		if !seen[step.Column.Key] {
			seen[step.Column.Key] = true
			keys = append(keys, step.Column.Key)
		}
	}
	return keys
}

// Preset is a named, storable chain together with the output column it produces
type Preset struct {
	ID     core.PresetID `json:"id"`
	Name   string        `json:"name"`
	Column string        `json:"column"`
	Chain  Chain         `json:"chain"`
}

// OutputColumn returns the column name the preset materializes into
func (p Preset) OutputColumn() string {
	if p.Column != "" {
		return p.Column
	}
	return p.Name
}
