package chain

import (
	"fmt"
	"math"

	"goscore/domain/core"
	"goscore/domain/scoring"
	"goscore/internal/errors"
	"goscore/internal/methodconfig"
)

// ValidateChain is the gate before evaluation. It checks the chain shape and
// validates every step's config, returning the chain with the accepted configs
// in place.
func ValidateChain(c scoring.Chain) (scoring.Chain, error) {
	if len(c.Steps) == 0 {
		return c, invalidChain("at least one step is required")
	}
	if len(c.Operators) != len(c.Steps)-1 {
		return c, invalidChain(fmt.Sprintf("%d steps need %d operators, got %d", len(c.Steps), len(c.Steps)-1, len(c.Operators)))
	}
	for i, op := range c.Operators {
		if !op.Valid() {
			return c, invalidChain(fmt.Sprintf("operator %d: unknown operator %q", i+1, op))
		}
	}

	validated := scoring.Chain{
		Steps:     make([]scoring.Step, len(c.Steps)),
		Operators: append([]scoring.Operator(nil), c.Operators...),
	}
	for i, step := range c.Steps {
		if math.IsNaN(step.Weight) || math.IsInf(step.Weight, 0) {
			return c, invalidChain(fmt.Sprintf("step %d: weight must be finite", i+1))
		}
		cfg, err := methodconfig.Validate(step.Method, step.Column, step.Config)
		if err != nil {
			return c, errors.Wrapf(err, "step %d (%s on %s)", i+1, step.Method, step.Column.Key)
		}
		step.Config = cfg
		validated.Steps[i] = step
	}
	return validated, nil
}

// EnsureChain repairs every step's config against its current column
func EnsureChain(c scoring.Chain) scoring.Chain {
	ensured := scoring.Chain{
		Steps:     make([]scoring.Step, len(c.Steps)),
		Operators: append([]scoring.Operator(nil), c.Operators...),
	}
	for i, step := range c.Steps {
		step.Config = methodconfig.Ensure(step.Method, step.Column, step.Config)
		ensured.Steps[i] = step
	}
	return ensured
}

func invalidChain(reason string) error {
	return errors.WithCode(errors.CodeValidationError, core.NewChainError(reason))
}
