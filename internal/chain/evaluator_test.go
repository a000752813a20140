package chain

import (
	stderrors "errors"
	"testing"

	"goscore/adapters/methods"
	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	amount = dataset.Column{Key: "amount", Type: dataset.TypeNumeric, Average: dataset.Float64(20)}
	tier   = dataset.Column{Key: "tier", Type: dataset.TypeText}
)

func sampleRows() []dataset.Row {
	return []dataset.Row{
		{"amount": "10", "tier": "gold"},
		{"amount": "20", "tier": "silver"},
		{"amount": "", "tier": "gold"},
		{"amount": "40"},
	}
}

func TestEvaluate_NoSteps(t *testing.T) {
	res := Evaluate(sampleRows(), nil, nil)
	assert.Empty(t, res.Result)
	assert.NotNil(t, res.Result)
	assert.Empty(t, res.StepValues)
}

func TestEvaluate_SingleStepAppliesWeight(t *testing.T) {
	rows := sampleRows()
	step := scoring.Step{
		Column: amount,
		Method: scoring.MethodZeroToOne,
		Weight: 3,
		Config: scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1},
	}

	res := Evaluate(rows, []scoring.Step{step}, nil)

	require.Len(t, res.Result, len(rows))
	assert.Equal(t, res.StepValues[0], res.Result)
	assert.Equal(t, core.Float(0), res.Result[0])
	assert.InDelta(t, 1.0, res.Result[1].Value, 1e-12)
	assert.True(t, res.Result[2].IsNull())
	assert.Equal(t, core.Float(3), res.Result[3])
}

func TestEvaluate_NullStepDropsOutOfSum(t *testing.T) {
	// Step A: flag on tier scores 1 for gold rows. Step B: zero-to-one on
	// amount is null on row 2.
	rows := sampleRows()
	steps := []scoring.Step{
		{Column: tier, Method: scoring.MethodConditionalFlag, Weight: 2, Config: scoring.ConditionalFlagConfig{Mode: scoring.FlagBinary, TrueValue: "gold"}},
		{Column: amount, Method: scoring.MethodZeroToOne, Weight: 1, Config: scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}},
	}

	res := Evaluate(rows, steps, []scoring.Operator{scoring.OpAdd})

	require.Len(t, res.StepValues, 2)
	assert.Equal(t, core.Float(2), res.Result[0])
	assert.Equal(t, core.Float(2), res.Result[2], "null right-hand term is dropped")
	assert.InDelta(t, 1.0, res.Result[3].Value, 1e-12)
}

func TestEvaluate_WeightedSumScenario(t *testing.T) {
	rows := []dataset.Row{{"a": "5", "b": ""}, {"a": "10", "b": "1"}, {"a": "0", "b": "2"}}
	colA := dataset.Column{Key: "a", Type: dataset.TypeNumeric}
	colB := dataset.Column{Key: "b", Type: dataset.TypeNumeric}
	steps := []scoring.Step{
		{Column: colA, Method: scoring.MethodZeroToOne, Weight: 2, Config: scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}},
		{Column: colB, Method: scoring.MethodZeroToOne, Weight: 1, Config: scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}},
	}

	res := Evaluate(rows, steps, []scoring.Operator{scoring.OpAdd})

	// Row 0: A = 0.5 * 2, B is null
	assert.Equal(t, core.Float(1.0), res.Result[0])
	assert.True(t, res.StepValues[1][0].IsNull())
}

func TestEvaluate_UnknownMethodIsAllNull(t *testing.T) {
	rows := sampleRows()
	steps := []scoring.Step{
		{Column: amount, Method: "median_polish", Weight: 1},
		{Column: amount, Method: scoring.MethodZeroToOne, Weight: 1, Config: scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}},
	}

	res := Evaluate(rows, steps, []scoring.Operator{scoring.OpMultiply})

	for _, v := range res.StepValues[0] {
		assert.True(t, v.IsNull())
	}
	assert.True(t, res.Diagnostics[0].HasWarning(methods.WarningUnsupportedMethod))
	assert.Equal(t, res.StepValues[1], res.Result, "null terms pass the other operand through")
}

func TestEvaluate_MissingOperatorDefaultsToAdd(t *testing.T) {
	rows := []dataset.Row{{"a": "1"}, {"a": "3"}}
	col := dataset.Column{Key: "a", Type: dataset.TypeNumeric}
	step := scoring.Step{Column: col, Method: scoring.MethodZeroToOne, Weight: 1, Config: scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}}

	res := Evaluate(rows, []scoring.Step{step, step}, nil)

	assert.Equal(t, []core.NullFloat{core.Float(0), core.Float(2)}, res.Result)
}

func TestEvaluate_DivisionByZeroIsNull(t *testing.T) {
	rows := []dataset.Row{{"a": "1", "b": "0"}, {"a": "3", "b": "5"}}
	a := dataset.Column{Key: "a", Type: dataset.TypeNumeric}
	b := dataset.Column{Key: "b", Type: dataset.TypeNumeric}
	steps := []scoring.Step{
		{Column: a, Method: scoring.MethodZeroToOne, Weight: 1, Config: scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}},
		{Column: b, Method: scoring.MethodZeroToOne, Weight: 1, Config: scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}},
	}

	res := Evaluate(rows, steps, []scoring.Operator{scoring.OpDivide})

	assert.True(t, res.Result[0].IsNull())
	assert.Equal(t, core.Float(1), res.Result[1])
}

func TestCombine(t *testing.T) {
	five, two, zero, null := core.Float(5), core.Float(2), core.Float(0), core.Null()

	tests := []struct {
		name     string
		a, b     core.NullFloat
		op       scoring.Operator
		expected core.NullFloat
	}{
		{"add", five, two, scoring.OpAdd, core.Float(7)},
		{"subtract", five, two, scoring.OpSubtract, core.Float(3)},
		{"multiply", five, two, scoring.OpMultiply, core.Float(10)},
		{"divide", five, two, scoring.OpDivide, core.Float(2.5)},
		{"divide by zero", five, zero, scoring.OpDivide, null},
		{"divide by null", five, null, scoring.OpDivide, null},
		{"null divided", null, five, scoring.OpDivide, null},
		{"null plus", null, five, scoring.OpAdd, five},
		{"minus null", five, null, scoring.OpSubtract, five},
		{"null minus", null, five, scoring.OpSubtract, five},
		{"null times", null, two, scoring.OpMultiply, two},
		{"both null", null, null, scoring.OpAdd, null},
		{"both null divide", null, null, scoring.OpDivide, null},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Combine(test.a, test.b, test.op))
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	rows := []dataset.Row{{"a": "1"}, {"a": "2"}}
	col := dataset.Column{Key: "a", Type: dataset.TypeNumeric}
	steps := []scoring.Step{
		scoring.NewStep(col, scoring.MethodBellCurve, nil),
		scoring.NewStep(col, scoring.MethodZeroToOne, scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}),
	}

	first := Evaluate(rows, steps, []scoring.Operator{scoring.OpAdd})
	second := Evaluate(rows, steps, []scoring.Operator{scoring.OpAdd})

	assert.Equal(t, first, second, "evaluation is deterministic and keeps no state between calls")
}

func TestValidateChain(t *testing.T) {
	good := scoring.NewStep(amount, scoring.MethodZeroToOne, nil)

	_, err := ValidateChain(scoring.Chain{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationError, errors.GetCode(err))

	_, err = ValidateChain(scoring.Chain{Steps: []scoring.Step{good, good}})
	assert.ErrorIs(t, err, core.ErrInvalidChain)

	_, err = ValidateChain(scoring.Chain{Steps: []scoring.Step{good, good}, Operators: []scoring.Operator{"%"}})
	assert.ErrorIs(t, err, core.ErrInvalidChain)

	bad := scoring.NewStep(tier, scoring.MethodBellCurve, nil)
	_, err = ValidateChain(scoring.Chain{Steps: []scoring.Step{good, bad}, Operators: []scoring.Operator{scoring.OpAdd}})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, core.ErrNonNumericColumn))
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
	assert.Contains(t, err.Error(), "step 2")

	validated, err := ValidateChain(scoring.Chain{Steps: []scoring.Step{good}})
	require.NoError(t, err)
	assert.Equal(t, scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: 1}, validated.Steps[0].Config)
}

func TestValidateThenEvaluate_NeverPanics(t *testing.T) {
	rows := append(sampleRows(), dataset.Row{"amount": "1e999"}, dataset.Row{})
	var steps []scoring.Step
	var ops []scoring.Operator
	for i, id := range scoring.MethodIDs() {
		steps = append(steps, scoring.NewStep(amount, id, nil))
		if i > 0 {
			ops = append(ops, []scoring.Operator{scoring.OpAdd, scoring.OpSubtract, scoring.OpMultiply, scoring.OpDivide}[i%4])
		}
	}

	validated, err := ValidateChain(EnsureChain(scoring.Chain{Steps: steps, Operators: ops}))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		res := EvaluateChain(rows, validated)
		assert.Len(t, res.Result, len(rows))
		assert.Len(t, res.StepValues, len(steps))
	})
}
