package methodconfig

import (
	"fmt"
	"strings"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/errors"
)

// Validate checks cfg for method on col and returns the config to use. A nil
// config on a configurable method is replaced by Default before checking.
// Failures carry CONFIG_INVALID, or UNSUPPORTED_METHOD for unknown methods,
// and are never corrected here.
func Validate(method scoring.MethodID, col dataset.Column, cfg scoring.MethodConfig) (scoring.MethodConfig, error) {
	if !method.Known() {
		return nil, errors.WithCode(errors.CodeUnsupportedMethod,
			fmt.Errorf("%w: %q", core.ErrUnsupportedMethod, method))
	}

	cfg = scoring.Deref(cfg)
	if method.NumericOnly() && !col.Type.IsNumeric() {
		return nil, invalid(fmt.Errorf("%w: %s is %s", core.ErrNonNumericColumn, col.Key, col.Type))
	}

	if method == scoring.MethodBellCurve {
		if cfg != nil {
			return nil, invalid(fmt.Errorf("%w: %s takes no configuration", core.ErrConfigMismatch, method))
		}
		return nil, nil
	}

	if cfg == nil {
		cfg = Default(method, col)
	}
	if cfg.Method() != method {
		return nil, invalid(fmt.Errorf("%w: %s config given for %s", core.ErrConfigMismatch, cfg.Method(), method))
	}

	var err error
	switch c := cfg.(type) {
	case scoring.ConditionalFlagConfig:
		err = validateFlag(col, c)
	case scoring.OneSidedConfig:
		err = validateOneSided(c)
	case scoring.ZeroToOneConfig:
		err = validateCurve(c.Scaling, c.Slope)
	case scoring.DistributionConfig:
		err = validateDistribution(c)
	case scoring.SignificanceConfig:
		err = validateSignificance(c)
	default:
		err = core.NewConfigError("config", fmt.Sprintf("has unexpected type %T", cfg))
	}
	if err != nil {
		return nil, invalid(err)
	}
	return cfg, nil
}

func validateFlag(col dataset.Column, c scoring.ConditionalFlagConfig) error {
	if !c.Mode.Valid() {
		return core.NewConfigError("mode", fmt.Sprintf("%q is not one of boolean, binary, min, max, range", c.Mode))
	}
	if c.Mode.Numeric() && !col.Type.IsNumeric() {
		return fmt.Errorf("%w: %s mode on %s column %s", core.ErrNonNumericColumn, c.Mode, col.Type, col.Key)
	}

	switch c.Mode {
	case scoring.FlagBinary:
		if strings.TrimSpace(c.TrueValue) == "" {
			return core.NewConfigError("trueValue", "must not be empty")
		}
	case scoring.FlagMin, scoring.FlagMax:
		if !finite(c.Threshold) {
			return core.NewConfigError("threshold", "must be a finite number")
		}
	case scoring.FlagRange:
		if !finite(c.Min) || !finite(c.Max) {
			return core.NewConfigError("min/max", "must be finite numbers")
		}
	}
	return nil
}

func validateOneSided(c scoring.OneSidedConfig) error {
	if !c.BaselineMode.Valid() {
		return core.NewConfigError("baselineMode", fmt.Sprintf("%q is not one of average, median, custom", c.BaselineMode))
	}
	if !finite(c.BaselineValue) {
		return core.NewConfigError("baselineValue", "must be a finite number")
	}
	if !c.Side.Valid() {
		return core.NewConfigError("side", fmt.Sprintf("%q is not one of left, right", c.Side))
	}
	return validateCurve(c.Scaling, c.Slope)
}

func validateDistribution(c scoring.DistributionConfig) error {
	if c.Buckets < 2 {
		return core.NewConfigError("buckets", fmt.Sprintf("must be at least 2, got %d", c.Buckets))
	}
	if !c.Reward.Valid() {
		return core.NewConfigError("reward", fmt.Sprintf("%q is not one of least, most", c.Reward))
	}
	return validateCurve(c.Scaling, c.Slope)
}

func validateSignificance(c scoring.SignificanceConfig) error {
	if !finite(c.SignificanceLevel) || c.SignificanceLevel <= 0 || c.SignificanceLevel >= 100 {
		return core.NewConfigError("significanceLevel", fmt.Sprintf("must be between 0 and 100 exclusive, got %v", c.SignificanceLevel))
	}
	if !c.Mode.Valid() {
		return core.NewConfigError("mode", fmt.Sprintf("%q is not one of one-sided, two-sided", c.Mode))
	}
	if c.Mode == scoring.SignificanceOneSided && !c.Tail.Valid() {
		return core.NewConfigError("tail", fmt.Sprintf("%q is not one of upper, lower", c.Tail))
	}
	return nil
}

func validateCurve(scaling scoring.Scaling, slope float64) error {
	if !scaling.Valid() {
		return core.NewConfigError("scaling", fmt.Sprintf("%q is not one of linear, exponential, logarithmic", scaling))
	}
	if !finite(slope) || slope <= 0 {
		return core.NewConfigError("slope", fmt.Sprintf("must be greater than 0, got %v", slope))
	}
	return nil
}

func invalid(err error) error {
	return errors.WithCode(errors.CodeConfigInvalid, err)
}
