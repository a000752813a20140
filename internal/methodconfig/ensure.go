package methodconfig

import (
	"math"
	"strings"

	"goscore/domain/dataset"
	"goscore/domain/scoring"
)

// Ensure repairs cfg so it plausibly fits method on col. It never fails: a nil
// or mismatched config is replaced by Default, and individual fields that are
// unknown, non-finite or out of range are reset.
func Ensure(method scoring.MethodID, col dataset.Column, cfg scoring.MethodConfig) scoring.MethodConfig {
	cfg = scoring.Deref(cfg)
	if cfg == nil || cfg.Method() != method {
		return Default(method, col)
	}

	switch c := cfg.(type) {
	case scoring.ConditionalFlagConfig:
		return ensureFlag(col, c)
	case scoring.OneSidedConfig:
		if !c.BaselineMode.Valid() {
			c.BaselineMode = scoring.BaselineAverage
		}
		c.BaselineValue = Baseline(col, c.BaselineMode, c.BaselineValue)
		if !c.Side.Valid() {
			c.Side = scoring.SideRight
		}
		c.Scaling = ensureScaling(c.Scaling)
		c.Slope = ensureSlope(c.Slope)
		return c
	case scoring.ZeroToOneConfig:
		c.Scaling = ensureScaling(c.Scaling)
		c.Slope = ensureSlope(c.Slope)
		return c
	case scoring.DistributionConfig:
		if c.Buckets < 2 {
			c.Buckets = DefaultBuckets
		}
		c.Scaling = ensureScaling(c.Scaling)
		c.Slope = ensureSlope(c.Slope)
		if !c.Reward.Valid() {
			c.Reward = scoring.RewardLeast
		}
		return c
	case scoring.SignificanceConfig:
		if !finite(c.SignificanceLevel) || c.SignificanceLevel <= 0 || c.SignificanceLevel >= 100 {
			c.SignificanceLevel = DefaultSignificanceLevel
		}
		if !c.Mode.Valid() {
			c.Mode = scoring.SignificanceTwoSided
		}
		if !c.Tail.Valid() {
			c.Tail = scoring.TailUpper
		}
		return c
	}
	return Default(method, col)
}

func ensureFlag(col dataset.Column, c scoring.ConditionalFlagConfig) scoring.MethodConfig {
	if !c.Mode.Valid() {
		return Default(scoring.MethodConditionalFlag, col)
	}

	if c.Mode.Numeric() && !col.Type.IsNumeric() {
		if col.Type == dataset.TypeBoolean {
			c.Mode = scoring.FlagBoolean
		} else {
			c.Mode = scoring.FlagBinary
		}
	}

	switch c.Mode {
	case scoring.FlagBinary:
		if strings.TrimSpace(c.TrueValue) == "" {
			c.TrueValue = DefaultTrueValue
		}
	case scoring.FlagMin, scoring.FlagMax:
		if !finite(c.Threshold) {
			c.Threshold = Fallback(col)
		}
	case scoring.FlagRange:
		if !finite(c.Min) {
			c.Min = Fallback(col)
		}
		if !finite(c.Max) {
			c.Max = Fallback(col)
		}
		if c.Min > c.Max {
			c.Min, c.Max = c.Max, c.Min
		}
	}
	return c
}

func ensureScaling(s scoring.Scaling) scoring.Scaling {
	if parsed, ok := scoring.ParseScaling(string(s)); ok {
		return parsed
	}
	return scoring.ScalingLinear
}

func ensureSlope(slope float64) float64 {
	if math.IsNaN(slope) || math.IsInf(slope, 0) || slope <= 0 {
		return DefaultSlope
	}
	return slope
}
