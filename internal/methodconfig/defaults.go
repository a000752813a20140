// Package methodconfig builds, repairs and validates per-step method
// configuration. Validate is the gate before a step joins a chain; Ensure is
// the best-effort repair used when a saved config is attached to a different
// column, and is always followed by Validate before use.
package methodconfig

import (
	"math"

	"goscore/domain/dataset"
	"goscore/domain/scoring"
)

// Default values for new configurations
const (
	DefaultSlope             = 1.0
	DefaultBuckets           = 10
	DefaultSignificanceLevel = 5.0
	DefaultTrueValue         = "true"
)

// Default returns a fresh configuration for method on col. Methods without
// configuration, and unknown methods, return nil.
func Default(method scoring.MethodID, col dataset.Column) scoring.MethodConfig {
	switch method {
	case scoring.MethodConditionalFlag:
		switch {
		case col.Type == dataset.TypeBoolean:
			return scoring.ConditionalFlagConfig{Mode: scoring.FlagBoolean}
		case col.Type.IsNumeric():
			return scoring.ConditionalFlagConfig{Mode: scoring.FlagMin, Threshold: Fallback(col)}
		default:
			return scoring.ConditionalFlagConfig{Mode: scoring.FlagBinary, TrueValue: DefaultTrueValue}
		}
	case scoring.MethodOneSided:
		return scoring.OneSidedConfig{
			BaselineMode:  scoring.BaselineAverage,
			BaselineValue: Baseline(col, scoring.BaselineAverage, 0),
			Side:          scoring.SideRight,
			Scaling:       scoring.ScalingLinear,
			Slope:         DefaultSlope,
		}
	case scoring.MethodZeroToOne:
		return scoring.ZeroToOneConfig{Scaling: scoring.ScalingLinear, Slope: DefaultSlope}
	case scoring.MethodDistribution:
		return scoring.DistributionConfig{
			Buckets: DefaultBuckets,
			Scaling: scoring.ScalingLinear,
			Slope:   DefaultSlope,
			Reward:  scoring.RewardLeast,
		}
	case scoring.MethodSignificance:
		return scoring.SignificanceConfig{
			SignificanceLevel: DefaultSignificanceLevel,
			Mode:              scoring.SignificanceTwoSided,
			Tail:              scoring.TailUpper,
			FlagSignificant:   true,
		}
	}
	return nil
}

// Baseline resolves the one-sided reference point. An unavailable source falls
// back to the column average, then the median, then 0.
func Baseline(col dataset.Column, mode scoring.BaselineMode, custom float64) float64 {
	switch mode {
	case scoring.BaselineAverage:
		if col.Average != nil && finite(*col.Average) {
			return *col.Average
		}
	case scoring.BaselineMedian:
		if col.Median != nil && finite(*col.Median) {
			return *col.Median
		}
	case scoring.BaselineCustom:
		if finite(custom) {
			return custom
		}
	}
	return Fallback(col)
}

// Fallback returns the column average, else the median, else 0
func Fallback(col dataset.Column) float64 {
	if col.Average != nil && finite(*col.Average) {
		return *col.Average
	}
	if col.Median != nil && finite(*col.Median) {
		return *col.Median
	}
	return 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
