package methods

import (
	"math"

	"goscore/domain/scoring"
)

// applyScaling maps a normalized distance onto the configured curve.
// Logarithmic is a concave ramp log1p(slope*d)/log1p(slope); without a usable
// slope it degrades to linear.
func applyScaling(d float64, scaling scoring.Scaling, slope float64) float64 {
	switch scaling {
	case scoring.ScalingExponential:
		return d * d
	case scoring.ScalingLogarithmic:
		if slope <= 0 || math.IsNaN(slope) || math.IsInf(slope, 0) || d <= 0 {
			return d
		}
		return math.Log1p(slope*d) / math.Log1p(slope)
	default:
		return d
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
