package methods

import (
	"math"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal/extract"
	"goscore/internal/methodconfig"

	"gonum.org/v1/gonum/floats"
)

// DistributionMethod buckets the column into equal-width intervals and scores
// each row by how crowded its bucket is
type DistributionMethod struct{}

// NewDistributionMethod creates the distribution density method
func NewDistributionMethod() *DistributionMethod {
	return &DistributionMethod{}
}

func (m *DistributionMethod) ID() scoring.MethodID { return scoring.MethodDistribution }

func (m *DistributionMethod) Name() string { return "Distribution Density" }

func (m *DistributionMethod) Description() string {
	return "Rewards rows in the least or most populated equal-width buckets of the column's range"
}

// Histogram is an equal-width bucketing of [Min, Max]
type Histogram struct {
	Min    float64
	Max    float64
	Counts []int
}

// NewHistogram counts data into buckets equal-width intervals. Values equal to
// the maximum land in the last bucket; a zero-width range puts everything in
// the first.
func NewHistogram(data []float64, buckets int) Histogram {
	if buckets < 1 {
		buckets = 1
	}
	h := Histogram{Counts: make([]int, buckets)}
	if len(data) == 0 {
		return h
	}
	h.Min, h.Max = floats.Min(data), floats.Max(data)
	for _, v := range data {
		h.Counts[h.Bucket(v)]++
	}
	return h
}

// Bucket returns the bucket index for v
func (h Histogram) Bucket(v float64) int {
	n := len(h.Counts)
	span := h.Max - h.Min
	if !(span > 0) {
		return 0
	}
	// Scaling before dividing keeps interior boundaries exact
	idx := int(math.Floor((v - h.Min) * float64(n) / span))
	if idx >= n {
		return n - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}

// occupiedRange returns the smallest and largest non-zero bucket counts
func (h Histogram) occupiedRange() (int, int) {
	minC, maxC := 0, 0
	for _, c := range h.Counts {
		if c == 0 {
			continue
		}
		if minC == 0 || c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
	}
	return minC, maxC
}

func (m *DistributionMethod) Compute(col dataset.Column, values []core.NullFloat, _ []core.NullString, cfg scoring.MethodConfig) Output {
	diag := newDiagnostics(m.ID(), col)

	c, ok := scoring.Deref(cfg).(scoring.DistributionConfig)
	if !ok || c.Buckets < 2 {
		c = methodconfig.Default(m.ID(), col).(scoring.DistributionConfig)
		diag.Warn(WarningConfigDefaulted)
	}

	data := extract.Valid(values)
	diag.ValidCount = len(data)
	if len(data) == 0 {
		diag.Warn(WarningEmptyColumn)
		return Output{Scores: nullScores(len(values)), Diagnostics: diag}
	}

	hist := NewHistogram(data, c.Buckets)
	diag.BucketCounts = hist.Counts
	minC, maxC := hist.occupiedRange()
	diag.Stats["min_count"] = float64(minC)
	diag.Stats["max_count"] = float64(maxC)

	flat := minC == maxC
	if flat {
		diag.Warn(WarningDegenerateSpread)
	}

	scores := make([]core.NullFloat, len(values))
	for i, v := range values {
		if !v.Valid {
			continue
		}

		// A flat distribution has no least-populated bucket
		if flat {
			if c.Reward == scoring.RewardLeast {
				scores[i] = core.Float(0)
			} else {
				scores[i] = core.Float(1)
			}
			continue
		}

		count := float64(hist.Counts[hist.Bucket(v.Value)])
		d := countPosition(count, float64(minC), float64(maxC))
		if c.Reward == scoring.RewardLeast {
			d = 1 - d
		}
		scores[i] = core.Float(clamp01(applyScaling(d, c.Scaling, c.Slope)))
	}

	return Output{Scores: scores, Diagnostics: diag}
}

// countPosition places count linearly between minC and maxC
func countPosition(count, minC, maxC float64) float64 {
	return (count - minC) / (maxC - minC)
}
