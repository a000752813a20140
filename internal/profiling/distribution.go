package profiling

import (
	"goscore/domain/core"
	"goscore/internal/extract"

	"github.com/montanaflynn/stats"
)

// Summary holds the aggregates a column descriptor can carry
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes summary statistics over the non-null values. It fails
// only when there are no values.
func Summarize(values []core.NullFloat) (Summary, error) {
	data := extract.Valid(values)
	summary := Summary{Count: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.Median = median
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max

	return summary, nil
}
