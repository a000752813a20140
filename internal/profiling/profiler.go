package profiling

import (
	"goscore/domain/dataset"
	"goscore/internal"
	"goscore/internal/extract"
)

// ColumnProfiler fills in the column descriptors a dataset arrived without
type ColumnProfiler struct {
	config           InferenceConfig
	deriveAggregates bool
	logger           *internal.Logger
}

// NewColumnProfiler creates a profiler. With deriveAggregates set, numeric
// columns lacking an average or median get one computed from the rows.
func NewColumnProfiler(config InferenceConfig, deriveAggregates bool) *ColumnProfiler {
	return &ColumnProfiler{
		config:           config,
		deriveAggregates: deriveAggregates,
		logger:           internal.DefaultLogger.With("ColumnProfiler"),
	}
}

// ProfileTable infers missing column types and, if enabled, missing
// aggregates. Declared types and supplied aggregates are never overwritten.
func (p *ColumnProfiler) ProfileTable(table *dataset.Table) {
	for i, col := range table.Columns {
		if col.Type == "" {
			analysis := AnalyzeTypeDistribution(extract.ExtractRawColumn(table.Rows, col.Key), p.config)
			col.Type = analysis.RecommendedType
		}

		if p.deriveAggregates && col.Type.IsNumeric() && (!col.HasAverage() || !col.HasMedian()) {
			summary, err := Summarize(extract.ExtractColumn(table.Rows, col.Key))
			if err != nil {
				p.logger.Warn("No numeric values in %s, leaving aggregates empty", col.Key)
			} else {
				if !col.HasAverage() {
					col.Average = dataset.Float64(summary.Mean)
				}
				if !col.HasMedian() {
					col.Median = dataset.Float64(summary.Median)
				}
			}
		}

		table.Columns[i] = col
	}
}
