package ports

import (
	"context"

	"goscore/domain/dataset"
)

// TableReader loads datasets and their column summaries from files
type TableReader interface {
	ReadTable(ctx context.Context, path string) (*dataset.Table, error)
	// ReadSummary returns column descriptors keyed by column name. Fields the
	// file leaves blank stay zero so they do not override profiling.
	ReadSummary(ctx context.Context, path string) ([]dataset.Column, error)
}

// TableWriter persists a materialized table
type TableWriter interface {
	WriteTable(ctx context.Context, path string, table *dataset.Table) error
}
