package excel

import (
	"context"

	"goscore/domain/dataset"
	"goscore/internal/errors"
	"goscore/ports"
)

// Store adapts DataReader and DataWriter to the table ports
type Store struct {
	config Config
}

var (
	_ ports.TableReader = (*Store)(nil)
	_ ports.TableWriter = (*Store)(nil)
)

// NewStore creates a file-backed table store
func NewStore(config Config) *Store {
	return &Store{config: config}
}

// ReadTable loads a CSV or XLSX dataset
func (s *Store) ReadTable(ctx context.Context, path string) (*dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table, err := NewDataReader(path, s.config).ReadData()
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}
	return table, nil
}

// ReadSummary loads column descriptors from a summary file
func (s *Store) ReadSummary(ctx context.Context, path string) ([]dataset.Column, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	columns, err := NewDataReader(path, s.config).ReadSummary()
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}
	return columns, nil
}

// WriteTable writes the table, choosing CSV or XLSX by extension
func (s *Store) WriteTable(ctx context.Context, path string, table *dataset.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := NewDataWriter(path, s.config).WriteData(table); err != nil {
		return errors.Wrap(err, "failed to write table")
	}
	return nil
}
