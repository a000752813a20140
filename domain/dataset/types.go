package dataset

import (
	"strings"

	"goscore/domain/core"
)

// ColumnType is the declared data type of a column
type ColumnType string

const (
	TypeNumeric  ColumnType = "numeric"
	TypeInteger  ColumnType = "integer"
	TypePercent  ColumnType = "percent"
	TypeRatio    ColumnType = "ratio"
	TypeCurrency ColumnType = "currency"
	TypeText     ColumnType = "text"
	TypeCategory ColumnType = "category"
	TypeBoolean  ColumnType = "boolean"
	TypeDate     ColumnType = "date"
)

// IsNumeric reports whether values of this type are compared as numbers
func (t ColumnType) IsNumeric() bool {
	switch t {
	case TypeNumeric, TypeInteger, TypePercent, TypeRatio, TypeCurrency:
		return true
	}
	return false
}

// IsTextual reports whether values of this type are compared as text
func (t ColumnType) IsTextual() bool {
	return t == TypeText || t == TypeCategory
}

// ParseColumnType normalizes a declared type name. Unknown names map to text.
func ParseColumnType(s string) ColumnType {
	switch ColumnType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeNumeric, "number", "float", "decimal":
		return TypeNumeric
	case TypeInteger, "int":
		return TypeInteger
	case TypePercent, "percentage":
		return TypePercent
	case TypeRatio:
		return TypeRatio
	case TypeCurrency, "money":
		return TypeCurrency
	case TypeCategory, "categorical":
		return TypeCategory
	case TypeBoolean, "bool":
		return TypeBoolean
	case TypeDate, "datetime", "timestamp":
		return TypeDate
	default:
		return TypeText
	}
}

// Column describes one column of a loaded dataset. Average and Median are
// precomputed by whoever loads the dataset and may be absent.
type Column struct {
	Key         string     `json:"key"`
	Type        ColumnType `json:"type"`
	Average     *float64   `json:"average,omitempty"`
	Median      *float64   `json:"median,omitempty"`
	Description string     `json:"description,omitempty"`
}

// HasAverage reports whether a usable average is attached
func (c Column) HasAverage() bool {
	return c.Average != nil
}

// HasMedian reports whether a usable median is attached
func (c Column) HasMedian() bool {
	return c.Median != nil
}

// Row maps column keys to raw cell text. A missing key is a missing cell.
type Row map[string]string

// Cell returns the raw cell for key
func (r Row) Cell(key string) core.NullString {
	v, ok := r[key]
	if !ok {
		return core.NullString{}
	}
	return core.String(v)
}

// Table is an ordered row set with its column descriptors
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Column looks up a descriptor by key
func (t *Table) Column(key string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Headers returns the column keys in order
func (t *Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Key
	}
	return headers
}

// AppendColumn materializes values as a new column. An existing column with the
// same key is replaced. Null values leave the cell missing.
func (t *Table) AppendColumn(col Column, values []core.NullFloat) {
	replaced := false
	for i, c := range t.Columns {
		if c.Key == col.Key {
			t.Columns[i] = col
			replaced = true
			break
		}
	}
	if !replaced {
		t.Columns = append(t.Columns, col)
	}

	for i, row := range t.Rows {
		delete(row, col.Key)
		if i < len(values) && values[i].Valid {
			row[col.Key] = values[i].String()
		}
	}
}

// Float64 returns a pointer to v, for optional aggregate fields
func Float64(v float64) *float64 {
	return &v
}

// ApplySummary merges summary descriptors into matching columns. Only fields
// the summary sets are copied. Keys with no matching column are returned.
func (t *Table) ApplySummary(summary []Column) []string {
	var unknown []string
	for _, s := range summary {
		found := false
		for i := range t.Columns {
			c := &t.Columns[i]
			if c.Key != s.Key {
				continue
			}
			found = true
			if s.Type != "" {
				c.Type = s.Type
			}
			if s.Average != nil {
				c.Average = s.Average
			}
			if s.Median != nil {
				c.Median = s.Median
			}
			if s.Description != "" {
				c.Description = s.Description
			}
		}
		if !found {
			unknown = append(unknown, s.Key)
		}
	}
	return unknown
}
