// Package filter narrows a row set with typed predicates. Every filter must
// hold for a row to be kept; there is no OR or grouping.
package filter

import (
	"fmt"
	"math"
	"strings"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/internal/errors"
	"goscore/internal/extract"
)

// Op is a filter operator. Which operators apply depends on the column type.
type Op string

const (
	OpRange       Op = "range"
	OpGreaterThan Op = "greaterThan"
	OpLessThan    Op = "lessThan"
	OpContains    Op = "contains"
	OpEquals      Op = "equals"
)

// Filter is one predicate over a column
type Filter struct {
	Column   dataset.Column `json:"column"`
	Operator Op             `json:"operator"`
	Text     string         `json:"text,omitempty"`
	Value    float64        `json:"value,omitempty"`
	Min      float64        `json:"min,omitempty"`
	Max      float64        `json:"max,omitempty"`
}

// Operators lists the operators allowed on a column type
func Operators(t dataset.ColumnType) []Op {
	switch {
	case t.IsNumeric():
		return []Op{OpRange, OpGreaterThan, OpLessThan}
	case t == dataset.TypeBoolean:
		return []Op{OpEquals}
	default:
		return []Op{OpContains, OpEquals}
	}
}

// Validate checks the operator is allowed for the column type and that its
// operands are usable
func Validate(f Filter) error {
	allowed := false
	for _, op := range Operators(f.Column.Type) {
		if op == f.Operator {
			allowed = true
			break
		}
	}
	if !allowed {
		return invalidFilter(f.Column.Key, fmt.Sprintf("operator %q is not available for %s columns", f.Operator, f.Column.Type))
	}

	switch f.Operator {
	case OpRange:
		if !finite(f.Min) || !finite(f.Max) {
			return invalidFilter(f.Column.Key, "range bounds must be finite")
		}
	case OpGreaterThan, OpLessThan:
		if !finite(f.Value) {
			return invalidFilter(f.Column.Key, "comparison value must be finite")
		}
	case OpEquals:
		if f.Column.Type == dataset.TypeBoolean {
			if _, ok := parseBool(f.Text); !ok {
				return invalidFilter(f.Column.Key, fmt.Sprintf("%q is not a boolean", f.Text))
			}
		}
	}
	return nil
}

// Apply returns the rows satisfying every filter, in their original order.
// All filters are validated before any row is examined.
func Apply(rows []dataset.Row, filters []Filter) ([]dataset.Row, error) {
	for _, f := range filters {
		if err := Validate(f); err != nil {
			return nil, err
		}
	}

	kept := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		if matchesAll(row, filters) {
			kept = append(kept, row)
		}
	}
	return kept, nil
}

func matchesAll(row dataset.Row, filters []Filter) bool {
	for _, f := range filters {
		if !Matches(row, f) {
			return false
		}
	}
	return true
}

// Matches evaluates a single validated filter against row. A missing cell
// never matches.
func Matches(row dataset.Row, f Filter) bool {
	cell := row.Cell(f.Column.Key)
	if cell.IsMissing() {
		return false
	}

	switch f.Operator {
	case OpRange, OpGreaterThan, OpLessThan:
		return matchNumeric(extract.ParseCell(cell), f)
	case OpContains:
		return strings.Contains(normalize(cell.Text), normalize(f.Text))
	case OpEquals:
		if f.Column.Type == dataset.TypeBoolean {
			want, _ := parseBool(f.Text)
			got, ok := parseBool(cell.Text)
			return ok && got == want
		}
		return normalize(cell.Text) == normalize(f.Text)
	}
	return false
}

func matchNumeric(v core.NullFloat, f Filter) bool {
	if !v.Valid {
		return false
	}
	switch f.Operator {
	case OpRange:
		lo, hi := math.Min(f.Min, f.Max), math.Max(f.Min, f.Max)
		return v.Value >= lo && v.Value <= hi
	case OpGreaterThan:
		return v.Value > f.Value
	case OpLessThan:
		return v.Value < f.Value
	}
	return false
}

func parseBool(s string) (bool, bool) {
	switch normalize(s) {
	case "true", "yes", "y", "1":
		return true, true
	case "false", "no", "n", "0":
		return false, true
	}
	return false, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalidFilter(column, reason string) error {
	return errors.WithCode(errors.CodeInvalidInput, core.NewFilterError(column, reason))
}
