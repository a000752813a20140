package filter

import (
	"fmt"
	"strings"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/internal/errors"
	"goscore/internal/extract"
)

// ColumnResolver looks up column descriptors by key
type ColumnResolver interface {
	Column(key string) (dataset.Column, bool)
}

// ParseOp matches an operator name case-insensitively
func ParseOp(s string) (Op, bool) {
	for _, op := range []Op{OpRange, OpGreaterThan, OpLessThan, OpContains, OpEquals} {
		if strings.EqualFold(strings.TrimSpace(s), string(op)) {
			return op, true
		}
	}
	return "", false
}

// ParseExpression parses "column:operator:value" or "column:range:min:max"
// into a filter bound to its column. The result is not validated.
func ParseExpression(expr string, columns ColumnResolver) (Filter, error) {
	parts := strings.Split(expr, ":")
	if len(parts) < 3 {
		return Filter{}, invalidExpression(expr, "expected column:operator:value")
	}

	var key string
	var f Filter
	if n := len(parts); n >= 4 && strings.EqualFold(parts[n-3], string(OpRange)) {
		key = strings.Join(parts[:n-3], ":")
		f.Operator = OpRange
		lo := extract.ParseNumeric(parts[n-2])
		hi := extract.ParseNumeric(parts[n-1])
		if !lo.Valid || !hi.Valid {
			return Filter{}, invalidExpression(expr, "range bounds must be numbers")
		}
		f.Min, f.Max = lo.Value, hi.Value
	} else {
		key = strings.Join(parts[:n-2], ":")
		op, ok := ParseOp(parts[n-2])
		if !ok {
			return Filter{}, invalidExpression(expr, fmt.Sprintf("unknown operator %q", parts[n-2]))
		}
		f.Operator = op
		f.Text = strings.TrimSpace(parts[n-1])
		if op == OpGreaterThan || op == OpLessThan {
			v := extract.ParseNumeric(f.Text)
			if !v.Valid {
				return Filter{}, invalidExpression(expr, "comparison value must be a number")
			}
			f.Value = v.Value
		}
	}

	col, ok := columns.Column(strings.TrimSpace(key))
	if !ok {
		return Filter{}, errors.WithCode(errors.CodeNotFound, core.NewColumnNotFoundError(key))
	}
	f.Column = col
	return f, nil
}

func invalidExpression(expr, reason string) error {
	return errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("%w: %q: %s", core.ErrInvalidFilter, expr, reason))
}
