package extract

import (
	"goscore/domain/core"
	"goscore/domain/dataset"
)

// ExtractColumn parses every row's cell for key, preserving row order
func ExtractColumn(rows []dataset.Row, key string) []core.NullFloat {
	values := make([]core.NullFloat, len(rows))
	for i, row := range rows {
		values[i] = ParseCell(row.Cell(key))
	}
	return values
}

// ExtractRawColumn returns every row's raw cell for key, preserving row order
func ExtractRawColumn(rows []dataset.Row, key string) []core.NullString {
	raw := make([]core.NullString, len(rows))
	for i, row := range rows {
		raw[i] = row.Cell(key)
	}
	return raw
}

// Cache memoizes column extraction for a single evaluation. It is not safe for
// concurrent use and must not outlive the rows it was built from.
type Cache struct {
	rows    []dataset.Row
	numeric map[string][]core.NullFloat
	raw     map[string][]core.NullString
}

// NewCache creates an empty cache over rows
func NewCache(rows []dataset.Row) *Cache {
	return &Cache{
		rows:    rows,
		numeric: make(map[string][]core.NullFloat),
		raw:     make(map[string][]core.NullString),
	}
}

// Numeric returns the parsed values for key, parsing at most once
func (c *Cache) Numeric(key string) []core.NullFloat {
	if values, ok := c.numeric[key]; ok {
		return values
	}
	values := ExtractColumn(c.rows, key)
	c.numeric[key] = values
	return values
}

// Raw returns the raw cells for key, extracting at most once
func (c *Cache) Raw(key string) []core.NullString {
	if raw, ok := c.raw[key]; ok {
		return raw
	}
	raw := ExtractRawColumn(c.rows, key)
	c.raw[key] = raw
	return raw
}

// Len returns the number of distinct columns extracted so far
func (c *Cache) Len() int {
	seen := make(map[string]bool, len(c.numeric)+len(c.raw))
	for k := range c.numeric {
		seen[k] = true
	}
	for k := range c.raw {
		seen[k] = true
	}
	return len(seen)
}

// Valid returns only the non-null values, in order
func Valid(values []core.NullFloat) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v.Valid {
			out = append(out, v.Value)
		}
	}
	return out
}
