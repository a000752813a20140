package methods

import (
	"goscore/domain/core"
	"goscore/domain/dataset"
)

func numericColumn(key string) dataset.Column {
	return dataset.Column{Key: key, Type: dataset.TypeNumeric}
}

// floatsOf builds a value column; NaN marks a null cell
func floatsOf(vals ...float64) []core.NullFloat {
	out := make([]core.NullFloat, len(vals))
	for i, v := range vals {
		if v != v {
			continue
		}
		out[i] = core.Float(v)
	}
	return out
}

func rawOf(vals ...string) []core.NullString {
	out := make([]core.NullString, len(vals))
	for i, v := range vals {
		out[i] = core.String(v)
	}
	return out
}
