// Package methods implements the analysis methods that turn one column into a
// per-row score. Every method returns exactly one score per input row and maps
// missing input to a null score unless documented otherwise.
package methods

import (
	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
)

// Method is one scoring transform
type Method interface {
	ID() scoring.MethodID
	Name() string
	Description() string
	Compute(col dataset.Column, values []core.NullFloat, raw []core.NullString, cfg scoring.MethodConfig) Output
}

// Output is the per-row result of a method together with what it observed
type Output struct {
	Scores      []core.NullFloat `json:"scores"`
	Diagnostics Diagnostics      `json:"diagnostics"`
}

// WarningCode represents structured warning types
type WarningCode string

const (
	WarningDegenerateSpread  WarningCode = "DEGENERATE_SPREAD"  // zero variance, range or one-sided spread
	WarningEmptyColumn       WarningCode = "EMPTY_COLUMN"       // no usable values
	WarningConfigDefaulted   WarningCode = "CONFIG_DEFAULTED"   // missing or mismatched config replaced
	WarningUnsupportedMethod WarningCode = "UNSUPPORTED_METHOD" // unknown method, all-null output
)

// Diagnostics describes a single method run
type Diagnostics struct {
	Method       scoring.MethodID   `json:"method"`
	Column       string             `json:"column"`
	ValidCount   int                `json:"valid_count"`
	Stats        map[string]float64 `json:"stats,omitempty"`
	BucketCounts []int              `json:"bucket_counts,omitempty"`
	Warnings     []WarningCode      `json:"warnings,omitempty"`
}

func newDiagnostics(method scoring.MethodID, col dataset.Column) Diagnostics {
	return Diagnostics{
		Method: method,
		Column: col.Key,
		Stats:  make(map[string]float64),
	}
}

// Warn records a warning once
func (d *Diagnostics) Warn(code WarningCode) {
	for _, w := range d.Warnings {
		if w == code {
			return
		}
	}
	d.Warnings = append(d.Warnings, code)
}

// HasWarning reports whether code was recorded
func (d Diagnostics) HasWarning(code WarningCode) bool {
	for _, w := range d.Warnings {
		if w == code {
			return true
		}
	}
	return false
}

// nullScores returns n null scores
func nullScores(n int) []core.NullFloat {
	return make([]core.NullFloat, n)
}

// zeroForValid scores every non-null value 0 and keeps nulls
func zeroForValid(values []core.NullFloat) []core.NullFloat {
	scores := make([]core.NullFloat, len(values))
	for i, v := range values {
		if v.Valid {
			scores[i] = core.Float(0)
		}
	}
	return scores
}
