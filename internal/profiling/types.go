package profiling

import (
	"strings"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/internal/extract"
)

// InferenceConfig defines the thresholds for type inference
type InferenceConfig struct {
	NumericThreshold float64 `json:"numeric_threshold"` // share of present values that must parse as numbers
	BooleanThreshold float64 `json:"boolean_threshold"` // share of present values that must parse as booleans
}

// DefaultInferenceConfig returns sensible defaults
func DefaultInferenceConfig() InferenceConfig {
	return InferenceConfig{
		NumericThreshold: 0.8,
		BooleanThreshold: 0.9,
	}
}

// TypeAnalysis contains the results of type distribution analysis
type TypeAnalysis struct {
	TotalCount      int                `json:"total_count"`
	ValidCount      int                `json:"valid_count"`
	NumericCount    int                `json:"numeric_count"`
	BooleanCount    int                `json:"boolean_count"`
	PercentCount    int                `json:"percent_count"`
	CurrencyCount   int                `json:"currency_count"`
	NumericRatio    float64            `json:"numeric_ratio"`
	BooleanRatio    float64            `json:"boolean_ratio"`
	RecommendedType dataset.ColumnType `json:"recommended_type"`
}

// AnalyzeTypeDistribution counts how many present cells read as each type and
// recommends a column type
func AnalyzeTypeDistribution(raw []core.NullString, cfg InferenceConfig) TypeAnalysis {
	analysis := TypeAnalysis{TotalCount: len(raw)}

	for _, cell := range raw {
		text := strings.TrimSpace(cell.Text)
		if !cell.Valid || text == "" {
			continue
		}
		analysis.ValidCount++

		if isBoolean(text) {
			analysis.BooleanCount++
		}
		if extract.ParseNumeric(text).Valid {
			analysis.NumericCount++
			if strings.HasSuffix(text, "%") {
				analysis.PercentCount++
			}
			if strings.ContainsAny(text, "$€£¥") {
				analysis.CurrencyCount++
			}
		}
	}

	if analysis.ValidCount > 0 {
		analysis.NumericRatio = float64(analysis.NumericCount) / float64(analysis.ValidCount)
		analysis.BooleanRatio = float64(analysis.BooleanCount) / float64(analysis.ValidCount)
	}
	analysis.RecommendedType = recommendType(analysis, cfg)

	return analysis
}

// recommendType checks thresholds in order of preference. Boolean comes first
// so 0/1 flag columns are not read as numbers.
func recommendType(analysis TypeAnalysis, cfg InferenceConfig) dataset.ColumnType {
	if analysis.ValidCount == 0 {
		return dataset.TypeText
	}
	if analysis.BooleanRatio >= cfg.BooleanThreshold {
		return dataset.TypeBoolean
	}
	if analysis.NumericRatio >= cfg.NumericThreshold {
		switch {
		case analysis.PercentCount*2 > analysis.NumericCount:
			return dataset.TypePercent
		case analysis.CurrencyCount*2 > analysis.NumericCount:
			return dataset.TypeCurrency
		}
		return dataset.TypeNumeric
	}
	return dataset.TypeText
}

func isBoolean(text string) bool {
	switch strings.ToLower(text) {
	case "true", "false", "yes", "no", "y", "n", "0", "1":
		return true
	}
	return false
}
