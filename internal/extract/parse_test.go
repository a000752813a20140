package extract

import (
	"testing"

	"goscore/domain/core"
	"goscore/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected core.NullFloat
	}{
		{"plain integer", "42", core.Float(42)},
		{"negative decimal", "-3.5", core.Float(-3.5)},
		{"thousands comma", "1,234.56", core.Float(1234.56)},
		{"multiple groups", "1,234,567", core.Float(1234567)},
		{"decimal comma", "1,5", core.Float(1.5)},
		{"narrow no-break space", "12\u202f345,6", core.Float(12345.6)},
		{"no-break space", "1\u00a0000", core.Float(1000)},
		{"currency symbol", "$1,000", core.Float(1000)},
		{"percent sign", "45%", core.Float(45)},
		{"scientific", "2.5e3", core.Float(2500)},
		{"explicit plus", "+7", core.Float(7)},
		{"surrounding whitespace", "  8  ", core.Float(8)},
		{"trailing exponent marker", "12e", core.Float(12)},
		{"empty", "", core.Null()},
		{"blank", "   ", core.Null()},
		{"text", "n/a", core.Null()},
		{"lone sign", "-", core.Null()},
		{"overflow", "1e400", core.Null()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ParseNumeric(test.input)
			assert.Equal(t, test.expected.Valid, got.Valid)
			if test.expected.Valid {
				assert.InDelta(t, test.expected.Value, got.Value, 1e-9)
			}
		})
	}
}

func TestParseNumeric_Deterministic(t *testing.T) {
	for _, input := range []string{"1,234.5", "abc", "9,99"} {
		assert.Equal(t, ParseNumeric(input), ParseNumeric(input))
	}
}

func TestParseCell_Missing(t *testing.T) {
	assert.True(t, ParseCell(core.NullString{}).IsNull())
	assert.Equal(t, core.Float(3), ParseCell(core.String("3")))
}

func TestExtractColumn_PreservesOrder(t *testing.T) {
	rows := []dataset.Row{
		{"x": "1"},
		{"y": "2"},
		{"x": "oops"},
		{"x": "4"},
	}

	values := ExtractColumn(rows, "x")
	require.Len(t, values, 4)
	assert.Equal(t, core.Float(1), values[0])
	assert.True(t, values[1].IsNull())
	assert.True(t, values[2].IsNull())
	assert.Equal(t, core.Float(4), values[3])

	raw := ExtractRawColumn(rows, "x")
	assert.Equal(t, core.String("oops"), raw[2])
	assert.True(t, raw[1].IsMissing())
}

func TestCache_ExtractsOncePerColumn(t *testing.T) {
	rows := []dataset.Row{{"x": "1", "y": "a"}, {"x": "2", "y": "b"}}
	cache := NewCache(rows)

	first := cache.Numeric("x")
	rows[0]["x"] = "100"
	second := cache.Numeric("x")

	assert.Equal(t, first, second)
	assert.Equal(t, core.Float(1), second[0])

	cache.Raw("y")
	cache.Raw("x")
	assert.Equal(t, 2, cache.Len())
}

func TestValid(t *testing.T) {
	values := []core.NullFloat{core.Float(1), core.Null(), core.Float(3)}
	assert.Equal(t, []float64{1, 3}, Valid(values))
}
