package core

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// NullFloat is a number that may be absent. The zero value is null.
type NullFloat struct {
	Value float64
	Valid bool
}

// Float returns a valid NullFloat holding v
func Float(v float64) NullFloat {
	return NullFloat{Value: v, Valid: true}
}

// Null returns the absent value
func Null() NullFloat {
	return NullFloat{}
}

// IsNull reports whether the value is absent
func (n NullFloat) IsNull() bool {
	return !n.Valid
}

// Scale multiplies a valid value by factor; null stays null
func (n NullFloat) Scale(factor float64) NullFloat {
	if !n.Valid {
		return n
	}
	return Float(n.Value * factor)
}

// String renders the value for tabular output; null renders empty
func (n NullFloat) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// MarshalJSON encodes as a number or null. Non-finite values encode as null.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON decodes a number or null
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NullFloat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Float(v)
	return nil
}

// NullString is a raw text cell that may be missing
type NullString struct {
	Text  string
	Valid bool
}

// String returns a present NullString holding s
func String(s string) NullString {
	return NullString{Text: s, Valid: true}
}

// IsMissing reports whether the cell was absent
func (s NullString) IsMissing() bool {
	return !s.Valid
}
