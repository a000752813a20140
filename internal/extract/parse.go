// Package extract turns raw dataset cells into numbers. ParseNumeric is the
// single definition of "what counts as a number" for every scoring method and
// filter.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"goscore/domain/core"
)

const (
	narrowNoBreakSpace = '\u202f'
	noBreakSpace       = '\u00a0'
)

// numericPrefix matches the longest leading decimal literal, optionally with exponent
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumeric converts locale-formatted text to a finite number.
// Empty input, unparseable text and non-finite results are null.
func ParseNumeric(raw string) core.NullFloat {
	cleanVal := strings.TrimSpace(raw)
	if cleanVal == "" {
		return core.Null()
	}

	// Spaces of any kind act as thousands separators
	cleanVal = strings.Map(func(r rune) rune {
		if r == narrowNoBreakSpace || r == noBreakSpace || r == ' ' {
			return -1
		}
		return r
	}, cleanVal)

	cleanVal = dropThousandsCommas(cleanVal)

	// A remaining comma is a decimal separator
	cleanVal = strings.Replace(cleanVal, ",", ".", 1)

	cleanVal = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '+', r == '-', r == '.', r == 'e', r == 'E':
			return r
		}
		return -1
	}, cleanVal)

	literal := numericPrefix.FindString(cleanVal)
	if literal == "" {
		return core.Null()
	}

	val, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return core.Null()
	}
	return core.Float(val)
}

// ParseCell parses a possibly missing raw cell
func ParseCell(cell core.NullString) core.NullFloat {
	if !cell.Valid {
		return core.Null()
	}
	return ParseNumeric(cell.Text)
}

// dropThousandsCommas removes every comma followed by exactly three digits and
// then a non-digit or the end of the string
func dropThousandsCommas(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' && isThousandsGroup(s[i+1:]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isThousandsGroup(rest string) bool {
	if len(rest) < 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return len(rest) == 3 || rest[3] < '0' || rest[3] > '9'
}
