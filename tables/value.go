package tables

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// currencyChars strips "$" and the letters of "SGD" one character at a
	// time, so unrelated text containing S, G or D loses those letters too.
	currencyChars = regexp.MustCompile(`(?i)[$SGD]`)

	// leadingFloat matches the numeric prefix of a cell. Anything after the
	// prefix is ignored, so "2024-01" reads as 2024.
	leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// ParseNumericValue converts a display-formatted cell such as "$1,234.50" or
// "12.3%" into a number. ok is false when the cell holds no number, which
// callers must treat as missing data rather than zero.
func ParseNumericValue(raw string) (value float64, ok bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, false
	}

	cleaned := currencyChars.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "%", "")
	cleaned = strings.TrimSpace(cleaned)

	prefix := leadingFloat.FindString(cleaned)
	if prefix == "" {
		return 0, false
	}

	// The prefix is always a valid literal, so the only possible error is a
	// range error, for which ParseFloat still returns ±Inf or 0.
	v, _ := strconv.ParseFloat(prefix, 64)
	return v, true
}

// NumericPointer is ParseNumericValue with the result expressed as a chart
// value: nil for a gap, otherwise a pointer to the number.
func NumericPointer(raw string) *float64 {
	v, ok := ParseNumericValue(raw)
	if !ok {
		return nil
	}
	return &v
}

// IsNumeric reports whether the cell holds a parseable number.
func IsNumeric(raw string) bool {
	_, ok := ParseNumericValue(raw)
	return ok
}
