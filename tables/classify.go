package tables

import (
	"strings"

	"github.com/tsawler/tabchart/model"
)

// Kind labels the shape of a table.
type Kind int

const (
	// KindUnknown is a table that is neither time-series nor comparison shaped.
	KindUnknown Kind = iota
	// KindTimeSeries has a time-like first column.
	KindTimeSeries
	// KindComparison has text labels in the first column and numbers elsewhere.
	KindComparison
)

// String returns a human-readable representation of the kind
func (k Kind) String() string {
	switch k {
	case KindTimeSeries:
		return "timeseries"
	case KindComparison:
		return "comparison"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name so JSON and YAML output is readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name. Unrecognised names decode as
// KindUnknown.
func (k *Kind) UnmarshalText(text []byte) error {
	*k, _ = ParseKind(string(text))
	return nil
}

// ParseKind maps a name produced by Kind.String back to a Kind.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "timeseries", "time-series", "time_series":
		return KindTimeSeries, true
	case "comparison":
		return KindComparison, true
	case "unknown":
		return KindUnknown, true
	}
	return KindUnknown, false
}

// timeKeywords are matched as substrings of the lower-cased first header.
var timeKeywords = []string{
	"month", "date", "year", "quarter", "time", "period",
	"q1", "q2", "q3", "q4",
}

// IsTimeSeriesTable reports whether the first header names a time axis.
// Tables without headers or rows never qualify.
func IsTimeSeriesTable(t *model.TableData) bool {
	if t.ColCount() == 0 || t.RowCount() == 0 {
		return false
	}
	first := strings.ToLower(t.Headers[0])
	for _, kw := range timeKeywords {
		if strings.Contains(first, kw) {
			return true
		}
	}
	return false
}

// IsComparisonTable reports whether some row has a non-numeric first cell
// and some (possibly different) row has a numeric cell past the first
// column.
func IsComparisonTable(t *model.TableData) bool {
	if t.ColCount() < 2 {
		return false
	}

	textLabel := false
	numericValue := false
	for _, row := range t.Rows {
		// A row with no cells has an absent first cell, which does not parse.
		if len(row) == 0 || !IsNumeric(row[0]) {
			textLabel = true
		}
		if !numericValue {
			for _, cell := range row[min(1, len(row)):] {
				if IsNumeric(cell) {
					numericValue = true
					break
				}
			}
		}
		if textLabel && numericValue {
			return true
		}
	}
	return false
}

// Classify tags a table with its shape. A table that is both time-series and
// comparison shaped is reported as time-series.
func Classify(t *model.TableData) Kind {
	switch {
	case t == nil:
		return KindUnknown
	case IsTimeSeriesTable(t):
		return KindTimeSeries
	case IsComparisonTable(t):
		return KindComparison
	default:
		return KindUnknown
	}
}
