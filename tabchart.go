// Package tabchart provides a fluent API for extracting tables from market
// report text and turning them into chart-ready series.
//
// Basic usage:
//
//	tables, warnings, err := tabchart.Open("report.md").Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tabchart.FormatWarnings(warnings))
//	}
//
// With options:
//
//	charts, _, err := tabchart.Open("report.md").
//	    OnlyKind(tables.KindTimeSeries).
//	    Columns("Median", "Volume").
//	    Charts()
//
// The extraction building blocks live in the tables, chart and htmldoc
// packages and can be used directly on strings and DOM nodes.
package tabchart

import (
	"golang.org/x/net/html"

	"github.com/tsawler/tabchart/format"
	"github.com/tsawler/tabchart/model"
	"github.com/tsawler/tabchart/tables"
)

// Open returns an Extractor for a markdown or HTML file. The format is taken
// from the file extension, falling back to the file content. The file is
// read by the terminal operation, not by Open.
//
// Example:
//
//	tables, warnings, err := tabchart.Open("report.md").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromString returns an Extractor over in-memory markdown or HTML. The
// format is detected from the content unless set with Format.
//
// Example:
//
//	charts, _, err := tabchart.FromString(report).Charts()
func FromString(src string) *Extractor {
	return &Extractor{
		source:    []byte(src),
		hasSource: true,
		options:   defaultOptions(),
	}
}

// FromHTMLNode returns an Extractor over an already-parsed HTML document or
// table element, for callers whose markdown was rendered elsewhere.
func FromHTMLNode(n *html.Node) *Extractor {
	return &Extractor{
		node:    n,
		format:  format.HTML,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables is a helper that wraps a call to Tables() or Charts() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	tables := tabchart.MustTables(tabchart.FromString(md).Tables())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ChartResult pairs an extracted table with its chart projection.
type ChartResult struct {
	// Index is the position of the table in the document, counting every
	// extracted table including those later filtered out.
	Index int              `json:"index" yaml:"index"`
	Kind  tables.Kind      `json:"kind" yaml:"kind"`
	Table *model.TableData `json:"table" yaml:"table"`
	// Chart is nil when the table has no rows or no numeric column.
	Chart *model.ChartData `json:"chart,omitempty" yaml:"chart,omitempty"`
}
