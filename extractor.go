package tabchart

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/tabchart/chart"
	"github.com/tsawler/tabchart/format"
	"github.com/tsawler/tabchart/htmldoc"
	"github.com/tsawler/tabchart/model"
	"github.com/tsawler/tabchart/tables"
)

// ErrUnsupportedFormat is returned when the input is neither markdown nor
// HTML, for example a binary file.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Extractor provides a fluent interface for extracting tables and charts
// from markdown and HTML. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one is set)
	filename  string
	source    []byte
	hasSource bool
	node      *html.Node

	// Unknown means detect from content
	format format.Format

	// Configuration
	options ExtractOptions
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		source:    e.source,
		hasSource: e.hasSource,
		node:      e.node,
		format:    e.format,
		options:   e.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Format overrides format detection. format.Unknown restores detection.
//
// Example:
//
//	tables, _, err := tabchart.Open("report.txt").Format(format.HTML).Tables()
func (e *Extractor) Format(f format.Format) *Extractor {
	newExt := e.clone()
	newExt.format = f
	return newExt
}

// UseRenderer reads markdown through goldmark's GFM table renderer instead of
// the line scanner. Rendered tables honour escaped pipes, and their rows are
// padded or cut to the header width.
func (e *Extractor) UseRenderer() *Extractor {
	newExt := e.clone()
	newExt.options.useRenderer = true
	return newExt
}

// SkipBoilerplate ignores HTML tables inside navigation, page headers and
// footers, at the given exclusion level. It has no effect on markdown.
//
// Example:
//
//	tables, _, err := tabchart.Open("page.html").SkipBoilerplate(htmldoc.ExcludeStandard).Tables()
func (e *Extractor) SkipBoilerplate(mode htmldoc.Exclusion) *Extractor {
	newExt := e.clone()
	newExt.options.exclusion = mode
	return newExt
}

// Columns selects the value columns used for charts by header name. Names
// that match no header are skipped. Multiple calls are cumulative.
//
// Example:
//
//	charts, _, err := tabchart.Open("report.md").Columns("Median").Charts()
func (e *Extractor) Columns(names ...string) *Extractor {
	newExt := e.clone()
	newExt.options.columns = append(newExt.options.columns, names...)
	return newExt
}

// OnlyKind keeps tables of the given kinds only. Multiple calls are
// cumulative.
//
// Example:
//
//	tables, _, err := tabchart.Open("report.md").OnlyKind(tables.KindTimeSeries).Tables()
func (e *Extractor) OnlyKind(kinds ...tables.Kind) *Extractor {
	newExt := e.clone()
	newExt.options.kinds = append(newExt.options.kinds, kinds...)
	return newExt
}

// MinRows drops tables with fewer than n data rows.
func (e *Extractor) MinRows(n int) *Extractor {
	newExt := e.clone()
	newExt.options.minRows = n
	return newExt
}

// MaxSeries caps the number of datasets per chart; 0 means unlimited.
func (e *Extractor) MaxSeries(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxSeries = n
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Tables extracts the tables of the input in document order.
//
// Returns the tables, any warnings encountered during processing, and an
// error if the input could not be read. Malformed tables never cause an
// error; warnings describe ragged rows and tables dropped by filters.
//
// Example:
//
//	tables, warnings, err := tabchart.Open("report.md").Tables()
func (e *Extractor) Tables() ([]*model.TableData, []Warning, error) {
	indexed, warnings, err := e.extract()
	if err != nil {
		return nil, nil, err
	}

	result := make([]*model.TableData, 0, len(indexed))
	for _, it := range indexed {
		result = append(result, it.table)
	}
	return result, warnings, nil
}

// Charts extracts the tables of the input and projects each onto chart data.
// Tables with nothing to chart are returned with a nil Chart and a warning.
//
// Example:
//
//	charts, warnings, err := tabchart.Open("report.md").Charts()
//	for _, c := range charts {
//	    fmt.Println(c.Kind, c.Chart.Labels)
//	}
func (e *Extractor) Charts() ([]ChartResult, []Warning, error) {
	indexed, warnings, err := e.extract()
	if err != nil {
		return nil, nil, err
	}

	opts := chart.Options{
		Columns:   e.options.columns,
		MaxSeries: e.options.maxSeries,
	}

	results := make([]ChartResult, 0, len(indexed))
	for _, it := range indexed {
		data := chart.Project(it.table, opts)
		if data == nil {
			warnings = append(warnings, Warning{
				Table:   it.index,
				Message: "no chartable column",
			})
		}
		results = append(results, ChartResult{
			Index: it.index,
			Kind:  it.kind,
			Table: it.table,
			Chart: data,
		})
	}
	return results, warnings, nil
}

// indexedTable is an extracted table with its document position.
type indexedTable struct {
	index int
	kind  tables.Kind
	table *model.TableData
}

// extract runs the configured extraction and filters.
func (e *Extractor) extract() ([]indexedTable, []Warning, error) {
	found, err := e.rawTables()
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	result := make([]indexedTable, 0, len(found))
	for i, t := range found {
		if t.IsRagged() {
			warnings = append(warnings, Warning{
				Table:   i,
				Message: fmt.Sprintf("rows differ in length from the %d headers", t.ColCount()),
			})
		}
		if t.RowCount() < e.options.minRows {
			warnings = append(warnings, Warning{
				Table:   i,
				Message: fmt.Sprintf("skipped: %d rows, fewer than %d", t.RowCount(), e.options.minRows),
			})
			continue
		}
		kind := tables.Classify(t)
		if !e.options.wantsKind(kind) {
			continue
		}
		result = append(result, indexedTable{index: i, kind: kind, table: t})
	}
	return result, warnings, nil
}

// rawTables loads the input and extracts every table from it.
func (e *Extractor) rawTables() ([]*model.TableData, error) {
	if e.node != nil {
		return htmldoc.ContentTables(e.node, e.options.exclusion), nil
	}

	raw, err := e.load()
	if err != nil {
		return nil, err
	}
	data, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	f := e.format
	if f == format.Unknown {
		f = format.DetectFromContent(data)
		if f == format.Unknown {
			if len(bytes.TrimSpace(data)) == 0 {
				return []*model.TableData{}, nil
			}
			return nil, ErrUnsupportedFormat
		}
	}

	switch f {
	case format.HTML:
		// The undecoded bytes go to the reader so a declared charset applies.
		reader, err := htmldoc.OpenReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return reader.ContentTables(e.options.exclusion), nil

	case format.Markdown:
		if e.options.useRenderer {
			return htmldoc.MarkdownTables(data)
		}
		return tables.ExtractTables(string(data)), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// load returns the raw input bytes.
func (e *Extractor) load() ([]byte, error) {
	raw := e.source
	if !e.hasSource {
		if e.filename == "" {
			return nil, fmt.Errorf("no input specified")
		}
		b, err := os.ReadFile(e.filename)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.filename, err)
		}
		raw = b
	}
	return raw, nil
}

// decodeText converts UTF-16 input with a byte order mark to UTF-8 and
// strips a UTF-8 BOM. Input without a BOM is taken as UTF-8.
func decodeText(raw []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	return out, nil
}
