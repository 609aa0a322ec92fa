// Package chart projects extracted tables onto chart-ready label/series data.
package chart

import (
	"github.com/tsawler/tabchart/model"
	"github.com/tsawler/tabchart/tables"
)

// Options controls which columns become series.
type Options struct {
	// Columns selects value columns by exact header name, in this order.
	// Names that match no header are skipped. nil selects every column after
	// the first that holds at least one number; a non-nil empty slice selects
	// nothing.
	Columns []string

	// MaxSeries caps the number of datasets; 0 means unlimited.
	MaxSeries int
}

// TableToChartData projects a table onto chart data. The first column is
// always the label axis. It returns nil when the table has no rows or when
// no value column is selected.
//
// Every dataset has one entry per row; cells that do not parse as numbers
// are nil gaps in place.
func TableToChartData(table *model.TableData, valueColumns []string) *model.ChartData {
	return Project(table, Options{Columns: valueColumns})
}

// Project is TableToChartData with the full set of options.
func Project(table *model.TableData, opts Options) *model.ChartData {
	if table.RowCount() == 0 {
		return nil
	}

	columns := selectColumns(table, opts.Columns)
	if opts.MaxSeries > 0 && len(columns) > opts.MaxSeries {
		columns = columns[:opts.MaxSeries]
	}
	if len(columns) == 0 {
		return nil
	}

	labels := table.Column(0)

	datasets := make([]model.Dataset, 0, len(columns))
	for _, col := range columns {
		data := make([]*float64, table.RowCount())
		for i := range data {
			cell, _ := table.Cell(i, col)
			data[i] = tables.NumericPointer(cell)
		}
		datasets = append(datasets, model.Dataset{
			Label: table.Headers[col],
			Data:  data,
		})
	}

	return &model.ChartData{
		Labels:   labels,
		Datasets: datasets,
	}
}

// selectColumns returns the indices of the value columns.
func selectColumns(table *model.TableData, names []string) []int {
	if names != nil {
		indices := make([]int, 0, len(names))
		for _, name := range names {
			if idx := table.HeaderIndex(name); idx >= 0 {
				indices = append(indices, idx)
			}
		}
		return indices
	}

	var indices []int
	for col := 1; col < table.ColCount(); col++ {
		if NumericColumn(table, col) {
			indices = append(indices, col)
		}
	}
	return indices
}

// NumericColumn reports whether at least one row holds a number in the
// given column.
func NumericColumn(table *model.TableData, col int) bool {
	for i := 0; i < table.RowCount(); i++ {
		if cell, ok := table.Cell(i, col); ok && tables.IsNumeric(cell) {
			return true
		}
	}
	return false
}
