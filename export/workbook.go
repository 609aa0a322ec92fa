package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/tabchart"
	"github.com/tsawler/tabchart/model"
	"github.com/tsawler/tabchart/tables"
)

// SheetName returns the worksheet name used for the table at a document
// position.
func SheetName(index int) string {
	return fmt.Sprintf("Table %d", index+1)
}

// WriteWorkbook writes an XLSX workbook with one sheet per result. Each sheet
// holds the header row followed by the data rows. Cells that parse as
// numbers are stored as numbers, except in the label column. Results with
// chart data get a line chart (time series) or a clustered column chart
// placed to the right of the table.
func WriteWorkbook(w io.Writer, results []tabchart.ChartResult) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, res := range results {
		sheet := SheetName(res.Index)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %q: %w", sheet, err)
		}

		if err := writeTable(f, sheet, res.Table); err != nil {
			return err
		}
		if res.Chart == nil {
			continue
		}
		if err := addChart(f, sheet, res); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// writeTable fills a sheet starting at A1.
func writeTable(f *excelize.File, sheet string, t *model.TableData) error {
	if t == nil {
		return nil
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}

	for r, row := range t.Rows {
		values := make([]any, len(row))
		for c, cell := range row {
			values[c] = cellValue(c, cell)
		}
		start, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, r+1, err)
		}
	}
	return nil
}

// cellValue returns the value stored for a cell. The label column stays text
// so categories read the way they were written.
func cellValue(col int, cell string) any {
	if col == 0 {
		return cell
	}
	// Spreadsheets have no infinity; such cells stay text.
	if v, ok := tables.ParseNumericValue(cell); ok && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v
	}
	return cell
}

// addChart places a chart built from the result's datasets next to its
// table.
func addChart(f *excelize.File, sheet string, res tabchart.ChartResult) error {
	rows := res.Table.RowCount()
	quoted := "'" + sheet + "'"

	categories, err := columnRange(quoted, 1, rows)
	if err != nil {
		return err
	}

	series := make([]excelize.ChartSeries, 0, len(res.Chart.Datasets))
	for _, ds := range res.Chart.Datasets {
		col := res.Table.HeaderIndex(ds.Label)
		if col < 0 {
			continue
		}
		name, err := excelize.CoordinatesToCellName(col+1, 1, true)
		if err != nil {
			return err
		}
		values, err := columnRange(quoted, col+1, rows)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       quoted + "!" + name,
			Categories: categories,
			Values:     values,
		})
	}
	if len(series) == 0 {
		return nil
	}

	chartType := excelize.Col
	if res.Kind == tables.KindTimeSeries {
		chartType = excelize.Line
	}

	title := res.Table.Caption
	if title == "" {
		title = sheet
	}

	anchor, err := excelize.CoordinatesToCellName(max(res.Table.ColCount(), 1)+2, 1)
	if err != nil {
		return err
	}

	chart := &excelize.Chart{
		Type:   chartType,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{
			Width:  640,
			Height: 360,
		},
	}
	if err := f.AddChart(sheet, anchor, chart); err != nil {
		return fmt.Errorf("adding chart to %s: %w", sheet, err)
	}
	return nil
}

// columnRange returns an absolute reference to the data rows of a column.
func columnRange(sheet string, col, rows int) (string, error) {
	first, err := excelize.CoordinatesToCellName(col, 2, true)
	if err != nil {
		return "", err
	}
	last, err := excelize.CoordinatesToCellName(col, rows+1, true)
	if err != nil {
		return "", err
	}
	return sheet + "!" + first + ":" + last, nil
}
