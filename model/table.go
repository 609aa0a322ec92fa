package model

import (
	"strings"
)

// TableData is one table extracted from a markdown report or an HTML table.
// Rows are kept exactly as found; a row may hold fewer or more cells than
// there are headers.
type TableData struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
	Caption string     `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// NewTableData creates a table with the given headers and no rows.
func NewTableData(headers ...string) *TableData {
	return &TableData{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a row of cells
func (t *TableData) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// RowCount returns the number of data rows
func (t *TableData) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColCount returns the number of headers
func (t *TableData) ColCount() int {
	if t == nil {
		return 0
	}
	return len(t.Headers)
}

// Cell returns the cell at the given row and column (0-indexed). Missing
// cells of short rows report ok == false and an empty string.
func (t *TableData) Cell(row, col int) (string, bool) {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][col], true
}

// Column returns the cells of a column in row order, using "" for rows
// that are too short to reach it.
func (t *TableData) Column(col int) []string {
	out := make([]string, t.RowCount())
	for i := range out {
		out[i], _ = t.Cell(i, col)
	}
	return out
}

// HeaderIndex returns the position of the header with exactly the given
// name, or -1.
func (t *TableData) HeaderIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// IsRagged reports whether any row has a cell count different from the
// header count.
func (t *TableData) IsRagged() bool {
	for _, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return true
		}
	}
	return false
}

// ToMarkdown converts the table to a markdown pipe table
func (t *TableData) ToMarkdown() string {
	if t == nil || (len(t.Headers) == 0 && len(t.Rows) == 0) {
		return ""
	}

	var sb strings.Builder

	writeMarkdownRow(&sb, t.Headers)

	// Separator
	sb.WriteString("|")
	for range t.Headers {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeMarkdownRow(&sb, row)
	}

	return sb.String()
}

// markdownEscaper keeps cell text from breaking the pipe layout.
var markdownEscaper = strings.NewReplacer("|", "\\|", "\r", "", "\n", " ")

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(markdownEscaper.Replace(cell))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// ToCSV converts the table to CSV format, header row first
func (t *TableData) ToCSV() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	writeCSVRow(&sb, t.Headers)
	for _, row := range t.Rows {
		writeCSVRow(&sb, row)
	}
	return sb.String()
}

func writeCSVRow(sb *strings.Builder, cells []string) {
	for j, text := range cells {
		// Escape quotes and wrap in quotes if necessary
		if strings.ContainsAny(text, ",\"\n") {
			text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
		}
		sb.WriteString(text)
		if j < len(cells)-1 {
			sb.WriteString(",")
		}
	}
	sb.WriteString("\n")
}
