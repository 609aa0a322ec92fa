package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tabchart/model"
)

// ParseTableFromElement converts a <table> element into TableData.
//
// Headers come from the first row of a <thead> child. Without a <thead>, the
// first row of the table is used as the header row and is not repeated as
// data. Data rows come from <tbody> children when present, otherwise from
// every row of the table; only rows with at least one <td> are kept. The
// caption is the text of a <caption> child.
//
// It returns nil if n is not a table element or if the table has neither
// headers nor data rows.
func ParseTableFromElement(n *html.Node) *model.TableData {
	if !isElement(n, atom.Table) {
		return nil
	}

	var thead, caption *html.Node
	var tbodies []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Thead:
			if thead == nil {
				thead = c
			}
		case atom.Tbody:
			tbodies = append(tbodies, c)
		case atom.Caption:
			if caption == nil {
				caption = c
			}
		}
	}

	// Candidate data rows, in document order.
	var rowNodes []*html.Node
	if len(tbodies) > 0 {
		for _, tbody := range tbodies {
			rowNodes = append(rowNodes, childRows(tbody)...)
		}
	} else {
		for _, tr := range tableRows(n) {
			// Header group rows are never data.
			if thead != nil && tr.Parent == thead {
				continue
			}
			rowNodes = append(rowNodes, tr)
		}
	}

	headers := []string{}
	headerConsumed := false
	if thead != nil {
		if rows := childRows(thead); len(rows) > 0 {
			headers = rowCells(rows[0])
		}
	} else if len(rowNodes) > 0 {
		// Fallback header: the first row, which is then skipped by index
		// rather than emitted again as data.
		headers = rowCells(rowNodes[0])
		headerConsumed = true
	} else if first := firstRow(n); first != nil {
		headers = rowCells(first)
	}

	rows := make([][]string, 0, len(rowNodes))
	for i, tr := range rowNodes {
		if headerConsumed && i == 0 {
			continue
		}
		if !hasDataCell(tr) {
			continue
		}
		rows = append(rows, rowCells(tr))
	}

	if len(headers) == 0 && len(rows) == 0 {
		return nil
	}

	table := &model.TableData{
		Headers: headers,
		Rows:    rows,
	}
	if caption != nil {
		table.Caption = getTextContent(caption)
	}
	return table
}

// FindTables returns every <table> element under root in document order,
// including nested tables.
func FindTables(root *html.Node) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isElement(n, atom.Table) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return found
}

// ParseTables converts every table under root, dropping tables with nothing
// to extract.
func ParseTables(root *html.Node) []*model.TableData {
	result := make([]*model.TableData, 0)
	for _, n := range FindTables(root) {
		if table := ParseTableFromElement(n); table != nil {
			result = append(result, table)
		}
	}
	return result
}

// tableRows returns the rows that belong to the table itself: direct <tr>
// children and rows of its row groups. Rows of nested tables are excluded.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			rows = append(rows, c)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			rows = append(rows, childRows(c)...)
		}
	}
	return rows
}

// firstRow returns the first row of the table, or nil.
func firstRow(table *html.Node) *html.Node {
	rows := tableRows(table)
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// childRows returns the direct <tr> children of a row group.
func childRows(group *html.Node) []*html.Node {
	var rows []*html.Node
	for c := group.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Tr) {
			rows = append(rows, c)
		}
	}
	return rows
}

// rowCells returns the trimmed text of every <th> and <td> in the row.
func rowCells(tr *html.Node) []string {
	cells := make([]string, 0)
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Th) || isElement(c, atom.Td) {
			cells = append(cells, getTextContent(c))
		}
	}
	return cells
}

// hasDataCell reports whether the row contains at least one <td>.
func hasDataCell(tr *html.Node) bool {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Td) {
			return true
		}
	}
	return false
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		// Skip script/style content
		if shouldSkipElement(n.Data) {
			return
		}
		if n.DataAtom == atom.Br {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}

// shouldSkipElement returns true if the element never contributes text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}
