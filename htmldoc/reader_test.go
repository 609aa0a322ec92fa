package htmldoc

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const reportHTML = `<!DOCTYPE html>
<html>
<head><title>Q2 Market Report</title></head>
<body>
	<h1>Resale prices</h1>
	<table>
		<caption>Median by town</caption>
		<thead><tr><th>Town</th><th>Median</th></tr></thead>
		<tbody><tr><td>Bedok</td><td>520,000</td></tr></tbody>
	</table>
	<p>Footnote</p>
</body>
</html>`

func TestOpenReader_Tables(t *testing.T) {
	r, err := OpenReader(strings.NewReader(reportHTML))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer r.Close()

	if r.Title() != "Q2 Market Report" {
		t.Errorf("Title() = %q, want 'Q2 Market Report'", r.Title())
	}

	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("Tables() returned %d tables, want 1", len(tables))
	}
	if tables[0].Caption != "Median by town" {
		t.Errorf("Caption = %q", tables[0].Caption)
	}
	if r.Root() == nil {
		t.Error("Root() = nil")
	}
}

func TestOpenReader_InvalidHTML(t *testing.T) {
	// Even malformed HTML should parse (HTML parser is lenient)
	r, err := OpenReader(strings.NewReader(`<table><tr><td>A<td>1`))
	if err != nil {
		t.Fatalf("OpenReader() should handle malformed HTML: %v", err)
	}
	defer r.Close()

	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("Tables() returned %d tables, want 1", len(tables))
	}
	if !reflect.DeepEqual(tables[0].Headers, []string{"A", "1"}) {
		t.Errorf("Headers = %q", tables[0].Headers)
	}
}

func TestOpenReader_Latin1(t *testing.T) {
	// "Résumé" encoded as ISO-8859-1 with a meta charset declaration.
	var buf bytes.Buffer
	buf.WriteString(`<html><head><meta charset="iso-8859-1"></head><body><table><tr><th>R`)
	buf.WriteByte(0xE9)
	buf.WriteString(`gion</th></tr><tr><td>x</td></tr></table></body></html>`)

	r, err := OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	tables := r.Tables()
	if len(tables) != 1 || tables[0].Headers[0] != "Région" {
		t.Errorf("Tables() = %+v, want header 'Région'", tables)
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.html")
	if err == nil {
		t.Error("Open() expected error for nonexistent file")
	}
}

func TestOpen_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := os.WriteFile(path, []byte(reportHTML), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()

	if len(r.Tables()) != 1 {
		t.Errorf("Tables() returned %d tables, want 1", len(r.Tables()))
	}
}

func TestFromNode_NoTitle(t *testing.T) {
	doc, err := RenderMarkdown([]byte("plain"))
	if err != nil {
		t.Fatalf("RenderMarkdown() failed: %v", err)
	}
	r := FromNode(doc)
	if r.Title() != "" {
		t.Errorf("Title() = %q, want empty", r.Title())
	}
	if len(r.Tables()) != 0 {
		t.Errorf("Tables() = %+v, want none", r.Tables())
	}
}

func TestReader_ContentTables(t *testing.T) {
	r, err := OpenReader(strings.NewReader(pageWithMenus))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}

	if got := len(r.Tables()); got != 5 {
		t.Errorf("Tables() returned %d tables, want 5", got)
	}
	if got := len(r.ContentTables(ExcludeStandard)); got != 2 {
		t.Errorf("ContentTables(standard) returned %d tables, want 2", got)
	}
}
