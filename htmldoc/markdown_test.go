package htmldoc

import (
	"reflect"
	"testing"
)

func TestMarkdownTables_MatchesPipeTable(t *testing.T) {
	src := []byte(`# Report

| Month   | Price  |
|---------|--------|
| 2024-01 | $1,234 |
| 2024-02 | 1,500  |

Done.
`)

	tables, err := MarkdownTables(src)
	if err != nil {
		t.Fatalf("MarkdownTables() failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("MarkdownTables() returned %d tables, want 1", len(tables))
	}
	if !reflect.DeepEqual(tables[0].Headers, []string{"Month", "Price"}) {
		t.Errorf("Headers = %q", tables[0].Headers)
	}
	want := [][]string{{"2024-01", "$1,234"}, {"2024-02", "1,500"}}
	if !reflect.DeepEqual(tables[0].Rows, want) {
		t.Errorf("Rows = %q, want %q", tables[0].Rows, want)
	}
}

func TestMarkdownTables_EscapedPipe(t *testing.T) {
	src := []byte("| Plan | Note |\n|---|---|\n| A | x \\| y |\n")

	tables, err := MarkdownTables(src)
	if err != nil {
		t.Fatalf("MarkdownTables() failed: %v", err)
	}
	if len(tables) != 1 || len(tables[0].Rows) != 1 {
		t.Fatalf("MarkdownTables() = %+v, want one table with one row", tables)
	}
	if tables[0].Rows[0][1] != "x | y" {
		t.Errorf("Rows[0][1] = %q, want 'x | y'", tables[0].Rows[0][1])
	}
}

func TestMarkdownTables_ShortRowPadded(t *testing.T) {
	src := []byte("| Town | Median | Volume |\n|---|---|---|\n| Bedok | 1 |\n")

	tables, err := MarkdownTables(src)
	if err != nil {
		t.Fatalf("MarkdownTables() failed: %v", err)
	}
	if got := tables[0].Rows[0]; !reflect.DeepEqual(got, []string{"Bedok", "1", ""}) {
		t.Errorf("Rows[0] = %q, want padded row", got)
	}
}

func TestMarkdownTables_InlineFormatting(t *testing.T) {
	src := []byte("| **Town** | Median |\n|---|---|\n| `Bedok` | *520,000* |\n")

	tables, err := MarkdownTables(src)
	if err != nil {
		t.Fatalf("MarkdownTables() failed: %v", err)
	}
	if tables[0].Headers[0] != "Town" {
		t.Errorf("Headers[0] = %q", tables[0].Headers[0])
	}
	if !reflect.DeepEqual(tables[0].Rows[0], []string{"Bedok", "520,000"}) {
		t.Errorf("Rows[0] = %q", tables[0].Rows[0])
	}
}

func TestMarkdownTables_NoTables(t *testing.T) {
	tables, err := MarkdownTables([]byte("nothing | here"))
	if err != nil {
		t.Fatalf("MarkdownTables() failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("MarkdownTables() = %+v, want none", tables)
	}
}
