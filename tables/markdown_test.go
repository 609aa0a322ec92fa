package tables

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const twoTables = `# Resale Market Report

Prices rose again this quarter.

| Month   | Price  |
|---------|--------|
| 2024-01 | $1,234 |
| 2024-02 | 1,500  |

Breakdown by town:

| Town | Median | Volume |
| :--- | ---: | :---: |
| Bedok | 520,000 | 41 |
| Tampines | 545,000 |

Notes follow.
`

func TestExtractTables_TwoTables(t *testing.T) {
	got := ExtractTables(twoTables)
	if len(got) != 2 {
		t.Fatalf("ExtractTables() returned %d tables, want 2", len(got))
	}

	first := got[0]
	if !reflect.DeepEqual(first.Headers, []string{"Month", "Price"}) {
		t.Errorf("first headers = %q", first.Headers)
	}
	wantRows := [][]string{{"2024-01", "$1,234"}, {"2024-02", "1,500"}}
	if !reflect.DeepEqual(first.Rows, wantRows) {
		t.Errorf("first rows = %q, want %q", first.Rows, wantRows)
	}

	second := got[1]
	if !reflect.DeepEqual(second.Headers, []string{"Town", "Median", "Volume"}) {
		t.Errorf("second headers = %q", second.Headers)
	}
	if len(second.Rows) != 2 {
		t.Fatalf("second table has %d rows, want 2", len(second.Rows))
	}
	// Short rows are kept short.
	if len(second.Rows[1]) != 2 {
		t.Errorf("ragged row has %d cells, want 2", len(second.Rows[1]))
	}
	if second.Caption != "" {
		t.Errorf("markdown tables have no caption, got %q", second.Caption)
	}
}

func TestExtractTables_EndOfInputClosesTable(t *testing.T) {
	md := "intro\n| A | B |\n|---|---|\n| 1 | 2 |"
	got := ExtractTables(md)
	if len(got) != 1 {
		t.Fatalf("ExtractTables() returned %d tables, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].Rows, [][]string{{"1", "2"}}) {
		t.Errorf("rows = %q", got[0].Rows)
	}
}

func TestExtractTables_HeaderOnly(t *testing.T) {
	got := ExtractTables("| A | B |\n| --- | --- |\n\ntext")
	if len(got) != 1 {
		t.Fatalf("ExtractTables() returned %d tables, want 1", len(got))
	}
	if got[0].Rows == nil || len(got[0].Rows) != 0 {
		t.Errorf("header-only table rows = %#v, want empty non-nil", got[0].Rows)
	}
}

func TestExtractTables_NoTables(t *testing.T) {
	for _, md := range []string{"", "just text\nmore text", "| not closed", "not opened |"} {
		got := ExtractTables(md)
		if got == nil || len(got) != 0 {
			t.Errorf("ExtractTables(%q) = %#v, want empty slice", md, got)
		}
	}
}

func TestExtractTables_AdjacentBlocksMerge(t *testing.T) {
	// Without a non-pipe line between them, two pipe blocks are one table.
	md := "| A |\n|---|\n| 1 |\n| B |\n|---|\n| 2 |"
	got := ExtractTables(md)
	if len(got) != 1 {
		t.Fatalf("ExtractTables() returned %d tables, want 1", len(got))
	}
	want := [][]string{{"1"}, {"B"}, {"2"}}
	if !reflect.DeepEqual(got[0].Rows, want) {
		t.Errorf("rows = %q, want %q", got[0].Rows, want)
	}
}

func TestExtractTables_IndentedAndCRLF(t *testing.T) {
	md := "   | Year | Units |  \r\n  |------|-------|\r\n | 2023 | 12 |\r\n"
	got := ExtractTables(md)
	if len(got) != 1 {
		t.Fatalf("ExtractTables() returned %d tables, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].Headers, []string{"Year", "Units"}) {
		t.Errorf("headers = %q", got[0].Headers)
	}
	if !reflect.DeepEqual(got[0].Rows, [][]string{{"2023", "12"}}) {
		t.Errorf("rows = %q", got[0].Rows)
	}
}

func TestExtractTables_PipeInCellSplits(t *testing.T) {
	got := ExtractTables("| A | B |\n|---|---|\n| x | y | z |")
	if len(got) != 1 {
		t.Fatalf("ExtractTables() returned %d tables, want 1", len(got))
	}
	if len(got[0].Rows[0]) != 3 {
		t.Errorf("row = %q, want 3 cells", got[0].Rows[0])
	}
}

func TestExtractTables_EmptyCells(t *testing.T) {
	got := ExtractTables("| A | B |\n|---|---|\n| | x |\n|  |  |")
	// A row of blank cells has only pipes and spaces, so it reads as a
	// separator row and is dropped.
	if !reflect.DeepEqual(got[0].Rows, [][]string{{"", "x"}}) {
		t.Errorf("rows = %q", got[0].Rows)
	}
}

func TestExtractTables_SeparatorOnlyBeforeData(t *testing.T) {
	// A separator-looking row in the middle of the data is also dropped.
	got := ExtractTables("| A |\n|---|\n| 1 |\n| :-: |\n| 2 |")
	if !reflect.DeepEqual(got[0].Rows, [][]string{{"1"}, {"2"}}) {
		t.Errorf("rows = %q", got[0].Rows)
	}
}

func TestExtractTables_NoHeaderCells(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"bare pipe", "|", 0},
		{"bare pipe with rows", "|\n| x |\n| y |", 0},
		{"followed by a table", "|\n\n| A |\n| 1 |", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTables(tt.input)
			if len(got) != tt.want {
				t.Fatalf("got %d tables, want %d", len(got), tt.want)
			}
			for _, table := range got {
				if table.ColCount() == 0 {
					t.Errorf("table with no headers: %+v", table)
				}
			}
		})
	}
}

func TestExtractTables_Independent(t *testing.T) {
	first := ExtractTables(twoTables)
	second := ExtractTables(twoTables)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls returned different results")
	}
	first[0].Rows[0][0] = "changed"
	if second[0].Rows[0][0] == "changed" {
		t.Error("results of separate calls share storage")
	}
}

func TestExtractState_Transitions(t *testing.T) {
	var s extractState

	s1 := s.step("plain text")
	if s1.inside || len(s1.tables) != 0 {
		t.Fatal("non-pipe line outside a table should have no effect")
	}

	s2 := s1.step("| A | B |")
	if !s2.inside || !reflect.DeepEqual(s2.current.Headers, []string{"A", "B"}) {
		t.Fatalf("header line should open a table, got %+v", s2)
	}

	s3 := s2.step("|:--|--:|")
	if s3.current.RowCount() != 0 {
		t.Error("separator row should be dropped")
	}

	s4 := s3.step("| 1 | 2 |")
	if s4.current.RowCount() != 1 {
		t.Fatalf("data row should be appended, got %d rows", s4.current.RowCount())
	}
	if s3.current.RowCount() != 0 {
		t.Error("step modified the previous state")
	}

	s5 := s4.step("")
	if s5.inside || len(s5.tables) != 1 {
		t.Fatalf("non-pipe line should commit, got %+v", s5)
	}

	if got := s4.finish(); len(got) != 1 {
		t.Errorf("finish() on open table returned %d tables, want 1", len(got))
	}
}

func TestExtractTablesFrom(t *testing.T) {
	got, err := ExtractTablesFrom(strings.NewReader(twoTables))
	if err != nil {
		t.Fatalf("ExtractTablesFrom() error = %v", err)
	}
	want := ExtractTables(twoTables)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTablesFrom() = %+v, want %+v", got, want)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestExtractTablesFrom_ReadError(t *testing.T) {
	_, err := ExtractTablesFrom(failingReader{})
	if err == nil {
		t.Fatal("expected read error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v, want wrapped read error", err)
	}
}

func BenchmarkExtractTables(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString(twoTables)
	}
	md := sb.String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ExtractTables(md)
	}
}
