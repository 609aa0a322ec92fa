package tables

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tsawler/tabchart/model"
)

// separatorRow matches the dashes-and-colons line under a markdown header.
var separatorRow = regexp.MustCompile(`^[\s|:-]+$`)

// extractState is one step of the line fold. The zero value is the state
// before the first line: outside any table with nothing committed.
type extractState struct {
	inside  bool
	current *model.TableData
	tables  []*model.TableData
}

// step consumes one input line and returns the next state. The receiver is
// not modified.
func (s extractState) step(line string) extractState {
	line = strings.TrimSpace(line)

	if !isPipeLine(line) {
		if s.inside {
			return s.commit()
		}
		return s
	}

	if !s.inside {
		return extractState{
			inside:  true,
			current: model.NewTableData(splitPipeRow(line)...),
			tables:  s.tables,
		}
	}

	if separatorRow.MatchString(line) {
		return s
	}

	next := *s.current
	next.Rows = next.Rows[:len(next.Rows):len(next.Rows)]
	next.AddRow(splitPipeRow(line)...)
	s.current = &next
	return s
}

// commit closes the open table and moves outside. A table whose header line
// held no cells (a bare "|") is dropped along with its rows.
func (s extractState) commit() extractState {
	if s.current.ColCount() == 0 {
		return extractState{tables: s.tables}
	}
	tables := append(s.tables[:len(s.tables):len(s.tables)], s.current)
	return extractState{tables: tables}
}

// finish closes a table left open by the end of input.
func (s extractState) finish() []*model.TableData {
	if s.inside {
		s = s.commit()
	}
	if s.tables == nil {
		return []*model.TableData{}
	}
	return s.tables
}

// isPipeLine reports whether a trimmed line both starts and ends with "|".
func isPipeLine(line string) bool {
	return strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|")
}

// splitPipeRow splits a pipe-delimited line into trimmed cells, dropping the
// fragments outside the leading and trailing pipes. Escaped pipes are not
// recognised.
func splitPipeRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return []string{}
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// ExtractTables finds every markdown pipe table in the text, in source
// order. It never fails: malformed input yields whatever table structure can
// be recovered, and text without tables yields an empty slice.
//
// A table starts at the first pipe-delimited line (its header row), skips
// separator rows, and ends at the first non-pipe line or at the end of the
// input.
func ExtractTables(markdown string) []*model.TableData {
	var s extractState
	for _, line := range strings.Split(markdown, "\n") {
		s = s.step(line)
	}
	return s.finish()
}

// ExtractTablesFrom is ExtractTables over a stream. The only error is a
// failure to read r.
func ExtractTablesFrom(r io.Reader) ([]*model.TableData, error) {
	var s extractState
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		s = s.step(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading markdown: %w", err)
	}
	return s.finish(), nil
}
