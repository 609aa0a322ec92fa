package tabchart

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue found while extracting tables.
// Extraction still succeeds; the warning explains why a result may look
// incomplete.
type Warning struct {
	// Table is the document position of the table concerned.
	Table   int    `json:"table" yaml:"table"`
	Message string `json:"message" yaml:"message"`
}

// String returns the warning as "table N: message" with N counted from 1.
func (w Warning) String() string {
	return fmt.Sprintf("table %d: %s", w.Table+1, w.Message)
}

// FormatWarnings joins warnings into a single line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
