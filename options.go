package tabchart

import (
	"github.com/tsawler/tabchart/htmldoc"
	"github.com/tsawler/tabchart/tables"
)

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Markdown handling
	useRenderer bool // Render markdown with goldmark and read the resulting DOM

	// HTML handling
	exclusion htmldoc.Exclusion

	// Table filtering
	kinds   []tables.Kind // empty means every kind
	minRows int

	// Chart projection
	columns   []string // nil means every numeric column
	maxSeries int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		useRenderer: false,
		exclusion:   htmldoc.ExcludeNone,
		kinds:       nil,
		minRows:     0,
		columns:     nil,
		maxSeries:   0,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		useRenderer: o.useRenderer,
		exclusion:   o.exclusion,
		minRows:     o.minRows,
		maxSeries:   o.maxSeries,
	}

	// Deep copy slices, keeping nil distinct from empty
	if o.kinds != nil {
		newOpts.kinds = make([]tables.Kind, len(o.kinds))
		copy(newOpts.kinds, o.kinds)
	}
	if o.columns != nil {
		newOpts.columns = make([]string, len(o.columns))
		copy(newOpts.columns, o.columns)
	}

	return newOpts
}

// wantsKind reports whether tables of kind k pass the kind filter.
func (o ExtractOptions) wantsKind(k tables.Kind) bool {
	if len(o.kinds) == 0 {
		return true
	}
	for _, want := range o.kinds {
		if want == k {
			return true
		}
	}
	return false
}
