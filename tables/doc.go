// Package tables provides table extraction from markdown report text,
// table classification and numeric cell normalization.
//
// # Extraction
//
// [ExtractTables] scans text line by line and returns every pipe table it
// finds, in source order:
//
//	| Month   | Price  |
//	|---------|--------|
//	| 2024-01 | $1,234 |
//
// The scan is a fold over lines with two states, outside and inside a table.
// The first pipe line of a block is the header row, separator rows are
// dropped, and the block ends at the first non-pipe line or at the end of the
// input. Rows are kept exactly as split, so a short row stays short. Pipes
// inside cell text are not escaped and will split the cell.
//
// # Classification
//
// Two independent predicates tag extracted tables:
//
//   - [IsTimeSeriesTable] - the first header names a time axis (month, date,
//     year, quarter, time, period, q1-q4)
//   - [IsComparisonTable] - text labels in the first column and at least one
//     number in another column
//
// [Classify] combines them into a [Kind].
//
// # Numeric Values
//
// [ParseNumericValue] turns a formatted cell such as "$1,234.50", "S$980" or
// "12.3%" into a float64. Currency characters, thousands separators and
// percent signs are removed before parsing, and the longest numeric prefix is
// used. The currency strip removes the characters $, S, G and D individually
// (case-insensitive), so text containing those letters is altered before
// parsing.
package tables
