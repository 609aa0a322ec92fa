// Package model provides the intermediate representation for tables found in
// market reports and the chart series derived from them.
//
// All parsing and projection operations ultimately produce these types,
// making them the primary API for consuming extracted content.
//
// # Tables
//
// The [TableData] type holds one extracted table:
//
//   - Headers define column identity by position
//   - Rows are kept as found, including short or long rows
//   - Caption is set only for HTML tables with a caption element
//   - Export methods: ToMarkdown() and ToCSV()
//
// Use [TableData.Cell] to read cells without worrying about ragged rows:
//
//	price, ok := table.Cell(0, 1)
//
// # Charts
//
// The [ChartData] type is the chart-ready projection of a table. Labels come
// from the first column and each [Dataset] holds one numeric series with nil
// marking a gap, so every series lines up with the labels position by
// position.
//
// Both types are plain values created fresh on every call. They carry JSON and
// YAML struct tags so they can be handed to a front end as-is.
package model
