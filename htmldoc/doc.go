// Package htmldoc provides HTML table parsing.
//
// Use [ParseTableFromElement] when a renderer has already produced DOM and
// the raw markdown is not available. [Reader] parses whole documents and
// [RenderMarkdown] runs markdown through goldmark first. [ContentTables]
// leaves out tables in navigation and page furniture.
package htmldoc
