package htmldoc

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"

	"github.com/tsawler/tabchart/model"
)

// renderer turns GitHub-flavored markdown tables into HTML tables.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// RenderMarkdown renders markdown to HTML and parses the result, giving the
// same DOM a browser-side markdown renderer would produce.
//
// Tables follow GFM rules here rather than the line scanner in package
// tables: rows are padded or cut to the header width, pipes can be escaped
// with a backslash, and a table only ends at a blank line or another block.
func RenderMarkdown(src []byte) (*html.Node, error) {
	var buf bytes.Buffer
	if err := renderer.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("parsing rendered HTML: %w", err)
	}
	return doc, nil
}

// MarkdownTables renders markdown and returns the tables of the result.
func MarkdownTables(src []byte) ([]*model.TableData, error) {
	doc, err := RenderMarkdown(src)
	if err != nil {
		return nil, err
	}
	return ParseTables(doc), nil
}
