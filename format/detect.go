// Package format provides input format detection for the tabchart library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Markdown indicates markdown report text.
	Markdown
	// HTML indicates an HTML document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "Markdown"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Parse maps a user-supplied name ("md", "markdown", "html") to a Format.
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md", "markdown":
		return Markdown
	case "html", "htm":
		return HTML
	default:
		return Unknown
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".mdown", ".txt":
		return Markdown
	case ".html", ".htm", ".xhtml":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromContent inspects the leading bytes of the input. Content that
// opens like an HTML document or a bare table is HTML; any other non-empty
// text is treated as markdown, since plain text is valid markdown. Empty
// input and binary data (a NUL byte near the start) are Unknown.
func DetectFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF")
	if len(trimmed) == 0 {
		return Unknown
	}
	if bytes.IndexByte(trimmed[:min(512, len(trimmed))], 0) >= 0 {
		return Unknown
	}
	if detectHTMLMagic(trimmed) {
		return HTML
	}
	return Markdown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	head := data[:min(512, len(data))]
	upper := strings.ToUpper(string(head))

	// Check for common HTML signatures (case-insensitive)
	for _, prefix := range []string{"<!DOCTYPE HTML", "<HTML", "<TABLE", "<BODY", "<HEAD"} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}
