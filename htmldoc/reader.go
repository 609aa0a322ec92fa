package htmldoc

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"

	"github.com/tsawler/tabchart/model"
)

// Reader provides access to the tables of an HTML document.
type Reader struct {
	doc   *html.Node
	title string
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader. The input is converted to UTF-8
// using the encoding declared in the document (a <meta charset> or BOM);
// UTF-8 is assumed when none is declared.
func OpenReader(r io.Reader) (*Reader, error) {
	utf8Reader, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	doc, err := html.Parse(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return FromNode(doc), nil
}

// FromNode wraps an already-parsed document or element.
func FromNode(n *html.Node) *Reader {
	reader := &Reader{doc: n}
	if title := findElement(n, atom.Title); title != nil {
		reader.title = getTextContent(title)
	}
	return reader
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title, or "" if there is none.
func (r *Reader) Title() string {
	return r.title
}

// Root returns the parsed document node.
func (r *Reader) Root() *html.Node {
	return r.doc
}

// Tables returns every extractable table in document order.
func (r *Reader) Tables() []*model.TableData {
	return ParseTables(r.doc)
}

// ContentTables returns the tables outside the regions the exclusion level
// names.
func (r *Reader) ContentTables(mode Exclusion) []*model.TableData {
	return ContentTables(r.doc, mode)
}

// findElement finds the first element with the given tag.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if isElement(n, a) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, a); result != nil {
			return result
		}
	}
	return nil
}
