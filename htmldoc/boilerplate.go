package htmldoc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tabchart/model"
)

// Exclusion controls which page regions are ignored when looking for
// tables. Layout tables in menus and footers rarely hold data worth charting.
type Exclusion int

const (
	// ExcludeNone searches the whole document.
	ExcludeNone Exclusion = iota

	// ExcludeExplicit skips <nav>, <aside> and the ARIA roles navigation and
	// complementary. <header> and <footer> (and roles banner and contentinfo)
	// are skipped only when they sit directly under <body> or a single
	// top-level wrapper.
	ExcludeExplicit

	// ExcludeStandard adds class and id patterns such as navbar, menu,
	// footer and sidebar.
	ExcludeStandard

	// ExcludeAggressive also skips containers whose text is mostly links.
	ExcludeAggressive
)

// String returns the name accepted by ParseExclusion.
func (e Exclusion) String() string {
	switch e {
	case ExcludeExplicit:
		return "explicit"
	case ExcludeStandard:
		return "standard"
	case ExcludeAggressive:
		return "aggressive"
	default:
		return "none"
	}
}

// ParseExclusion maps a name to an Exclusion level.
func ParseExclusion(name string) (Exclusion, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return ExcludeNone, true
	case "explicit":
		return ExcludeExplicit, true
	case "standard":
		return ExcludeStandard, true
	case "aggressive":
		return ExcludeAggressive, true
	}
	return ExcludeNone, false
}

// boilerplateClass matches class and id values of navigation and page
// furniture.
var boilerplateClass = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|topnav|sidenav|breadcrumb|breadcrumbs|` +
		`site-header|page-header|masthead|banner|` +
		`footer|site-footer|page-footer|colophon|` +
		`sidebar|widget-area|widget|aside)([^a-z]|$)`)

// ContentTables is ParseTables restricted to tables outside the regions the
// exclusion level names. With ExcludeNone it equals ParseTables.
func ContentTables(root *html.Node, mode Exclusion) []*model.TableData {
	if mode == ExcludeNone {
		return ParseTables(root)
	}

	ex := newExcluder(mode, root)
	result := make([]*model.TableData, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if ex.excluded(n) {
			return
		}
		if isElement(n, atom.Table) {
			if table := ParseTableFromElement(n); table != nil {
				result = append(result, table)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return result
}

// excluder decides which subtrees to skip.
type excluder struct {
	mode    Exclusion
	body    *html.Node
	wrapper *html.Node // sole div or main under body, if any
	density map[*html.Node]float64
}

func newExcluder(mode Exclusion, root *html.Node) *excluder {
	ex := &excluder{
		mode:    mode,
		density: make(map[*html.Node]float64),
	}
	ex.body = findElement(root, atom.Body)
	if ex.body == nil {
		ex.body = root
	}
	if ex.body != nil {
		ex.wrapper = soleWrapper(ex.body)
	}
	return ex
}

// soleWrapper returns the only structural child of body, as in
// <body><div id="page">...</div></body>.
func soleWrapper(body *html.Node) *html.Node {
	var wrapper *html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Div, atom.Main:
			if wrapper != nil {
				return nil
			}
			wrapper = c
		case atom.Script, atom.Style, atom.Noscript, atom.Template:
		default:
			return nil
		}
	}
	return wrapper
}

func (ex *excluder) excluded(n *html.Node) bool {
	if n.Type != html.ElementNode || ex.mode == ExcludeNone {
		return false
	}
	if ex.semantic(n) {
		return true
	}
	if ex.mode >= ExcludeStandard && ex.marked(n) {
		return true
	}
	return ex.mode >= ExcludeAggressive && ex.linkHeavy(n)
}

// semantic checks HTML5 sectioning elements and ARIA roles.
func (ex *excluder) semantic(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Nav, atom.Aside:
		return true
	case atom.Header, atom.Footer:
		return ex.topLevel(n)
	}

	switch getAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		return ex.topLevel(n)
	}
	return false
}

func (ex *excluder) topLevel(n *html.Node) bool {
	p := n.Parent
	return p != nil && (p == ex.body || (ex.wrapper != nil && p == ex.wrapper))
}

func (ex *excluder) marked(n *html.Node) bool {
	if class := getAttr(n, "class"); class != "" && boilerplateClass.MatchString(class) {
		return true
	}
	id := getAttr(n, "id")
	return id != "" && boilerplateClass.MatchString(id)
}

// linkHeavy reports block containers where more than 60% of the text sits
// inside at least four links.
func (ex *excluder) linkHeavy(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Div, atom.Section, atom.Ul, atom.Ol:
	default:
		return false
	}
	return ex.linkDensity(n) > 0.6 && countLinks(n) >= 4
}

func (ex *excluder) linkDensity(n *html.Node) float64 {
	if d, ok := ex.density[n]; ok {
		return d
	}
	d := 0.0
	if total := textLength(n); total > 0 {
		d = float64(linkTextLength(n)) / float64(total)
	}
	ex.density[n] = d
	return d
}

func textLength(n *html.Node) int {
	if n.Type == html.TextNode {
		return len(strings.TrimSpace(n.Data))
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += textLength(c)
	}
	return total
}

func linkTextLength(n *html.Node) int {
	if isElement(n, atom.A) {
		return textLength(n)
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += linkTextLength(c)
	}
	return total
}

func countLinks(n *html.Node) int {
	count := 0
	if isElement(n, atom.A) {
		count = 1
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countLinks(c)
	}
	return count
}

// getAttr returns the value of an attribute, or "" if it is not set.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
