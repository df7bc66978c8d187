// Package goquery implements bookfetch.Extractor using goquery.
//
// Book pages on the source site do not wrap each page in its own element.
// Instead an inline marker (an image followed by the page number) is placed
// in the text flow, and the paragraphs of that page follow it. Extraction
// therefore starts at a marker and scans forward through siblings.
package goquery

import (
	"iter"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookfetch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements bookfetch.Extractor at compile time.
var _ bookfetch.Extractor = (*Extractor)(nil)

// Extractor locates page markers and collects the paragraphs after them.
type Extractor struct {
	markerSelector string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMarkerSelector sets the CSS selector for marker elements.
// Defaults to bookfetch.DefaultMarkerSelector ("img").
func WithMarkerSelector(selector string) Option {
	return func(e *Extractor) {
		e.markerSelector = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		markerSelector: bookfetch.DefaultMarkerSelector,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse parses raw HTML into a Page.
func (e *Extractor) Parse(rawHTML string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, bookfetch.Errorf(bookfetch.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc, markerSelector: e.markerSelector}, nil
}

// Extract parses rawHTML and returns the paragraphs for the given page
// together with the whole-page text.
func (e *Extractor) Extract(rawHTML string, page int) (*bookfetch.ContentBlock, error) {
	p, err := e.Parse(rawHTML)
	if err != nil {
		return nil, err
	}

	block := &bookfetch.ContentBlock{
		Page: page,
		Text: p.Text(),
	}
	for para := range p.Paragraphs(page) {
		block.Paragraphs = append(block.Paragraphs, para)
	}
	return block, nil
}

// Page is a parsed book page.
type Page struct {
	doc            *goquery.Document
	markerSelector string
}

// Text returns the text of every text node in the document, concatenated
// in document order. Whitespace is preserved as-is.
func (p *Page) Text() string {
	return p.doc.Text()
}

// Markers returns the marker elements for the given page number in
// document order. An element is a marker when the node right after it is
// text containing the page number.
func (p *Page) Markers(page int) *goquery.Selection {
	num := strconv.Itoa(page)
	return p.doc.Find(p.markerSelector).FilterFunction(func(_ int, sel *goquery.Selection) bool {
		next := sel.Get(0).NextSibling
		return next != nil && next.Type == html.TextNode && strings.Contains(next.Data, num)
	})
}

// Paragraphs returns the raw text of the paragraphs that follow each marker
// of the given page. For every marker the run starts at the first <p> after
// it in document order and continues through the following sibling
// elements until one is not a <p>. Text and comment nodes between
// paragraphs are skipped.
//
// The sequence can be ranged over more than once.
func (p *Page) Paragraphs(page int) iter.Seq[string] {
	markers := p.Markers(page).Nodes
	return func(yield func(string) bool) {
		for _, marker := range markers {
			for n := findNext(marker, atom.P); n != nil && n.DataAtom == atom.P; n = nextElementSibling(n) {
				if !yield(goquery.NewDocumentFromNode(n).Text()) {
					return
				}
			}
		}
	}
}

// findNext returns the first element with the given atom that follows n in
// document order, not counting n's own descendants.
func findNext(n *html.Node, a atom.Atom) *html.Node {
	for cur := following(n); cur != nil; cur = advance(cur) {
		if cur.Type == html.ElementNode && cur.DataAtom == a {
			return cur
		}
	}
	return nil
}

// following returns the node after n's subtree in document order.
func following(n *html.Node) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// advance steps to the next node in document order.
func advance(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	return following(n)
}

func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}
