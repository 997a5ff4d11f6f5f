// Package document turns raw markup into a queryable document.
package document

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document is parsed markup that answers selector queries
type Document struct {
	doc *goquery.Document
}

// Parse parses raw markup. Malformed markup never fails: the HTML5 parser
// recovers where it can and the worst case is an empty document.
func Parse(raw []byte) *Document {
	return ParseWithContentType(raw, "")
}

// ParseWithContentType parses raw markup using contentType as a charset hint
func ParseWithContentType(raw []byte, contentType string) *Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(ToUTF8(raw, contentType)))
	if err != nil {
		return Empty()
	}
	return &Document{doc: doc}
}

// Empty returns a document with no nodes
func Empty() *Document {
	return &Document{doc: goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})}
}

// Has reports whether at least one node matches selector. Selectors that do
// not compile match nothing.
func (d *Document) Has(selector string) bool {
	return d.Count(selector) > 0
}

// Count returns the number of nodes matching selector
func (d *Document) Count(selector string) int {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return 0
	}
	return d.doc.FindMatcher(sel).Length()
}

// Title returns the trimmed text of the first <title> element
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// CompileSelector reports whether selector is valid selector syntax
func CompileSelector(selector string) error {
	_, err := cascadia.Compile(selector)
	return err
}
