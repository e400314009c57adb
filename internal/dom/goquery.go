package dom

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Parse builds a Document from raw HTML text using goquery. Malformed markup
// degrades to whatever tree the tolerant parser produces; it never fails.
func Parse(text string) Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// html.Parse never errors on an in-memory reader, but keep the
		// degraded path total anyway.
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &goqueryDocument{doc: doc}
}

type goqueryDocument struct {
	doc *goquery.Document
}

func (d *goqueryDocument) First(tag string) (Node, bool) {
	sel := d.doc.Find(tag).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &goqueryNode{sel: sel}, true
}

func (d *goqueryDocument) All(tag string) []Node {
	return collect(d.doc.Find(tag))
}

func (d *goqueryDocument) Select(selector string) []Node {
	return collect(d.doc.Find(selector))
}

func (d *goqueryDocument) Text() string {
	return collapse(d.doc.Text())
}

func (d *goqueryDocument) HasBody() bool {
	return d.doc.Find("body").Length() > 0
}

func (d *goqueryDocument) BodyCopy() (Document, bool) {
	body := d.doc.Find("body").First()
	if body.Length() == 0 {
		return nil, false
	}
	markup, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, false
	}
	return Parse(markup), true
}

type goqueryNode struct {
	sel *goquery.Selection
}

func (n *goqueryNode) Text() string {
	return collapse(n.sel.Text())
}

func (n *goqueryNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *goqueryNode) Detach() {
	n.sel.Remove()
}

func collect(sel *goquery.Selection) []Node {
	nodes := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &goqueryNode{sel: s})
	})
	return nodes
}

func collapse(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
