// Package dom wraps the HTML parser behind a small capability interface so
// the analyzers never depend on a concrete parser library.
package dom

// Document is a parsed HTML tree. Implementations tolerate malformed markup;
// parsing never fails outright.
type Document interface {
	// First returns the first element with the given tag name.
	First(tag string) (Node, bool)
	// All returns every element with the given tag name, in document order.
	All(tag string) []Node
	// Select returns every element matching a CSS selector.
	Select(selector string) []Node
	// Text returns the visible text of the whole tree with whitespace
	// collapsed to single spaces and trimmed.
	Text() string
	// HasBody reports whether the document contains a body element.
	HasBody() bool
	// BodyCopy returns an isolated re-parsed copy of the body subtree.
	// Mutating the copy never touches the receiver.
	BodyCopy() (Document, bool)
}

// Node is a single element within a Document.
type Node interface {
	// Text returns the element's visible text, trimmed and collapsed.
	Text() string
	// Attr returns the value of an attribute and whether it is present.
	Attr(name string) (string, bool)
	// Detach removes the element and its subtree from the document.
	Detach()
}
