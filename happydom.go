// Package happydom is a server-side HTML DOM engine: a tolerant HTML
// tokenizer and tree builder, a mutable element tree with attribute,
// class-list and inline-style views, a CSS3-subset selector compiler
// and matcher, and a capture/target/bubble event dispatcher (spec.md
// §1-§2).
//
// # Basic usage
//
//	doc, err := happydom.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ps, err := happydom.QuerySelectorAll(doc.DocumentElement(), "p")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range ps {
//		fmt.Println(p.TextContent())
//	}
package happydom

import (
	"github.com/veryhappydom/happydom/dom"
	"github.com/veryhappydom/happydom/selector"
	"github.com/veryhappydom/happydom/serialize"
	"github.com/veryhappydom/happydom/treebuilder"
)

// Version is the current version of happydom.
const Version = "0.1.0-dev"

func init() {
	// Wire dom's Element.InnerHTML/SetInnerHTML/OuterHTML (spec.md §3
	// invariant 7, §4.5) to the parser and serializer without dom
	// importing either — see dom/innerhtml.go.
	dom.SetFragmentParser(treebuilder.BuildFragment)
	dom.SetSerializer(func(n dom.Node) string {
		return serialize.ToHTML(n, serialize.DefaultOptions())
	})
}

// Parse parses a complete HTML document string and returns its
// Document, wrapping bare content in a synthesized
// <html><head></head><body>…</body></html> skeleton when the input
// does not start with an explicit <html> element (spec.md §4.3
// parseDocument).
func Parse(html string) (*dom.Document, error) {
	return treebuilder.BuildDocument(html)
}

// ParseFragment parses html as a standalone fragment (the innerHTML=
// use case, spec.md §3 invariant 7) and returns its top-level nodes.
func ParseFragment(html string) ([]dom.Node, error) {
	return treebuilder.BuildFragment(html)
}

// Serialize renders node (and its descendants) back to HTML text per
// spec.md §4.6. No entity encoding is performed.
func Serialize(node dom.Node, opts serialize.Options) string {
	return serialize.ToHTML(node, opts)
}

// QuerySelector returns the first element (root included) matching
// selector in document order, or nil (spec.md §6).
func QuerySelector(root *dom.Element, sel string) (*dom.Element, error) {
	return selector.QuerySelector(root, sel)
}

// QuerySelectorAll returns every element (root included) matching
// selector, in document order (spec.md §6).
func QuerySelectorAll(root *dom.Element, sel string) ([]*dom.Element, error) {
	return selector.QuerySelectorAll(root, sel)
}

// Matches reports whether element itself satisfies selector.
func Matches(element *dom.Element, sel string) (bool, error) {
	return selector.Matches(element, sel)
}

// Closest walks element and its ancestors and returns the first one
// matching selector, or nil.
func Closest(element *dom.Element, sel string) (*dom.Element, error) {
	return selector.Closest(element, sel)
}
