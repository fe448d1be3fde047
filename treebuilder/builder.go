// Package treebuilder consumes a tokenizer's token stream and produces a
// dom.Node tree via an open-element stack, with none of the WHATWG
// insertion-mode/adoption-agency/foreign-content machinery (spec.md
// §4.3, C3; Non-goals explicitly exclude HTML5-spec-completeness).
package treebuilder

import (
	"strings"

	"github.com/veryhappydom/happydom/dom"
	"github.com/veryhappydom/happydom/internal/constants"
	"github.com/veryhappydom/happydom/tokenizer"
)

// Builder drives tree construction from a token stream onto a stack of
// currently-open container nodes, rooted at a synthetic DocumentFragment.
// Every node it creates comes from an arena-backed dom.NodeAllocator
// (spec.md REDESIGN FLAG "node arena") instead of a plain `new` per node,
// since this loop is the hottest allocation path in the module.
type Builder struct {
	root  *dom.DocumentFragment
	stack []dom.Node
	alloc *dom.NodeAllocator
}

// New creates a builder ready to consume html.
func New() *Builder {
	alloc := dom.NewNodeAllocator()
	root := alloc.NewDocumentFragment()
	return &Builder{root: root, stack: []dom.Node{root}, alloc: alloc}
}

func (b *Builder) top() dom.Node {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) push(n dom.Node) {
	b.stack = append(b.stack, n)
}

// popUntil pops elements (by canonical tag name) until and including the
// matching one; reports whether a match was found at all. If no match
// exists anywhere on the stack, the stack is left untouched (spec.md
// §4.3: "if no match exists, ignore silently").
func (b *Builder) popUntil(tag string) bool {
	for i := len(b.stack) - 1; i >= 1; i-- {
		if el, ok := b.stack[i].(*dom.Element); ok && el.TagName == tag {
			b.stack = b.stack[:i]
			return true
		}
	}
	return false
}

// BuildFragment tokenizes html and returns the top-level children left
// on the synthetic root after EOF (spec.md §4.3 parseFragment).
func BuildFragment(html string) ([]dom.Node, error) {
	b := New()
	if err := b.run(html); err != nil {
		return nil, err
	}
	// Return a copy: callers re-parent these nodes one by one, and each
	// move removes the node from b.root's own child slice in place.
	return append([]dom.Node(nil), b.root.Children()...), nil
}

// BuildDocument tokenizes html and assembles a Document: if the first
// top-level node is an <html> element, it becomes documentElement
// directly; otherwise the parsed content is wrapped in a default
// <html><head></head><body>…</body></html> skeleton (spec.md §4.3
// parseDocument). Only the first node is examined: a leading text or
// comment node, including a <!DOCTYPE …> line (which the tokenizer
// passes through as text), causes the whole input, <html> included, to
// be wrapped.
func BuildDocument(html string) (*dom.Document, error) {
	children, err := BuildFragment(html)
	if err != nil {
		return nil, err
	}

	alloc := dom.NewNodeAllocator()
	doc := alloc.NewDocument()

	if len(children) > 0 {
		if htmlEl, ok := children[0].(*dom.Element); ok && htmlEl.TagName == "html" {
			_ = doc.AppendChild(htmlEl)
			ensureHeadAndBody(alloc, doc, htmlEl)
			for _, rest := range children[1:] {
				_ = doc.Body().AppendChild(rest)
			}
			return doc, nil
		}
	}

	htmlEl := alloc.NewElement("html")
	head := alloc.NewElement("head")
	body := alloc.NewElement("body")
	_ = htmlEl.AppendChild(head)
	_ = htmlEl.AppendChild(body)
	_ = doc.AppendChild(htmlEl)
	for _, c := range children {
		_ = body.AppendChild(c)
	}
	return doc, nil
}

// ensureHeadAndBody guarantees a parsed <html> root still exposes a head
// and a body child, inserting empty ones if the source omitted them, so
// Document.Head/Body never see a parsed-but-incomplete skeleton.
func ensureHeadAndBody(alloc *dom.NodeAllocator, doc *dom.Document, htmlEl *dom.Element) {
	if doc.Head() == nil {
		head := alloc.NewElement("head")
		_ = htmlEl.InsertBefore(head, firstChildOrNil(htmlEl))
	}
	if doc.Body() == nil {
		_ = htmlEl.AppendChild(alloc.NewElement("body"))
	}
}

func firstChildOrNil(n dom.Node) dom.Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

func (b *Builder) run(html string) error {
	tok := tokenizer.New(html)
	for {
		t, err := tok.Next()
		if err != nil {
			return err
		}
		if t.Kind == tokenizer.EOF {
			return nil
		}
		b.handle(t)
	}
}

func (b *Builder) handle(t tokenizer.Token) {
	switch t.Kind {
	case tokenizer.StartTag:
		b.handleStartTag(t)
	case tokenizer.EndTag:
		b.popUntil(constants.CanonTag(t.Name))
	case tokenizer.Character:
		if strings.TrimSpace(t.Data) != "" {
			_ = b.top().AppendChild(b.alloc.NewText(t.Data))
		}
	case tokenizer.Comment:
		_ = b.top().AppendChild(b.alloc.NewComment(t.Data))
	}
}

func (b *Builder) handleStartTag(t tokenizer.Token) {
	tag := constants.CanonTag(t.Name)
	el := b.alloc.NewElement(tag)
	for _, a := range t.Attrs {
		el.Attributes.Set(constants.CanonAttr(a.Name), a.Value)
	}
	_ = b.top().AppendChild(el)
	if !t.SelfClosing && !constants.IsVoidElement(tag) {
		b.push(el)
	}
}
