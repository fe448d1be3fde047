package dom

import (
	"strings"

	"github.com/veryhappydom/happydom/events"
)

// Namespace constants for HTML, SVG, and MathML.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
)

// Element represents an HTML, SVG, or MathML element. Per the REDESIGN
// FLAG "event-target polymorphism," Element is one of only two node
// kinds (the other is Document) that carries a listener table — Text and
// Comment nodes are not event targets.
type Element struct {
	baseNode

	// TagName is the element's canonical (lowercased, interned) tag name.
	TagName string

	// Namespace is the element's namespace URI. For HTML elements this is
	// NamespaceHTML.
	Namespace string

	// Attributes holds the element's attribute map.
	Attributes *Attributes

	listeners      events.Target
	classList      *ClassList
	style          *CSSStyleDeclaration
	customValidity string
}

// NewElement creates a new HTML element with the given tag name.
func NewElement(tagName string) *Element {
	e := &Element{
		TagName:    strings.ToLower(tagName),
		Namespace:  NamespaceHTML,
		Attributes: NewAttributes(),
	}
	e.init()
	return e
}

// NewElementNS creates a new element with the given tag name and
// namespace. Foreign (SVG/MathML) tag names keep their original case.
func NewElementNS(tagName, namespace string) *Element {
	e := &Element{
		TagName:    tagName,
		Namespace:  namespace,
		Attributes: NewAttributes(),
	}
	e.init()
	return e
}

func (e *Element) init() {
	e.baseNode.init(e)
}

// Type implements Node.
func (e *Element) Type() NodeType {
	return ElementNodeType
}

// Listeners implements events.EventTarget.
func (e *Element) Listeners() *events.Target {
	return &e.listeners
}

// DispatchEvent runs the capture/target/bubble algorithm against this
// element's ancestor chain (spec.md §4.9).
func (e *Element) DispatchEvent(ev *events.Event) bool {
	return events.Dispatch(eventPath(e), e, ev)
}

// eventPath walks parent links from the root down to (and including)
// node, building the ancestor chain events.Dispatch expects.
func eventPath(n Node) []events.EventTarget {
	var chain []Node
	for cur := n; cur != nil; cur = cur.Parent() {
		chain = append(chain, cur)
	}
	path := make([]events.EventTarget, len(chain))
	for i, node := range chain {
		target, ok := node.(events.EventTarget)
		if !ok {
			// Ancestor is not itself an event target (e.g. a
			// DocumentFragment root); it still participates as a
			// pass-through hop so capture/bubble order is preserved.
			target = nonTargetHop{}
		}
		path[len(chain)-1-i] = target
	}
	return path
}

// nonTargetHop is a stand-in for ancestors that don't carry a listener
// table of their own (e.g. DocumentFragment).
type nonTargetHop struct{}

func (nonTargetHop) Listeners() *events.Target { return emptyTarget }

var emptyTarget = events.NewTarget()

// Clone implements Node. Listeners are never copied (spec.md §9).
func (e *Element) Clone(deep bool) Node {
	clone := &Element{
		TagName:    e.TagName,
		Namespace:  e.Namespace,
		Attributes: e.Attributes.Clone(),
	}
	clone.init()

	if deep {
		for _, child := range e.children {
			_ = clone.AppendChild(child.Clone(true))
		}
	}

	return clone
}

// TextContent concatenates descendant text nodes in document order,
// skipping comments (spec.md §3 invariant 6).
func (e *Element) TextContent() string {
	var sb strings.Builder
	collectText(e, &sb)
	return sb.String()
}

func collectText(n Node, sb *strings.Builder) {
	for _, child := range n.Children() {
		switch c := child.(type) {
		case *Text:
			sb.WriteString(c.Data)
		default:
			collectText(child, sb)
		}
	}
}

// SetTextContent replaces all children with a single text node holding
// text (empty text removes all children instead, matching the living
// standard).
func (e *Element) SetTextContent(text string) {
	for _, c := range append([]Node(nil), e.children...) {
		_ = e.RemoveChild(c)
	}
	if text != "" {
		_ = e.AppendChild(NewText(text))
	}
}

// ElementChildren returns e's child nodes filtered to Element nodes only,
// in document order (spec.md §4.4 "children": an element-only view, as
// opposed to Children(), which is the raw childNodes list Text/Comment
// nodes also appear in).
func (e *Element) ElementChildren() []*Element {
	var out []*Element
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// NextElementSibling returns the next sibling that is an Element, skipping
// any intervening Text/Comment nodes, or nil if there is none (spec.md
// §4.4).
func (e *Element) NextElementSibling() *Element {
	parent := e.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.Children()
	for i, c := range siblings {
		if c == Node(e) {
			for _, next := range siblings[i+1:] {
				if el, ok := next.(*Element); ok {
					return el
				}
			}
			return nil
		}
	}
	return nil
}

// PreviousElementSibling returns the previous sibling that is an Element,
// skipping any intervening Text/Comment nodes, or nil if there is none
// (spec.md §4.4).
func (e *Element) PreviousElementSibling() *Element {
	parent := e.Parent()
	if parent == nil {
		return nil
	}
	var prev *Element
	for _, c := range parent.Children() {
		if c == Node(e) {
			return prev
		}
		if el, ok := c.(*Element); ok {
			prev = el
		}
	}
	return nil
}

// Attr returns the value of an attribute, or "" if not present.
func (e *Element) Attr(name string) string {
	val, _ := e.Attributes.Get(name)
	return val
}

// HasAttr reports whether the element has the given attribute.
func (e *Element) HasAttr(name string) bool {
	return e.Attributes.Has(name)
}

// SetAttr sets an attribute value.
func (e *Element) SetAttr(name, value string) {
	e.Attributes.Set(name, value)
	e.notifyAttr()
}

// RemoveAttr removes an attribute.
func (e *Element) RemoveAttr(name string) {
	e.Attributes.Remove(name)
	e.notifyAttr()
}

func (e *Element) notifyAttr() {
	e.notify(MutationAttributes)
}

// ID returns the value of the id attribute.
func (e *Element) ID() string {
	return e.Attr("id")
}

// ClassList returns the derived classList view over this element's class
// attribute (spec.md §4.5, C5).
func (e *Element) ClassList() *ClassList {
	if e.classList == nil {
		e.classList = newClassList(e)
	}
	return e.classList
}

// Style returns the derived CSSStyleDeclaration view over this element's
// style attribute (spec.md §4.5, C5).
func (e *Element) Style() *CSSStyleDeclaration {
	if e.style == nil {
		e.style = newCSSStyleDeclaration(e)
	}
	return e.style
}

// HasClass reports whether the element carries the given CSS class; a
// thin convenience wrapper over ClassList().Contains.
func (e *Element) HasClass(class string) bool {
	return e.ClassList().Contains(class)
}
