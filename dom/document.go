package dom

import (
	"strings"

	"github.com/veryhappydom/happydom/events"
)

// QuirksMode represents the document's quirks mode.
type QuirksMode int

// Quirks mode values.
const (
	NoQuirks      QuirksMode = iota // Standards mode
	Quirks                          // Quirks mode
	LimitedQuirks                   // Almost standards mode
)

// Document represents an HTML document, the root of a node tree
// (spec.md §3). It is one of the two node kinds that carries an event
// listener table, alongside Element.
type Document struct {
	baseNode

	// Doctype is the document's DOCTYPE declaration, or nil.
	Doctype *DocumentType

	// QuirksMode indicates the document's quirks mode.
	QuirksMode QuirksMode

	// Title is cached separately from the <title> element text so a
	// document assembled without a <head> still has a settable title.
	titleOverride *string

	// Location is the document's current URL-component view.
	Location *Location

	// History is the document's session-history stack.
	History *History

	listeners events.Target
	registry  ElementRegistry
}

// NewDocument creates a new empty document with a blank location.
func NewDocument() *Document {
	d := &Document{}
	d.baseNode.init(d)
	d.Location = NewLocation("")
	d.History = newHistory(d, "")
	return d
}

// Type implements Node.
func (d *Document) Type() NodeType {
	return DocumentNodeType
}

// Listeners implements events.EventTarget.
func (d *Document) Listeners() *events.Target {
	return &d.listeners
}

// DispatchEvent runs the capture/target/bubble algorithm; for Document
// the ancestor chain is just the document itself.
func (d *Document) DispatchEvent(ev *events.Event) bool {
	return events.Dispatch([]events.EventTarget{d}, d, ev)
}

// SetMutationSink installs sink as the subscriber notified after every
// tree/attribute mutation anywhere in this document (spec.md §6).
func (d *Document) SetMutationSink(sink MutationSink) {
	d.setMutationSink(sink)
}

// SetElementRegistry installs registry, consulted by CreateElement
// (spec.md §6).
func (d *Document) SetElementRegistry(registry ElementRegistry) {
	d.registry = registry
}

// CreateElement creates a new HTML element, consulting the installed
// ElementRegistry (if any) and invoking its upgrade callback immediately
// after creation.
func (d *Document) CreateElement(tagName string) *Element {
	e := NewElement(tagName)
	if d.registry != nil {
		if upgrade := d.registry.Lookup(e.TagName); upgrade != nil {
			upgrade(e)
		}
	}
	return e
}

// CreateTextNode creates a new text node.
func (d *Document) CreateTextNode(data string) *Text {
	return NewText(data)
}

// CreateComment creates a new comment node.
func (d *Document) CreateComment(data string) *Comment {
	return NewComment(data)
}

// Clone implements Node. Listeners and the mutation sink are never
// copied (spec.md §9).
func (d *Document) Clone(deep bool) Node {
	clone := &Document{
		QuirksMode: d.QuirksMode,
	}
	clone.baseNode.init(clone)
	clone.Location = NewLocation(d.Location.Href)
	clone.History = newHistory(clone, d.Location.Href)

	if d.Doctype != nil {
		clone.Doctype = d.Doctype.Clone(false).(*DocumentType)
	}

	if deep {
		for _, child := range d.children {
			_ = clone.AppendChild(child.Clone(true))
		}
	}

	return clone
}

// TextContent implements Node.
func (d *Document) TextContent() string {
	var sb strings.Builder
	collectText(d, &sb)
	return sb.String()
}

// DocumentElement returns the root element (conventionally <html>).
func (d *Document) DocumentElement() *Element {
	for _, child := range d.children {
		if elem, ok := child.(*Element); ok {
			return elem
		}
	}
	return nil
}

// Head returns the head element, or nil if not found.
func (d *Document) Head() *Element {
	return d.namedChildOfRoot("head")
}

// Body returns the body element, or nil if not found.
func (d *Document) Body() *Element {
	return d.namedChildOfRoot("body")
}

func (d *Document) namedChildOfRoot(tag string) *Element {
	html := d.DocumentElement()
	if html == nil {
		return nil
	}
	for _, child := range html.Children() {
		if elem, ok := child.(*Element); ok && elem.TagName == tag {
			return elem
		}
	}
	return nil
}

// Title returns the document title: an explicit SetTitle override if
// set, otherwise the text content of the first <title> element.
func (d *Document) Title() string {
	if d.titleOverride != nil {
		return *d.titleOverride
	}
	head := d.Head()
	if head == nil {
		return ""
	}
	for _, child := range head.Children() {
		if elem, ok := child.(*Element); ok && elem.TagName == "title" {
			return elem.TextContent()
		}
	}
	return ""
}

// SetTitle sets the document title, either updating the existing
// <title> element's text or overriding it if none exists.
func (d *Document) SetTitle(title string) {
	head := d.Head()
	if head != nil {
		for _, child := range head.Children() {
			if elem, ok := child.(*Element); ok && elem.TagName == "title" {
				elem.SetTextContent(title)
				return
			}
		}
	}
	d.titleOverride = &title
}

// GetElementByID walks the tree looking for an element with a matching
// id attribute, in document order.
func (d *Document) GetElementByID(id string) *Element {
	var found *Element
	walkElements(d, func(e *Element) bool {
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// GetElementsByTagName returns every descendant element with the given
// tag name, in document order.
func (d *Document) GetElementsByTagName(tag string) []*Element {
	var out []*Element
	walkElements(d, func(e *Element) bool {
		if e.TagName == tag {
			out = append(out, e)
		}
		return true
	})
	return out
}

// GetElementsByClassName returns every descendant element carrying the
// given CSS class, in document order.
func (d *Document) GetElementsByClassName(class string) []*Element {
	var out []*Element
	walkElements(d, func(e *Element) bool {
		if e.HasClass(class) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// walkElements visits every descendant Element of n in document order,
// stopping early if visit returns false.
func walkElements(n Node, visit func(*Element) bool) bool {
	for _, child := range n.Children() {
		if el, ok := child.(*Element); ok {
			if !visit(el) {
				return false
			}
		}
		if !walkElements(child, visit) {
			return false
		}
	}
	return true
}

// DocumentType represents a DOCTYPE declaration.
type DocumentType struct {
	parent Node

	// Name is the DOCTYPE name (usually "html").
	Name string

	// PublicID is the public identifier.
	PublicID string

	// SystemID is the system identifier.
	SystemID string
}

// NewDocumentType creates a new DOCTYPE node.
func NewDocumentType(name, publicID, systemID string) *DocumentType {
	return &DocumentType{Name: name, PublicID: publicID, SystemID: systemID}
}

// Type implements Node.
func (dt *DocumentType) Type() NodeType { return DoctypeNodeType }

// Parent implements Node.
func (dt *DocumentType) Parent() Node { return dt.parent }

// SetParent implements Node.
func (dt *DocumentType) SetParent(parent Node) { dt.parent = parent }

// Children implements Node (DOCTYPE nodes have no children).
func (dt *DocumentType) Children() []Node { return nil }

// HasChildNodes implements Node.
func (dt *DocumentType) HasChildNodes() bool { return false }

// AppendChild implements Node; DOCTYPE nodes cannot have children.
func (dt *DocumentType) AppendChild(Node) error { return hierarchyErr("appendChild") }

// InsertBefore implements Node; DOCTYPE nodes cannot have children.
func (dt *DocumentType) InsertBefore(Node, Node) error { return hierarchyErr("insertBefore") }

// RemoveChild implements Node; DOCTYPE nodes have no children to remove.
func (dt *DocumentType) RemoveChild(child Node) error { return notFoundErr("removeChild", child) }

// ReplaceChild implements Node; DOCTYPE nodes have no children to replace.
func (dt *DocumentType) ReplaceChild(_, oldChild Node) (Node, error) {
	return nil, notFoundErr("replaceChild", oldChild)
}

// TextContent implements Node; a DOCTYPE contributes nothing.
func (dt *DocumentType) TextContent() string { return "" }

// Clone implements Node.
func (dt *DocumentType) Clone(bool) Node {
	return &DocumentType{Name: dt.Name, PublicID: dt.PublicID, SystemID: dt.SystemID}
}

func (dt *DocumentType) setMutationSink(MutationSink) {}

// DocumentFragment represents a lightweight container returned by
// parseFragment and used for <template> content.
type DocumentFragment struct {
	baseNode
}

// NewDocumentFragment creates a new, empty document fragment.
func NewDocumentFragment() *DocumentFragment {
	df := &DocumentFragment{}
	df.baseNode.init(df)
	return df
}

// Type implements Node. DocumentFragment has no dedicated legacy
// nodeType in this model; it reuses DocumentNodeType as the closest fit
// since both are container roots rather than content nodes.
func (df *DocumentFragment) Type() NodeType {
	return DocumentNodeType
}

// TextContent implements Node.
func (df *DocumentFragment) TextContent() string {
	var sb strings.Builder
	collectText(df, &sb)
	return sb.String()
}

// Clone implements Node.
func (df *DocumentFragment) Clone(deep bool) Node {
	clone := &DocumentFragment{}
	clone.baseNode.init(clone)

	if deep {
		for _, child := range df.children {
			_ = clone.AppendChild(child.Clone(true))
		}
	}

	return clone
}
