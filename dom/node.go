// Package dom provides the node model, attribute/classList/style views,
// and tree-mutation API described in spec.md §3–§4.5 — C4 and C5 of the
// design.
package dom

import domerrors "github.com/veryhappydom/happydom/errors"

// NodeType represents the type of a DOM node.
type NodeType int

// Node types as defined by the DOM specification.
const (
	ElementNodeType  NodeType = 1
	TextNodeType     NodeType = 3
	CommentNodeType  NodeType = 8
	DocumentNodeType NodeType = 9
	DoctypeNodeType  NodeType = 10
)

// Node is the interface implemented by all DOM node types.
type Node interface {
	// Type returns the node type.
	Type() NodeType

	// Parent returns the parent node, or nil if this is the root.
	Parent() Node

	// SetParent sets the parent node.
	SetParent(parent Node)

	// Children returns the child nodes.
	Children() []Node

	// AppendChild adds a child node (spec.md §4.4). It reparents child if
	// child is already attached elsewhere, and rejects the call with a
	// HierarchyError if child is an ancestor of this node.
	AppendChild(child Node) error

	// InsertBefore inserts a new child before a reference child. A nil
	// refChild behaves like AppendChild. Returns NotFoundError if refChild
	// is non-nil and not a child of this node.
	InsertBefore(newChild, refChild Node) error

	// RemoveChild removes a child node, returning NotFoundError if child
	// is not a child of this node.
	RemoveChild(child Node) error

	// ReplaceChild replaces oldChild with newChild, returning the replaced
	// (old) child. Returns NotFoundError if oldChild is not a child.
	ReplaceChild(newChild, oldChild Node) (Node, error)

	// HasChildNodes returns true if this node has any children.
	HasChildNodes() bool

	// Clone creates a copy of this node. If deep is true, all descendants
	// are also cloned. Event listeners are never copied (spec.md §9).
	Clone(deep bool) Node

	// TextContent concatenates descendant text in document order,
	// skipping comments (spec.md §3 invariant 6).
	TextContent() string

	// setMutationSink installs the sink that AppendChild/etc notify after
	// a successful mutation, propagating it to the subtree rooted here.
	setMutationSink(sink MutationSink)
}

// MutationKind identifies the category of a mutation delivered to a
// MutationSink (spec.md §6 "Mutation notification").
type MutationKind int

// Mutation kinds.
const (
	MutationChildList MutationKind = iota
	MutationAttributes
	MutationCharacterData
)

// Mutation describes one observed change, delivered after the mutation
// has already taken effect.
type Mutation struct {
	Kind   MutationKind
	Target Node
}

// MutationSink is an optional subscriber notified after each tree or
// attribute mutation. It is an extension point for layers outside the DOM
// core (a MutationObserver-style simulation, a diagnostic logger) — the
// core calls Notify synchronously and the subscriber decides how to queue
// or coalesce; install one with Document.SetMutationSink.
type MutationSink interface {
	Notify(Mutation)
}

// ElementRegistry is consulted by Document.CreateElement at creation
// time, keyed on canonicalized tag name. It is the extension point a
// custom-element simulation hooks into (spec.md §6); install one with
// Document.SetElementRegistry.
type ElementRegistry interface {
	// Lookup returns an upgrade callback for tag, or nil if tag is not
	// registered.
	Lookup(tag string) func(*Element)
}

// baseNode provides common functionality for container node types
// (Element, Document, DocumentFragment). Text and Comment are childless
// leaves and implement Node directly without it.
type baseNode struct {
	self     Node
	parent   Node
	children []Node
	sink     MutationSink
}

func (n *baseNode) init(self Node) {
	n.self = self
}

func (n *baseNode) Parent() Node {
	return n.parent
}

func (n *baseNode) SetParent(parent Node) {
	n.parent = parent
}

func (n *baseNode) Children() []Node {
	return n.children
}

func (n *baseNode) HasChildNodes() bool {
	return len(n.children) > 0
}

func (n *baseNode) setMutationSink(sink MutationSink) {
	n.sink = sink
	for _, c := range n.children {
		c.setMutationSink(sink)
	}
}

func (n *baseNode) notify(kind MutationKind) {
	if n.sink != nil {
		n.sink.Notify(Mutation{Kind: kind, Target: n.self})
	}
}

// AppendChild adds child as the last child of this node.
func (n *baseNode) AppendChild(child Node) error {
	if isAncestorOf(child, n.self) {
		return &domerrors.HierarchyError{Op: "appendChild"}
	}
	detachFromCurrentParent(child)
	child.SetParent(n.self)
	child.setMutationSink(n.sink)
	n.children = append(n.children, child)
	n.notify(MutationChildList)
	return nil
}

// InsertBefore inserts newChild immediately before refChild. A nil
// refChild is equivalent to AppendChild.
func (n *baseNode) InsertBefore(newChild, refChild Node) error {
	if refChild == nil {
		return n.AppendChild(newChild)
	}
	if isAncestorOf(newChild, n.self) {
		return &domerrors.HierarchyError{Op: "insertBefore"}
	}
	for i, child := range n.children {
		if child == refChild {
			detachFromCurrentParent(newChild)
			// detaching newChild may have shifted indices if it was a
			// sibling of refChild in this same list; recompute.
			for j, c := range n.children {
				if c == refChild {
					i = j
					break
				}
			}
			newChild.SetParent(n.self)
			newChild.setMutationSink(n.sink)
			rest := append([]Node{newChild}, n.children[i:]...)
			n.children = append(n.children[:i], rest...)
			n.notify(MutationChildList)
			return nil
		}
	}
	return &domerrors.NotFoundError{Op: "insertBefore", Node: describeNode(refChild)}
}

// RemoveChild removes child from this node's child list.
func (n *baseNode) RemoveChild(child Node) error {
	for i, c := range n.children {
		if c == child {
			child.SetParent(nil)
			child.setMutationSink(nil)
			n.children = append(n.children[:i], n.children[i+1:]...)
			n.notify(MutationChildList)
			return nil
		}
	}
	return &domerrors.NotFoundError{Op: "removeChild", Node: describeNode(child)}
}

// ReplaceChild swaps oldChild for newChild, returning oldChild.
func (n *baseNode) ReplaceChild(newChild, oldChild Node) (Node, error) {
	if isAncestorOf(newChild, n.self) {
		return nil, &domerrors.HierarchyError{Op: "replaceChild"}
	}
	for i, c := range n.children {
		if c == oldChild {
			detachFromCurrentParent(newChild)
			for j, cc := range n.children {
				if cc == oldChild {
					i = j
					break
				}
			}
			newChild.SetParent(n.self)
			newChild.setMutationSink(n.sink)
			oldChild.SetParent(nil)
			oldChild.setMutationSink(nil)
			n.children[i] = newChild
			n.notify(MutationChildList)
			return oldChild, nil
		}
	}
	return nil, &domerrors.NotFoundError{Op: "replaceChild", Node: describeNode(oldChild)}
}

// detachFromCurrentParent severs child's existing parent link before it
// is attached elsewhere (spec.md §3 invariant 2: a node has at most one
// parent).
func detachFromCurrentParent(child Node) {
	parent := child.Parent()
	if parent == nil {
		return
	}
	_ = parent.RemoveChild(child)
}

// isAncestorOf reports whether candidate is target itself or one of
// target's ancestors, used to reject mutations that would introduce a
// cycle (spec.md §3 invariant 1, §7 HierarchyError).
func isAncestorOf(candidate, target Node) bool {
	if candidate == nil || target == nil {
		return false
	}
	for n := target; n != nil; n = n.Parent() {
		if n == candidate {
			return true
		}
	}
	return false
}

func hierarchyErr(op string) error {
	return &domerrors.HierarchyError{Op: op}
}

func notFoundErr(op string, n Node) error {
	return &domerrors.NotFoundError{Op: op, Node: describeNode(n)}
}

func describeNode(n Node) string {
	if el, ok := n.(*Element); ok {
		return "<" + el.TagName + ">"
	}
	switch n.Type() {
	case TextNodeType:
		return "#text"
	case CommentNodeType:
		return "#comment"
	case DocumentNodeType:
		return "#document"
	default:
		return "#node"
	}
}
