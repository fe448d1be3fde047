package dom

import domerrors "github.com/veryhappydom/happydom/errors"

// Text represents a text node. Text nodes are childless leaves and are
// not event targets (REDESIGN FLAG: only Element and Document carry
// listener tables).
type Text struct {
	parent Node

	// Data is the text content.
	Data string
}

// NewText creates a new text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// Type implements Node.
func (t *Text) Type() NodeType { return TextNodeType }

// Parent implements Node.
func (t *Text) Parent() Node { return t.parent }

// SetParent implements Node.
func (t *Text) SetParent(parent Node) { t.parent = parent }

// Children implements Node (text nodes have no children).
func (t *Text) Children() []Node { return nil }

// HasChildNodes implements Node.
func (t *Text) HasChildNodes() bool { return false }

// AppendChild implements Node; text nodes cannot have children.
func (t *Text) AppendChild(Node) error {
	return &domerrors.HierarchyError{Op: "appendChild"}
}

// InsertBefore implements Node; text nodes cannot have children.
func (t *Text) InsertBefore(Node, Node) error {
	return &domerrors.HierarchyError{Op: "insertBefore"}
}

// RemoveChild implements Node; text nodes have no children to remove.
func (t *Text) RemoveChild(child Node) error {
	return &domerrors.NotFoundError{Op: "removeChild", Node: describeNode(child)}
}

// ReplaceChild implements Node; text nodes have no children to replace.
func (t *Text) ReplaceChild(_, oldChild Node) (Node, error) {
	return nil, &domerrors.NotFoundError{Op: "replaceChild", Node: describeNode(oldChild)}
}

// TextContent implements Node.
func (t *Text) TextContent() string { return t.Data }

// Clone implements Node.
func (t *Text) Clone(bool) Node { return &Text{Data: t.Data} }

func (t *Text) setMutationSink(MutationSink) {}

// Comment represents a comment node. Comments are excluded from
// TextContent (spec.md §3 invariant 6) and are not event targets.
type Comment struct {
	parent Node

	// Data is the comment content (without <!-- and -->).
	Data string
}

// NewComment creates a new comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

// Type implements Node.
func (c *Comment) Type() NodeType { return CommentNodeType }

// Parent implements Node.
func (c *Comment) Parent() Node { return c.parent }

// SetParent implements Node.
func (c *Comment) SetParent(parent Node) { c.parent = parent }

// Children implements Node (comment nodes have no children).
func (c *Comment) Children() []Node { return nil }

// HasChildNodes implements Node.
func (c *Comment) HasChildNodes() bool { return false }

// AppendChild implements Node; comment nodes cannot have children.
func (c *Comment) AppendChild(Node) error {
	return &domerrors.HierarchyError{Op: "appendChild"}
}

// InsertBefore implements Node; comment nodes cannot have children.
func (c *Comment) InsertBefore(Node, Node) error {
	return &domerrors.HierarchyError{Op: "insertBefore"}
}

// RemoveChild implements Node; comment nodes have no children to remove.
func (c *Comment) RemoveChild(child Node) error {
	return &domerrors.NotFoundError{Op: "removeChild", Node: describeNode(child)}
}

// ReplaceChild implements Node; comment nodes have no children to replace.
func (c *Comment) ReplaceChild(_, oldChild Node) (Node, error) {
	return nil, &domerrors.NotFoundError{Op: "replaceChild", Node: describeNode(oldChild)}
}

// TextContent implements Node; comments contribute nothing to an
// ancestor's TextContent, but asking a Comment directly returns its data.
func (c *Comment) TextContent() string { return c.Data }

// Clone implements Node.
func (c *Comment) Clone(bool) Node { return &Comment{Data: c.Data} }

func (c *Comment) setMutationSink(MutationSink) {}
