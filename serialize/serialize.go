// Package serialize emits HTML text from a node subtree (spec.md §4.6,
// C6).
package serialize

import (
	"strings"

	"github.com/veryhappydom/happydom/dom"
	"github.com/veryhappydom/happydom/internal/constants"
)

// Options configures serialization behavior.
type Options struct {
	// Pretty enables newline + indent formatting between block-level
	// element children. It never alters document order or content, only
	// inter-element whitespace.
	Pretty bool

	// IndentSize is the number of spaces per indentation level when
	// Pretty is set.
	IndentSize int
}

// DefaultOptions returns compact (non-pretty) serialization.
func DefaultOptions() Options {
	return Options{IndentSize: 2}
}

// ToHTML serializes node (and its descendants) to HTML text. Per
// spec.md §4.6, no entity encoding of attribute or text values is
// performed — a stored value is emitted verbatim.
func ToHTML(node dom.Node, opts Options) string {
	var sb strings.Builder
	serializeNode(&sb, node, opts, 0, false)
	return sb.String()
}

func serializeNode(sb *strings.Builder, node dom.Node, opts Options, depth int, inline bool) {
	switch n := node.(type) {
	case *dom.Document:
		serializeDocument(sb, n, opts, depth)
	case *dom.DocumentFragment:
		for _, child := range n.Children() {
			serializeNode(sb, child, opts, depth, inline)
		}
	case *dom.DocumentType:
		serializeDoctype(sb, n)
	case *dom.Element:
		serializeElement(sb, n, opts, depth, inline)
	case *dom.Text:
		sb.WriteString(n.Data)
	case *dom.Comment:
		serializeComment(sb, n, opts, depth, inline)
	}
}

func serializeDocument(sb *strings.Builder, doc *dom.Document, opts Options, depth int) {
	if doc.Doctype != nil {
		serializeDoctype(sb, doc.Doctype)
		if opts.Pretty {
			sb.WriteByte('\n')
		}
	}
	for _, child := range doc.Children() {
		serializeNode(sb, child, opts, depth, false)
	}
}

func serializeDoctype(sb *strings.Builder, dt *dom.DocumentType) {
	sb.WriteString("<!DOCTYPE ")
	sb.WriteString(dt.Name)
	switch {
	case dt.PublicID != "":
		sb.WriteString(" PUBLIC \"")
		sb.WriteString(dt.PublicID)
		sb.WriteByte('"')
		if dt.SystemID != "" {
			sb.WriteString(" \"")
			sb.WriteString(dt.SystemID)
			sb.WriteByte('"')
		}
	case dt.SystemID != "":
		sb.WriteString(" SYSTEM \"")
		sb.WriteString(dt.SystemID)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
}

// serializeElement emits `<tag attr="value" …>children</tag>`, or the
// self-closing `<tag … />` form for void elements with no children
// emitted (spec.md §3 invariant 5, §4.6).
func serializeElement(sb *strings.Builder, elem *dom.Element, opts Options, depth int, inline bool) {
	if opts.Pretty && depth > 0 && !inline {
		sb.WriteString(strings.Repeat(" ", depth*opts.IndentSize))
	}

	sb.WriteByte('<')
	sb.WriteString(elem.TagName)
	for _, attr := range elem.Attributes.All() {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString("=\"")
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}

	if constants.IsVoidElement(elem.TagName) {
		sb.WriteString(" />")
		return
	}
	sb.WriteByte('>')

	if opts.Pretty {
		serializeChildrenPretty(sb, elem.Children(), opts, depth)
	} else {
		for _, child := range elem.Children() {
			serializeNode(sb, child, opts, depth+1, false)
		}
	}

	sb.WriteString("</")
	sb.WriteString(elem.TagName)
	sb.WriteByte('>')
}

// serializeChildrenPretty puts each significant (non-whitespace-only
// text) child on its own indented line when any child is block-level;
// purely inline content (e.g. "text <b>bold</b> more") stays on one
// line to avoid introducing spurious whitespace into textContent.
func serializeChildrenPretty(sb *strings.Builder, children []dom.Node, opts Options, depth int) {
	significant := make([]dom.Node, 0, len(children))
	for _, child := range children {
		if text, ok := child.(*dom.Text); ok && isWhitespaceOnly(text.Data) {
			continue
		}
		significant = append(significant, child)
	}
	if len(significant) == 0 {
		return
	}

	hasBlock := false
	for _, child := range significant {
		if elem, ok := child.(*dom.Element); ok && isBlockElement(elem.TagName) {
			hasBlock = true
			break
		}
	}

	for _, child := range significant {
		if hasBlock {
			sb.WriteByte('\n')
			serializeNode(sb, child, opts, depth+1, false)
		} else {
			serializeNode(sb, child, opts, depth, true)
		}
	}
	if hasBlock {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", depth*opts.IndentSize))
	}
}

func serializeComment(sb *strings.Builder, comment *dom.Comment, opts Options, depth int, inline bool) {
	if opts.Pretty && depth > 0 && !inline {
		sb.WriteString(strings.Repeat(" ", depth*opts.IndentSize))
	}
	sb.WriteString("<!--")
	sb.WriteString(comment.Data)
	sb.WriteString("-->")
}

func isWhitespaceOnly(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isBlockElement(tag string) bool {
	switch tag {
	case "address", "article", "aside", "blockquote", "body", "canvas", "dd", "div",
		"dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hr", "html", "li", "main",
		"nav", "noscript", "ol", "p", "pre", "section", "table", "tbody", "td", "tfoot",
		"th", "thead", "title", "tr", "ul", "video":
		return true
	default:
		return false
	}
}
