// Package errors defines the error taxonomy shared across the tokenizer,
// tree builder, DOM mutation API, and selector engine (spec.md §7).
package errors

import (
	"fmt"
)

// SelectorError represents an InvalidSelector failure raised from the
// query/matches entry points.
type SelectorError struct {
	// Selector is the original selector string.
	Selector string

	// Position is the character position where the error occurred.
	Position int

	// Message describes the error.
	Message string
}

// Error implements the error interface.
func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q at position %d: %s", e.Selector, e.Position, e.Message)
}

// NotFoundError is raised by removeChild/replaceChild when the target is
// not among the node's children, or by insertBefore when the reference
// node is not a child.
type NotFoundError struct {
	Op   string // "removeChild", "replaceChild", or "insertBefore"
	Node string // best-effort description of the node that was not found
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s is not a child of this node", e.Op, e.Node)
}

// HierarchyError is raised when a mutation would make a node its own
// ancestor (spec.md §3 invariant 1).
type HierarchyError struct {
	Op string
}

// Error implements the error interface.
func (e *HierarchyError) Error() string {
	return fmt.Sprintf("%s: node would become its own ancestor", e.Op)
}

// MalformedHTMLError is a structural tokenizer failure. Per spec.md §4.2,
// the only construct that raises this (rather than degrading to text) is
// an unterminated comment.
type MalformedHTMLError struct {
	Message string
	Line    int
	Column  int
}

// Error implements the error interface.
func (e *MalformedHTMLError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed HTML at %d:%d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("malformed HTML: %s", e.Message)
}

// InternalError guards against broken invariants during development; it
// should never occur in a correctly functioning tree.
type InternalError struct {
	Message string
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}
