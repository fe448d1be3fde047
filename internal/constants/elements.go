// Package constants defines the small set of HTML facts the tokenizer,
// tree builder, and serializer all need to agree on.
package constants

// VoidElements have no content and no closing tag; the tree builder never
// pushes them onto the open-element stack and the serializer emits them
// self-closing.
var VoidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement reports whether tag (already canonicalized) is a void
// element per spec.md §3 invariant 5.
func IsVoidElement(tag string) bool {
	return VoidElements[tag]
}
