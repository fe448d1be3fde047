package dom

import "strings"

// fragmentParser and htmlSerializer are injected by the top-level
// package at startup. dom cannot import treebuilder or serialize
// directly — both of those packages import dom, so wiring InnerHTML
// through a direct call would be an import cycle. The teacher's
// dom/selector.go solved the same shape of problem (Element needing a
// capability owned by a package that depends on dom) with a
// package-level function variable; this reuses that technique where,
// unlike the selector case, the cycle is real rather than avoidable.
var (
	fragmentParser func(html string) ([]Node, error)
	htmlSerializer func(n Node) string
)

// SetFragmentParser installs the parser InnerHTML's setter and
// SetInnerHTML use to turn markup into nodes (spec.md §3 invariant 7).
func SetFragmentParser(fn func(html string) ([]Node, error)) {
	fragmentParser = fn
}

// SetSerializer installs the serializer InnerHTML's and OuterHTML's
// getters use to render nodes back to markup (spec.md §4.6).
func SetSerializer(fn func(n Node) string) {
	htmlSerializer = fn
}

// InnerHTML serializes the element's children (spec.md §4.5: "innerHTML:
// getter serializes children").
func (e *Element) InnerHTML() string {
	if htmlSerializer == nil {
		return ""
	}
	var sb strings.Builder
	for _, child := range e.children {
		sb.WriteString(htmlSerializer(child))
	}
	return sb.String()
}

// SetInnerHTML parses html as a fragment and replaces the element's
// children with the result, re-parenting each new child to e (spec.md §3
// invariant 7).
func (e *Element) SetInnerHTML(html string) error {
	if fragmentParser == nil {
		return notFoundErr("SetInnerHTML", e)
	}
	nodes, err := fragmentParser(html)
	if err != nil {
		return err
	}
	for _, c := range append([]Node(nil), e.children...) {
		_ = e.RemoveChild(c)
	}
	for _, n := range nodes {
		if err := e.AppendChild(n); err != nil {
			return err
		}
	}
	return nil
}

// OuterHTML serializes the element itself, including its own tag
// (spec.md §4.5: "outerHTML: getter").
func (e *Element) OuterHTML() string {
	if htmlSerializer == nil {
		return ""
	}
	return htmlSerializer(e)
}
