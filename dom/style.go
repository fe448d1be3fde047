package dom

import "strings"

// CSSStyleDeclaration is a derived view over the element's style
// attribute text, parsed into ordered (property, value) pairs on demand.
// Per the REDESIGN FLAG "no dynamic property trapping," callers use the
// explicit getPropertyValue/setProperty/removeProperty trio instead of a
// dynamically-typed property-per-CSS-rule object.
type CSSStyleDeclaration struct {
	el *Element
}

func newCSSStyleDeclaration(e *Element) *CSSStyleDeclaration {
	return &CSSStyleDeclaration{el: e}
}

type styleDecl struct {
	property string
	value    string
}

func parseStyleAttr(text string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.IndexByte(part, ':')
		if idx < 0 {
			continue
		}
		prop := strings.TrimSpace(part[:idx])
		val := strings.TrimSpace(part[idx+1:])
		if prop == "" {
			continue
		}
		decls = append(decls, styleDecl{property: prop, value: val})
	}
	return decls
}

func serializeStyleDecls(decls []styleDecl) string {
	var sb strings.Builder
	for _, d := range decls {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.property)
		sb.WriteString(": ")
		sb.WriteString(d.value)
		sb.WriteByte(';')
	}
	return sb.String()
}

// GetPropertyValue returns the value for property, or "" if unset.
func (s *CSSStyleDeclaration) GetPropertyValue(property string) string {
	for _, d := range parseStyleAttr(s.el.Attr("style")) {
		if strings.EqualFold(d.property, property) {
			return d.value
		}
	}
	return ""
}

// SetProperty sets property to value, appending it if new or updating it
// in place if already present, then rewrites the style attribute.
func (s *CSSStyleDeclaration) SetProperty(property, value string) {
	decls := parseStyleAttr(s.el.Attr("style"))
	for i := range decls {
		if strings.EqualFold(decls[i].property, property) {
			decls[i].value = value
			s.el.SetAttr("style", serializeStyleDecls(decls))
			return
		}
	}
	decls = append(decls, styleDecl{property: property, value: value})
	s.el.SetAttr("style", serializeStyleDecls(decls))
}

// RemoveProperty deletes property if present and returns its prior value.
func (s *CSSStyleDeclaration) RemoveProperty(property string) string {
	decls := parseStyleAttr(s.el.Attr("style"))
	for i, d := range decls {
		if strings.EqualFold(d.property, property) {
			prior := d.value
			decls = append(decls[:i], decls[i+1:]...)
			if len(decls) == 0 {
				s.el.RemoveAttr("style")
			} else {
				s.el.SetAttr("style", serializeStyleDecls(decls))
			}
			return prior
		}
	}
	return ""
}

// CSSText returns the full serialized style attribute text.
func (s *CSSStyleDeclaration) CSSText() string {
	return s.el.Attr("style")
}
