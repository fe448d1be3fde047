package dom

import "strings"

// ClassList is a derived, read-mostly view over the element's class
// attribute (spec.md REDESIGN FLAG: "classList/style derived, not
// mirrored" — there is no live object kept in sync on every attribute
// write; each call recomputes from the current class attribute string).
type ClassList struct {
	el *Element
}

func newClassList(e *Element) *ClassList {
	return &ClassList{el: e}
}

func (c *ClassList) tokens() []string {
	return strings.Fields(c.el.Attr("class"))
}

// Contains reports whether class is present.
func (c *ClassList) Contains(class string) bool {
	for _, t := range c.tokens() {
		if t == class {
			return true
		}
	}
	return false
}

// Add appends classes that are not already present, writing the class
// attribute once.
func (c *ClassList) Add(classes ...string) {
	tokens := c.tokens()
	for _, cl := range classes {
		if cl == "" {
			continue
		}
		found := false
		for _, t := range tokens {
			if t == cl {
				found = true
				break
			}
		}
		if !found {
			tokens = append(tokens, cl)
		}
	}
	c.write(tokens)
}

// Remove deletes classes if present.
func (c *ClassList) Remove(classes ...string) {
	remove := make(map[string]bool, len(classes))
	for _, cl := range classes {
		remove[cl] = true
	}
	tokens := c.tokens()
	out := tokens[:0:0]
	for _, t := range tokens {
		if !remove[t] {
			out = append(out, t)
		}
	}
	c.write(out)
}

// Toggle adds class if absent and removes it if present, returning the
// resulting membership state. If force is non-nil, it dictates the end
// state instead of toggling.
func (c *ClassList) Toggle(class string, force ...bool) bool {
	want := !c.Contains(class)
	if len(force) > 0 {
		want = force[0]
	}
	if want {
		c.Add(class)
	} else {
		c.Remove(class)
	}
	return want
}

// Values returns the current class tokens in order.
func (c *ClassList) Values() []string {
	return c.tokens()
}

func (c *ClassList) write(tokens []string) {
	if len(tokens) == 0 {
		c.el.RemoveAttr("class")
		return
	}
	c.el.SetAttr("class", strings.Join(tokens, " "))
}
