package dom

import (
	"testing"

	"github.com/veryhappydom/happydom/events"
)

func TestDocumentInsertBeforeSetsParent(t *testing.T) {
	doc := NewDocument()
	html := NewElement("html")
	head := NewElement("head")
	body := NewElement("body")

	_ = doc.AppendChild(html)
	_ = html.AppendChild(body)
	_ = html.InsertBefore(head, body)

	if head.Parent() != Node(html) {
		t.Fatalf("head.Parent() = %T, want html element", head.Parent())
	}
	if body.Parent() != Node(html) {
		t.Fatalf("body.Parent() = %T, want html element", body.Parent())
	}
	if doc.Parent() != nil {
		t.Fatalf("doc.Parent() = %T, want nil", doc.Parent())
	}
}

func TestDocumentFragmentAppendChildSetsParent(t *testing.T) {
	df := NewDocumentFragment()
	div := NewElement("div")
	_ = df.AppendChild(div)
	if div.Parent() != Node(df) {
		t.Fatalf("div.Parent() = %T, want DocumentFragment", div.Parent())
	}
}

// TestSetAttributeIdempotent covers spec.md §8 property 5: calling
// setAttribute twice with the same value leaves the attribute set
// unchanged.
func TestSetAttributeIdempotent(t *testing.T) {
	el := NewElement("div")
	el.SetAttr("class", "a")
	el.SetAttr("class", "a")
	if got := el.Attr("class"); got != "a" {
		t.Fatalf("Attr(class) = %q, want %q", got, "a")
	}
	if n := len(el.Attributes.All()); n != 1 {
		t.Fatalf("len(Attributes.All()) = %d, want 1", n)
	}
}

// TestClassListAddIdempotent covers spec.md §8 property 5 applied to
// classList.add.
func TestClassListAddIdempotent(t *testing.T) {
	el := NewElement("div")
	el.ClassList().Add("a", "b")
	el.ClassList().Add("a")
	if got, want := el.Attr("class"), "a b"; got != want {
		t.Fatalf("class = %q, want %q", got, want)
	}
}

// TestClassListToggleIdempotent covers spec.md §8 property 5 applied to
// classList.toggle with an explicit force value.
func TestClassListToggleIdempotent(t *testing.T) {
	el := NewElement("div")
	el.ClassList().Add("a")

	first := el.ClassList().Toggle("a", true)
	second := el.ClassList().Toggle("a", true)
	if !first || !second {
		t.Fatalf("Toggle(a, true) = %v, %v, want true, true", first, second)
	}
	if !el.ClassList().Contains("a") {
		t.Fatal("class a should still be present")
	}
}

func TestRemoveChildDetachesSubtree(t *testing.T) {
	parent := NewElement("ul")
	li := NewElement("li")
	_ = parent.AppendChild(li)

	if err := parent.RemoveChild(li); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if li.Parent() != nil {
		t.Fatalf("li.Parent() = %T, want nil", li.Parent())
	}
	if len(parent.Children()) != 0 {
		t.Fatalf("len(parent.Children()) = %d, want 0", len(parent.Children()))
	}
}

func TestRemoveChildNotFoundErrors(t *testing.T) {
	parent := NewElement("div")
	other := NewElement("span")
	if err := parent.RemoveChild(other); err == nil {
		t.Fatal("RemoveChild of a non-child should error")
	}
}

func TestCloneDeepCopiesSubtreeNotListeners(t *testing.T) {
	el := NewElement("div")
	el.SetAttr("id", "x")
	child := NewElement("span")
	child.SetTextContent("hi")
	_ = el.AppendChild(child)

	fired := false
	el.Listeners().AddEventListener("click", func(*events.Event) { fired = true }, false)

	clone := el.Clone(true).(*Element)
	if clone == el {
		t.Fatal("Clone must return a distinct node")
	}
	if clone.Attr("id") != "x" {
		t.Fatalf("clone id = %q, want x", clone.Attr("id"))
	}
	if len(clone.Children()) != 1 {
		t.Fatalf("len(clone.Children()) = %d, want 1", len(clone.Children()))
	}

	clone.DispatchEvent(events.NewEvent("click", false, false))
	if fired {
		t.Fatal("Clone must not copy listeners registered on the original")
	}
	el.DispatchEvent(events.NewEvent("click", false, false))
	if !fired {
		t.Fatal("original element's listener should still fire")
	}
}

// TestCreateElementConsultsRegistry covers spec.md §6's
// ElementRegistry extension point.
func TestCreateElementConsultsRegistry(t *testing.T) {
	doc := NewDocument()
	doc.SetElementRegistry(registryFunc(func(tag string) func(*Element) {
		if tag != "my-widget" {
			return nil
		}
		return func(e *Element) { e.SetAttr("data-upgraded", "true") }
	}))

	el := doc.CreateElement("my-widget")
	if el.Attr("data-upgraded") != "true" {
		t.Fatalf("data-upgraded = %q, want true", el.Attr("data-upgraded"))
	}

	plain := doc.CreateElement("div")
	if plain.HasAttr("data-upgraded") {
		t.Fatal("unregistered tag should not be upgraded")
	}
}

// TestMutationSinkNotifiedOnAppendAndAttr covers spec.md §6's mutation
// notification extension point.
func TestMutationSinkNotifiedOnAppendAndAttr(t *testing.T) {
	doc := NewDocument()
	sink := &recordingSink{}
	doc.SetMutationSink(sink)

	html := NewElement("html")
	_ = doc.AppendChild(html)

	body := NewElement("body")
	_ = html.AppendChild(body)
	body.SetAttr("class", "a")

	if len(sink.kinds) == 0 {
		t.Fatal("expected at least one mutation notification")
	}
	var sawAttr bool
	for _, k := range sink.kinds {
		if k == MutationAttributes {
			sawAttr = true
		}
	}
	if !sawAttr {
		t.Fatalf("kinds = %v, want to include MutationAttributes", sink.kinds)
	}
}

func TestGetElementByIDAndTagAndClass(t *testing.T) {
	doc := NewDocument()
	html := NewElement("html")
	_ = doc.AppendChild(html)
	body := NewElement("body")
	_ = html.AppendChild(body)

	p1 := NewElement("p")
	p1.SetAttr("id", "intro")
	p1.ClassList().Add("text")
	p2 := NewElement("p")
	p2.ClassList().Add("text", "muted")
	_ = body.AppendChild(p1)
	_ = body.AppendChild(p2)

	if got := doc.GetElementByID("intro"); got != p1 {
		t.Fatalf("GetElementByID(intro) = %+v, want p1", got)
	}
	if got := doc.GetElementsByTagName("p"); len(got) != 2 {
		t.Fatalf("GetElementsByTagName(p) = %d, want 2", len(got))
	}
	if got := doc.GetElementsByClassName("muted"); len(got) != 1 || got[0] != p2 {
		t.Fatalf("GetElementsByClassName(muted) = %+v, want [p2]", got)
	}
}

// TestElementChildrenFiltersToElements covers spec.md §4.4: children is an
// element-only view, unlike Children()'s raw Text/Comment-inclusive list.
func TestElementChildrenFiltersToElements(t *testing.T) {
	ul := NewElement("ul")
	li1 := NewElement("li")
	li2 := NewElement("li")
	_ = ul.AppendChild(li1)
	_ = ul.AppendChild(NewText("  "))
	_ = ul.AppendChild(NewComment("note"))
	_ = ul.AppendChild(li2)

	if len(ul.Children()) != 4 {
		t.Fatalf("len(Children()) = %d, want 4 (raw childNodes)", len(ul.Children()))
	}
	kids := ul.ElementChildren()
	if len(kids) != 2 || kids[0] != li1 || kids[1] != li2 {
		t.Fatalf("ElementChildren() = %+v, want [li1, li2]", kids)
	}
}

// TestNextPreviousElementSiblingSkipTextAndComments covers spec.md §4.4's
// nextElementSibling/previousElementSibling walk methods.
func TestNextPreviousElementSiblingSkipTextAndComments(t *testing.T) {
	ul := NewElement("ul")
	li1 := NewElement("li")
	li2 := NewElement("li")
	li3 := NewElement("li")
	_ = ul.AppendChild(li1)
	_ = ul.AppendChild(NewText("\n"))
	_ = ul.AppendChild(li2)
	_ = ul.AppendChild(NewComment("x"))
	_ = ul.AppendChild(li3)

	if got := li1.NextElementSibling(); got != li2 {
		t.Fatalf("li1.NextElementSibling() = %+v, want li2", got)
	}
	if got := li2.NextElementSibling(); got != li3 {
		t.Fatalf("li2.NextElementSibling() = %+v, want li3", got)
	}
	if got := li3.NextElementSibling(); got != nil {
		t.Fatalf("li3.NextElementSibling() = %+v, want nil", got)
	}
	if got := li3.PreviousElementSibling(); got != li2 {
		t.Fatalf("li3.PreviousElementSibling() = %+v, want li2", got)
	}
	if got := li1.PreviousElementSibling(); got != nil {
		t.Fatalf("li1.PreviousElementSibling() = %+v, want nil", got)
	}
}

// TestClassListRemoveLastTokenRemovesAttribute covers spec.md §4.5:
// removing all class tokens removes the class attribute entirely.
func TestClassListRemoveLastTokenRemovesAttribute(t *testing.T) {
	el := NewElement("div")
	el.ClassList().Add("a")
	el.ClassList().Remove("a")

	if el.HasAttr("class") {
		t.Fatalf("class attribute = %q, want attribute removed", el.Attr("class"))
	}
}

// TestRemovePropertyLastDeclRemovesStyleAttribute covers spec.md §4.5:
// writing the empty declaration set removes the style attribute entirely.
func TestRemovePropertyLastDeclRemovesStyleAttribute(t *testing.T) {
	el := NewElement("div")
	el.Style().SetProperty("color", "red")
	el.Style().RemoveProperty("color")

	if el.HasAttr("style") {
		t.Fatalf("style attribute = %q, want attribute removed", el.Attr("style"))
	}
}

type registryFunc func(tag string) func(*Element)

func (f registryFunc) Lookup(tag string) func(*Element) { return f(tag) }

type recordingSink struct {
	kinds []MutationKind
}

func (s *recordingSink) Notify(m Mutation) {
	s.kinds = append(s.kinds, m.Kind)
}
