package serialize

import (
	"testing"

	"github.com/veryhappydom/happydom/dom"
)

func TestToHTMLVoidElementSelfCloses(t *testing.T) {
	img := dom.NewElement("img")
	img.SetAttr("src", "a.png")
	got := ToHTML(img, DefaultOptions())
	want := `<img src="a.png" />`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToHTMLNoEntityEncoding(t *testing.T) {
	p := dom.NewElement("p")
	_ = p.AppendChild(dom.NewText("a & b < c"))
	got := ToHTML(p, DefaultOptions())
	want := `<p>a & b < c</p>`
	if got != want {
		t.Fatalf("got %q, want %q (spec.md says no entity encoding)", got, want)
	}
}

func TestToHTMLAttributeOrderPreserved(t *testing.T) {
	div := dom.NewElement("div")
	div.SetAttr("b", "2")
	div.SetAttr("a", "1")
	got := ToHTML(div, DefaultOptions())
	want := `<div b="2" a="1"></div>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToHTMLComment(t *testing.T) {
	c := dom.NewComment(" note ")
	got := ToHTML(c, DefaultOptions())
	if got != "<!-- note -->" {
		t.Fatalf("got %q", got)
	}
}
