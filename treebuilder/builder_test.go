package treebuilder

import (
	"testing"

	"github.com/veryhappydom/happydom/dom"
)

func TestBuildFragmentNesting(t *testing.T) {
	children, err := BuildFragment(`<div><p>hi</p></div>`)
	if err != nil {
		t.Fatalf("BuildFragment: %v", err)
	}
	if len(children) != 1 {
		t.Fatalf("children = %d, want 1", len(children))
	}
	div, ok := children[0].(*dom.Element)
	if !ok || div.TagName != "div" {
		t.Fatalf("children[0] = %+v", children[0])
	}
	if len(div.Children()) != 1 {
		t.Fatalf("div children = %d, want 1", len(div.Children()))
	}
	p := div.Children()[0].(*dom.Element)
	if p.TagName != "p" || p.TextContent() != "hi" {
		t.Fatalf("p = %+v", p)
	}
}

func TestBuildFragmentVoidElementNotPushed(t *testing.T) {
	children, err := BuildFragment(`<div><img src="x.png">after</div>`)
	if err != nil {
		t.Fatalf("BuildFragment: %v", err)
	}
	div := children[0].(*dom.Element)
	if len(div.Children()) != 2 {
		t.Fatalf("div children = %+v, want [img, text]", div.Children())
	}
	img := div.Children()[0].(*dom.Element)
	if img.TagName != "img" || img.Attr("src") != "x.png" {
		t.Fatalf("img = %+v", img)
	}
}

func TestBuildFragmentUnmatchedCloseTagIgnored(t *testing.T) {
	children, err := BuildFragment(`<div>a</span>b</div>`)
	if err != nil {
		t.Fatalf("BuildFragment: %v", err)
	}
	div := children[0].(*dom.Element)
	if div.TextContent() != "ab" {
		t.Fatalf("div text = %q, want %q", div.TextContent(), "ab")
	}
}

func TestBuildFragmentWhitespaceOnlyTextDropped(t *testing.T) {
	children, err := BuildFragment("<div>   \n\t  </div>")
	if err != nil {
		t.Fatalf("BuildFragment: %v", err)
	}
	div := children[0].(*dom.Element)
	if div.HasChildNodes() {
		t.Fatalf("div children = %+v, want none (whitespace-only run dropped)", div.Children())
	}
}

func TestBuildDocumentWithExplicitHTML(t *testing.T) {
	doc, err := BuildDocument(`<html><head><title>T</title></head><body><p>x</p></body></html>`)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.Title() != "T" {
		t.Fatalf("title = %q", doc.Title())
	}
	if doc.Body() == nil || len(doc.Body().Children()) != 1 {
		t.Fatalf("body = %+v", doc.Body())
	}
}

func TestBuildDocumentWrapsBareFragment(t *testing.T) {
	doc, err := BuildDocument(`<p>hi</p>`)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.DocumentElement() == nil || doc.DocumentElement().TagName != "html" {
		t.Fatalf("documentElement = %+v", doc.DocumentElement())
	}
	if doc.Head() == nil {
		t.Fatal("head is nil")
	}
	if doc.Body() == nil || len(doc.Body().Children()) != 1 {
		t.Fatalf("body = %+v", doc.Body())
	}
}
