package tokenizer

import "testing"

func TestTokenizeSimpleTag(t *testing.T) {
	toks, err := Tokenize(`<p class="a b">hi</p>`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []Kind{StartTag, Character, EndTag}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[0].Name != "p" || toks[0].AttrVal("class") != "a b" {
		t.Fatalf("start tag = %+v", toks[0])
	}
	if toks[1].Data != "hi" {
		t.Fatalf("character data = %q", toks[1].Data)
	}
	if toks[2].Name != "p" {
		t.Fatalf("end tag name = %q", toks[2].Name)
	}
}

func TestTokenizeUnquotedAndBareAttr(t *testing.T) {
	toks, err := Tokenize(`<input disabled type=text>`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != StartTag {
		t.Fatalf("toks = %+v", toks)
	}
	if !toks[0].HasAttr("disabled") || toks[0].AttrVal("disabled") != "" {
		t.Fatalf("disabled attr = %q", toks[0].AttrVal("disabled"))
	}
	if toks[0].AttrVal("type") != "text" {
		t.Fatalf("type attr = %q", toks[0].AttrVal("type"))
	}
}

func TestTokenizeSelfClosing(t *testing.T) {
	toks, err := Tokenize(`<br/>`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 || !toks[0].SelfClosing {
		t.Fatalf("toks = %+v", toks)
	}
}

func TestTokenizeComment(t *testing.T) {
	toks, err := Tokenize(`a<!-- hi -->b`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("toks = %+v", toks)
	}
	if toks[1].Kind != Comment || toks[1].Data != " hi " {
		t.Fatalf("comment token = %+v", toks[1])
	}
}

func TestTokenizeUnterminatedCommentFails(t *testing.T) {
	_, err := Tokenize(`<!-- never closed`)
	if err == nil {
		t.Fatal("expected MalformedHTMLError, got nil")
	}
}

func TestStrayLessThanIsText(t *testing.T) {
	toks, err := Tokenize(`1 < 2`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != Character || toks[0].Data != "1 < 2" {
		t.Fatalf("toks = %+v", toks)
	}
}

func TestUnterminatedOpenTagIsDropped(t *testing.T) {
	toks, err := Tokenize(`before<div class="x`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].Data != "before" {
		t.Fatalf("toks = %+v, want just the leading text", toks)
	}
}

func TestNoEntityDecoding(t *testing.T) {
	toks, err := Tokenize(`&amp;`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].Data != "&amp;" {
		t.Fatalf("toks = %+v, want literal &amp;", toks)
	}
}
