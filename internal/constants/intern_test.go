package constants

import "testing"

func TestCanonTagLowercasesAndInterns(t *testing.T) {
	if got := CanonTag("DIV"); got != "div" {
		t.Fatalf("CanonTag(%q) = %q, want %q", "DIV", got, "div")
	}
	if got := CanonTag("Custom-Widget"); got != "custom-widget" {
		t.Fatalf("CanonTag(%q) = %q, want %q", "Custom-Widget", got, "custom-widget")
	}
}

func TestCanonAttrLowercasesAndInterns(t *testing.T) {
	if got := CanonAttr("HREF"); got != "href" {
		t.Fatalf("CanonAttr(%q) = %q, want %q", "HREF", got, "href")
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"br", "img", "input", "meta"} {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"div", "span", "p"} {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true, want false", tag)
		}
	}
}
