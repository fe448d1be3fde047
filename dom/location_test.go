package dom

import "testing"

func TestNewLocationParsesComponents(t *testing.T) {
	loc := NewLocation("https://example.com:8443/path?q=1#frag")
	if loc.Protocol != "https:" {
		t.Errorf("Protocol = %q, want %q", loc.Protocol, "https:")
	}
	if loc.Hostname != "example.com" {
		t.Errorf("Hostname = %q, want %q", loc.Hostname, "example.com")
	}
	if loc.Port != "8443" {
		t.Errorf("Port = %q, want %q", loc.Port, "8443")
	}
	if loc.Pathname != "/path" {
		t.Errorf("Pathname = %q, want %q", loc.Pathname, "/path")
	}
	if loc.Search != "?q=1" {
		t.Errorf("Search = %q, want %q", loc.Search, "?q=1")
	}
	if loc.Hash != "#frag" {
		t.Errorf("Hash = %q, want %q", loc.Hash, "#frag")
	}
	if loc.Origin != "https://example.com:8443" {
		t.Errorf("Origin = %q, want %q", loc.Origin, "https://example.com:8443")
	}
}

func TestHistoryPushStateUpdatesLocationAndDiscardsForward(t *testing.T) {
	doc := NewDocument()
	doc.History.PushState(nil, "", "/a")
	doc.History.PushState(nil, "", "/b")
	doc.History.Back()
	if doc.Location.Pathname != "/a" {
		t.Fatalf("Pathname = %q, want /a", doc.Location.Pathname)
	}

	doc.History.PushState(nil, "", "/c")
	if doc.History.Length() != 3 {
		t.Fatalf("Length() = %d, want 3 (forward entry discarded)", doc.History.Length())
	}
	if doc.Location.Pathname != "/c" {
		t.Fatalf("Pathname = %q, want /c", doc.Location.Pathname)
	}
}

func TestHistoryGoOutOfRangeIsNoOp(t *testing.T) {
	doc := NewDocument()
	doc.History.PushState(nil, "", "/a")

	doc.History.Go(5)
	if doc.Location.Pathname != "/a" {
		t.Fatalf("Pathname = %q, want /a (out-of-range Go is a no-op)", doc.Location.Pathname)
	}
}
