package dom

import "net/url"

// Location mirrors window.location's URL-component view (spec.md §3,
// §6). It is a plain value type; History.pushState/replaceState mutate
// it in place rather than closing over a document (REDESIGN FLAG
// "History callbacks closing over the document").
type Location struct {
	Href     string
	Protocol string
	Host     string
	Hostname string
	Port     string
	Pathname string
	Search   string
	Hash     string
	Origin   string
}

// NewLocation parses rawURL into its component fields. An unparseable
// rawURL yields a Location whose Href is set but every other field is
// empty, rather than an error — Location is a best-effort descriptive
// view, not a validating parser.
func NewLocation(rawURL string) *Location {
	loc := &Location{Href: rawURL}
	u, err := url.Parse(rawURL)
	if err != nil {
		return loc
	}
	loc.Protocol = u.Scheme
	if loc.Protocol != "" {
		loc.Protocol += ":"
	}
	loc.Host = u.Host
	loc.Hostname = u.Hostname()
	loc.Port = u.Port()
	loc.Pathname = u.Path
	if u.RawQuery != "" {
		loc.Search = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		loc.Hash = "#" + u.Fragment
	}
	if u.Scheme != "" && u.Host != "" {
		loc.Origin = u.Scheme + "://" + u.Host
	}
	return loc
}

// set overwrites every field from a freshly parsed rawURL, used by
// History navigation to update Document.location in place.
func (l *Location) set(rawURL string) {
	*l = *NewLocation(rawURL)
}

// HistoryEntry is one entry in a History stack (spec.md §3).
type HistoryEntry struct {
	State any
	Title string
	URL   string
}

// History is the document's session-history stack. Unlike a browser, it
// never navigates a live page; pushState/replaceState/back/forward/go
// only replay the (state, title, url) stack and update the owning
// Document's Location view to match the current entry.
type History struct {
	doc     *Document
	entries []HistoryEntry
	index   int
}

// newHistory creates a history seeded with a single initial entry for
// the document's current location.
func newHistory(doc *Document, initialURL string) *History {
	return &History{
		doc:     doc,
		entries: []HistoryEntry{{URL: initialURL}},
		index:   0,
	}
}

// Length returns the number of entries in the stack.
func (h *History) Length() int { return len(h.entries) }

// State returns the state object of the current entry.
func (h *History) State() any { return h.entries[h.index].State }

// PushState appends a new entry after the current one, discarding any
// forward entries, and updates Document.location to url.
func (h *History) PushState(state any, title, url string) {
	h.entries = append(h.entries[:h.index+1], HistoryEntry{State: state, Title: title, URL: url})
	h.index = len(h.entries) - 1
	h.apply()
}

// ReplaceState overwrites the current entry in place.
func (h *History) ReplaceState(state any, title, url string) {
	h.entries[h.index] = HistoryEntry{State: state, Title: title, URL: url}
	h.apply()
}

// Back moves one entry toward the start of the stack, if possible.
func (h *History) Back() { h.Go(-1) }

// Forward moves one entry toward the end of the stack, if possible.
func (h *History) Forward() { h.Go(1) }

// Go moves delta entries relative to the current one. A delta that
// would leave the stack bounds is a no-op: the current entry is kept.
func (h *History) Go(delta int) {
	target := h.index + delta
	if target < 0 || target >= len(h.entries) {
		return
	}
	h.index = target
	h.apply()
}

func (h *History) apply() {
	if h.doc != nil && h.doc.Location != nil {
		h.doc.Location.set(h.entries[h.index].URL)
	}
}
