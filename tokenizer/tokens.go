// Package tokenizer streams tags, attributes, text, and comments from an
// HTML source string (spec.md §4.2, C2). It implements the 8-state
// grammar spec.md names rather than the full WHATWG tokenization
// algorithm: no entity decoding, no DOCTYPE/RAWTEXT/RCDATA/script-data
// states, no foreign-content handling.
package tokenizer

// Kind identifies which variant of Token is populated.
type Kind int

// Token kinds produced by the tokenizer.
const (
	// StartTag represents `<name attrs…>` or `<name attrs… />`.
	StartTag Kind = iota

	// EndTag represents `</name>`.
	EndTag

	// Character represents a run of raw text.
	Character

	// Comment represents `<!--…-->`.
	Comment

	// EOF marks the end of input.
	EOF
)

// String names the token kind, for diagnostics and tests.
func (k Kind) String() string {
	switch k {
	case StartTag:
		return "StartTag"
	case EndTag:
		return "EndTag"
	case Character:
		return "Character"
	case Comment:
		return "Comment"
	case EOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Attr is a single attr-name[=attr-value] pair as encountered in an open
// tag (spec.md §4.2).
type Attr struct {
	Name  string
	Value string
}

// Token is a tagged union keyed by Kind. Only the fields relevant to
// Kind are meaningful.
type Token struct {
	Kind Kind

	// Name is the tag name for StartTag/EndTag.
	Name string

	// Data is the run's text for Character, or the body for Comment.
	Data string

	// Attrs holds attributes for StartTag, in source order.
	Attrs []Attr

	// SelfClosing is true for `<name … />`.
	SelfClosing bool
}

// AttrVal returns the value of the named attribute, or "" if absent.
func (t *Token) AttrVal(name string) string {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (t *Token) HasAttr(name string) bool {
	for _, a := range t.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}
