package happydom

import (
	"github.com/veryhappydom/happydom/dom"
	"github.com/veryhappydom/happydom/serialize"
)

// Option configures Render's serialization behavior.
type Option func(*serialize.Options)

// WithPretty enables newline + indent formatting between block-level
// element children.
func WithPretty() Option {
	return func(o *serialize.Options) {
		o.Pretty = true
	}
}

// WithIndentSize sets the number of spaces per indentation level when
// WithPretty is also given.
func WithIndentSize(n int) Option {
	return func(o *serialize.Options) {
		o.IndentSize = n
	}
}

// Render is Serialize with functional options in place of an explicit
// serialize.Options value, for callers that only need a couple of
// knobs.
func Render(node dom.Node, opts ...Option) string {
	cfg := serialize.DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return serialize.ToHTML(node, cfg)
}
