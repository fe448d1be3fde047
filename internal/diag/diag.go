// Package diag is the process-wide diagnostic sink that spec.md §7 asks
// for: a writable channel event listener exceptions are reported to
// instead of escaping dispatchEvent.
package diag

import (
	"github.com/go-pkgz/lgr"

	"github.com/veryhappydom/happydom/events"
)

// lgrSink adapts the package-level lgr.Printf logger to events.Sink, the
// same "call the package logger with a bracketed level" convention the
// rest of the corpus uses around fetch/parse pipelines.
type lgrSink struct{}

func (lgrSink) Reportf(format string, args ...any) {
	lgr.Printf("[WARN] "+format, args...)
}

func init() {
	events.DefaultSink = lgrSink{}
}

// SetVerbose toggles lgr's debug-level output; a convenience for CLI
// consumers (cmd/happydomfmt --dbg).
func SetVerbose(v bool) {
	if v {
		lgr.Setup(lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	} else {
		lgr.Setup()
	}
}
