package dom

import "github.com/veryhappydom/happydom/events"

// NewInvalidEvent constructs the non-bubbling, cancelable "invalid" event
// ReportValidity dispatches on a failing form control (spec.md §4.5).
func NewInvalidEvent() *events.Event {
	return events.NewEvent("invalid", false, true)
}
