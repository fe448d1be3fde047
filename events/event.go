// Package events implements the capture/target/bubble event-dispatch model
// shared by dom.Element and dom.Document (spec.md §4.9).
package events

// EventTarget is anything that carries a listener table: dom.Element and
// dom.Document, per the REDESIGN FLAG "Event target polymorphism" — Text
// and Comment nodes deliberately do not implement it.
type EventTarget interface {
	// Listeners returns this target's listener table, lazily created.
	Listeners() *Target
}

// Event carries the state threaded through a single dispatchEvent call
// (spec.md §3).
type Event struct {
	Type       string
	Target     EventTarget
	Bubbles    bool
	Cancelable bool
	Detail     any
	TimeStamp  int64

	currentTarget               EventTarget
	defaultPrevented            bool
	propagationStopped          bool
	immediatePropagationStopped bool
}

// NewEvent constructs an event of the given type.
func NewEvent(typ string, bubbles, cancelable bool) *Event {
	return &Event{Type: typ, Bubbles: bubbles, Cancelable: cancelable}
}

// NewCustomEvent constructs an event carrying an opaque detail payload.
func NewCustomEvent(typ string, bubbles, cancelable bool, detail any) *Event {
	e := NewEvent(typ, bubbles, cancelable)
	e.Detail = detail
	return e
}

// CurrentTarget returns the target whose listener is currently executing.
func (e *Event) CurrentTarget() EventTarget { return e.currentTarget }

// PreventDefault marks the event as cancelled; has no effect unless the
// event is Cancelable.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault has been called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents any later phase from invoking listeners.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// StopImmediatePropagation additionally prevents later listeners in the
// current phase from firing.
func (e *Event) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediatePropagationStopped = true
}

// PropagationStopped reports whether StopPropagation (or
// StopImmediatePropagation) has been called.
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// ImmediatePropagationStopped reports whether StopImmediatePropagation has
// been called.
func (e *Event) ImmediatePropagationStopped() bool { return e.immediatePropagationStopped }
