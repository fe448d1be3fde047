package events

import "reflect"

// Sink receives a report when a listener panics during dispatch, instead
// of the panic escaping dispatchEvent (spec.md §7: "Event listener
// exceptions are caught, logged, and do not abort dispatch"). internal/diag
// implements this against go-pkgz/lgr; tests may install a recording sink.
type Sink interface {
	Reportf(format string, args ...any)
}

type noopSink struct{}

func (noopSink) Reportf(string, ...any) {}

// DefaultSink is used by Target when none has been installed. It is a
// package variable (not a constant) so internal/diag can replace it once
// at process start without threading a logger through every Element.
var DefaultSink Sink = noopSink{}

// Listener is a callback invoked during dispatch.
type Listener func(*Event)

type entry struct {
	fn      Listener
	capture bool
	id      uintptr
}

// Target stores the listener sets for one event target, keyed by event
// type, preserving insertion order within each (type, capture) bucket
// (spec.md §4.9).
type Target struct {
	byType map[string][]entry
	nextID uintptr
	sink   Sink
}

// NewTarget creates an empty listener table.
func NewTarget() *Target {
	return &Target{}
}

func (t *Target) sinkOrDefault() Sink {
	if t.sink != nil {
		return t.sink
	}
	return DefaultSink
}

// SetSink overrides the diagnostic sink for this target only.
func (t *Target) SetSink(s Sink) { t.sink = s }

// AddEventListener appends listener fn unless an identical (fn pointer,
// useCapture) pair is already registered. Go has no listener identity
// besides reflect-level function-pointer comparison, so callers that want
// RemoveEventListener to work should keep and reuse the Listener value
// they registered rather than create a new closure each time.
func (t *Target) AddEventListener(typ string, fn Listener, useCapture bool) {
	if t.byType == nil {
		t.byType = make(map[string][]entry)
	}
	id := listenerID(fn)
	for _, e := range t.byType[typ] {
		if e.id == id && e.capture == useCapture {
			return
		}
	}
	t.byType[typ] = append(t.byType[typ], entry{fn: fn, capture: useCapture, id: id})
}

// RemoveEventListener removes the first entry matching (fn, useCapture).
func (t *Target) RemoveEventListener(typ string, fn Listener, useCapture bool) {
	entries := t.byType[typ]
	id := listenerID(fn)
	for i, e := range entries {
		if e.id == id && e.capture == useCapture {
			t.byType[typ] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// snapshot returns the listeners for (typ, capture) at the moment of the
// call; dispatch takes a snapshot at phase entry so listeners added during
// dispatch don't run for the in-flight event and removed ones are skipped
// (spec.md §4.9).
func (t *Target) snapshot(typ string, capture bool) []Listener {
	entries := t.byType[typ]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Listener, 0, len(entries))
	for _, e := range entries {
		if e.capture == capture {
			out = append(out, e.fn)
		}
	}
	return out
}

func (t *Target) invoke(fns []Listener, ev *Event, current EventTarget) {
	for _, fn := range fns {
		if ev.ImmediatePropagationStopped() {
			return
		}
		ev.currentTarget = current
		callListener(t.sinkOrDefault(), fn, ev)
	}
}

// listenerID identifies a Listener value by its underlying function
// pointer so repeated registrations of the same func value dedup
// (spec.md §4.9: "de-duplicated by (listener, useCapture) pair").
func listenerID(fn Listener) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func callListener(sink Sink, fn Listener, ev *Event) {
	defer func() {
		if r := recover(); r != nil {
			sink.Reportf("event listener for %q panicked: %v", ev.Type, r)
		}
	}()
	fn(ev)
}

// Dispatch runs the capture → target → bubble algorithm described in
// spec.md §4.9. path is the ancestor chain from the root down to (and
// including) target, as the caller's tree-walk produced it; Dispatch
// itself never walks a tree, so the events package stays independent of
// the dom package. It returns !event.DefaultPrevented().
func Dispatch(path []EventTarget, target EventTarget, ev *Event) bool {
	ev.Target = target

	// Capture phase: root down to, but not including, target.
	for _, node := range path[:len(path)-1] {
		if ev.PropagationStopped() {
			return !ev.DefaultPrevented()
		}
		lt := node.Listeners()
		lt.invoke(lt.snapshot(ev.Type, true), ev, node)
	}

	// Target phase: capture-phase listeners first, then bubble-phase.
	if !ev.PropagationStopped() {
		lt := target.Listeners()
		lt.invoke(lt.snapshot(ev.Type, true), ev, target)
		if !ev.ImmediatePropagationStopped() {
			lt.invoke(lt.snapshot(ev.Type, false), ev, target)
		}
	}

	// Bubble phase: target's parent back up to root.
	if ev.Bubbles && !ev.PropagationStopped() {
		for i := len(path) - 2; i >= 0; i-- {
			if ev.PropagationStopped() {
				break
			}
			node := path[i]
			lt := node.Listeners()
			lt.invoke(lt.snapshot(ev.Type, false), ev, node)
		}
	}

	return !ev.DefaultPrevented()
}
