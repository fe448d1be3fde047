package events

import "testing"

type fakeNode struct {
	name     string
	target   *Target
	children []*fakeNode
}

func newFakeNode(name string) *fakeNode {
	return &fakeNode{name: name, target: NewTarget()}
}

func (n *fakeNode) Listeners() *Target { return n.target }

func TestDispatchBubbleOrderAndPreventDefault(t *testing.T) {
	outer := newFakeNode("outer")
	inner := newFakeNode("inner")

	var order []string
	outer.Listeners().AddEventListener("click", func(ev *Event) {
		order = append(order, "outer")
	}, false)
	inner.Listeners().AddEventListener("click", func(ev *Event) {
		order = append(order, "inner")
		ev.PreventDefault()
	}, false)

	ev := NewEvent("click", true, true)
	path := []EventTarget{outer, inner}
	ok := Dispatch(path, inner, ev)

	if got, want := order, []string{"inner", "outer"}; !equalStrings(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if ok {
		t.Fatal("Dispatch returned true, want false (preventDefault was called)")
	}
}

func TestDispatchCaptureBeforeBubble(t *testing.T) {
	root := newFakeNode("root")
	mid := newFakeNode("mid")
	leaf := newFakeNode("leaf")

	var order []string
	record := func(label string) Listener {
		return func(*Event) { order = append(order, label) }
	}
	root.Listeners().AddEventListener("x", record("capture-root"), true)
	mid.Listeners().AddEventListener("x", record("capture-mid"), true)
	leaf.Listeners().AddEventListener("x", record("target-capture"), true)
	leaf.Listeners().AddEventListener("x", record("target-bubble"), false)
	mid.Listeners().AddEventListener("x", record("bubble-mid"), false)
	root.Listeners().AddEventListener("x", record("bubble-root"), false)

	ev := NewEvent("x", true, false)
	Dispatch([]EventTarget{root, mid, leaf}, leaf, ev)

	want := []string{"capture-root", "capture-mid", "target-capture", "target-bubble", "bubble-mid", "bubble-root"}
	if !equalStrings(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestStopPropagationPreventsLaterPhases(t *testing.T) {
	root := newFakeNode("root")
	leaf := newFakeNode("leaf")

	var fired []string
	leaf.Listeners().AddEventListener("x", func(ev *Event) {
		fired = append(fired, "leaf")
		ev.StopPropagation()
	}, false)
	root.Listeners().AddEventListener("x", func(*Event) {
		fired = append(fired, "root")
	}, false)

	ev := NewEvent("x", true, false)
	Dispatch([]EventTarget{root, leaf}, leaf, ev)

	if !equalStrings(fired, []string{"leaf"}) {
		t.Fatalf("fired = %v, want [leaf]", fired)
	}
}

func TestStopImmediatePropagationSkipsLaterListenersSamePhase(t *testing.T) {
	leaf := newFakeNode("leaf")
	var fired []string
	leaf.Listeners().AddEventListener("x", func(ev *Event) {
		fired = append(fired, "first")
		ev.StopImmediatePropagation()
	}, false)
	leaf.Listeners().AddEventListener("x", func(*Event) {
		fired = append(fired, "second")
	}, false)

	Dispatch([]EventTarget{leaf}, leaf, NewEvent("x", false, false))

	if !equalStrings(fired, []string{"first"}) {
		t.Fatalf("fired = %v, want [first]", fired)
	}
}

func TestAddEventListenerDeduplicates(t *testing.T) {
	leaf := newFakeNode("leaf")
	calls := 0
	listener := func(*Event) { calls++ }
	leaf.Listeners().AddEventListener("x", listener, false)
	leaf.Listeners().AddEventListener("x", listener, false)

	Dispatch([]EventTarget{leaf}, leaf, NewEvent("x", false, false))
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (duplicate registration should be ignored)", calls)
	}
}

func TestRemoveEventListener(t *testing.T) {
	leaf := newFakeNode("leaf")
	calls := 0
	listener := func(*Event) { calls++ }
	leaf.Listeners().AddEventListener("x", listener, false)
	leaf.Listeners().RemoveEventListener("x", listener, false)

	Dispatch([]EventTarget{leaf}, leaf, NewEvent("x", false, false))
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 after removal", calls)
	}
}

func TestListenerPanicDoesNotAbortDispatch(t *testing.T) {
	leaf := newFakeNode("leaf")
	ran := false
	leaf.Listeners().AddEventListener("x", func(*Event) {
		panic("boom")
	}, false)
	leaf.Listeners().AddEventListener("x", func(*Event) {
		ran = true
	}, false)

	Dispatch([]EventTarget{leaf}, leaf, NewEvent("x", false, false))
	if !ran {
		t.Fatal("second listener did not run after the first panicked")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
