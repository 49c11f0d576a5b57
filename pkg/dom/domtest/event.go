package domtest

import "github.com/dmitrymomot/clinicsite/pkg/dom"

// Event is an in-memory DOM event.
type Event struct {
	typ       string
	target    *Element
	pageX     float64
	prevented bool
}

var _ dom.Event = (*Event)(nil)

// NewEvent creates an event of eventType at page coordinate x.
func NewEvent(eventType string, x float64) *Event {
	return &Event{typ: eventType, pageX: x}
}

// WithTarget overrides the event target, as when a click lands on a child.
func (ev *Event) WithTarget(t *Element) *Event {
	ev.target = t
	return ev
}

func (ev *Event) Type() string { return ev.typ }

func (ev *Event) Target() dom.Element {
	if ev.target == nil {
		return nil
	}
	return ev.target
}

func (ev *Event) PreventDefault() { ev.prevented = true }
func (ev *Event) PageX() float64  { return ev.pageX }

// DefaultPrevented reports whether a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool { return ev.prevented }
