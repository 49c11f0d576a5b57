//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
)

// Event wraps a browser event.
type Event struct{ v js.Value }

var _ dom.Event = (*Event)(nil)

func (e *Event) Type() string { return e.v.Get("type").String() }

func (e *Event) Target() dom.Element { return wrap(e.v.Get("target")) }

func (e *Event) PreventDefault() { e.v.Call("preventDefault") }

func (e *Event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Truthy() }

// PageX reads touches, then changedTouches (set on touchend), then the
// mouse coordinate.
func (e *Event) PageX() float64 {
	for _, list := range []string{"touches", "changedTouches"} {
		t := e.v.Get(list)
		if !isNullish(t) && t.Length() > 0 {
			return t.Index(0).Get("pageX").Float()
		}
	}
	if x := e.v.Get("pageX"); x.Type() == js.TypeNumber {
		return x.Float()
	}
	return 0
}
