//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
)

// Document wraps the global document.
type Document struct{ v js.Value }

var _ dom.Document = (*Document)(nil)

// NewDocument returns the page document.
func NewDocument() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return listen(d.v, eventType, fn)
}

func (d *Document) ByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d *Document) Query(selector string) dom.Element {
	return wrap(d.v.Call("querySelector", selector))
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return wrapAll(d.v.Call("querySelectorAll", selector))
}

func (d *Document) Body() dom.Element { return wrap(d.v.Get("body")) }

func (d *Document) CreateElement(tag string) dom.Element {
	return wrap(d.v.Call("createElement", tag))
}
