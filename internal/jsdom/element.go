//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
)

// Element wraps a browser element.
type Element struct{ v js.Value }

var _ dom.Element = (*Element)(nil)

// wrap returns nil for null or undefined so callers can compare against nil.
func wrap(v js.Value) dom.Element {
	if isNullish(v) {
		return nil
	}
	return &Element{v: v}
}

func wrapAll(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := range n {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

// unwrap returns the js.Value behind el, or js.Null for foreign elements.
func unwrap(el dom.Element) js.Value {
	if e, ok := el.(*Element); ok && e != nil {
		return e.v
	}
	return js.Null()
}

func (e *Element) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return listen(e.v, eventType, fn)
}

func (e *Element) ID() string      { return e.v.Get("id").String() }
func (e *Element) TagName() string { return e.v.Get("tagName").String() }

func (e *Element) Is(other dom.Element) bool {
	o := unwrap(other)
	return !isNullish(o) && e.v.Equal(o)
}

func (e *Element) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) classList() js.Value { return e.v.Get("classList") }

func (e *Element) HasClass(name string) bool { return e.classList().Call("contains", name).Bool() }

func (e *Element) AddClass(names ...string) {
	for _, n := range names {
		e.classList().Call("add", n)
	}
}

func (e *Element) RemoveClass(names ...string) {
	for _, n := range names {
		e.classList().Call("remove", n)
	}
}

func (e *Element) ToggleClass(name string) bool { return e.classList().Call("toggle", name).Bool() }

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *Element) SetCSSText(css string) { e.v.Get("style").Set("cssText", css) }

func (e *Element) Value() string {
	v := e.v.Get("value")
	if isNullish(v) {
		return ""
	}
	return v.String()
}

func (e *Element) SetValue(v string) { e.v.Set("value", v) }

func (e *Element) MaxLength() int {
	v := e.v.Get("maxLength")
	if v.Type() != js.TypeNumber {
		return -1
	}
	return v.Int()
}

func (e *Element) SetMaxLength(n int) { e.v.Set("maxLength", n) }

func (e *Element) SetDisabled(disabled bool) { e.v.Set("disabled", disabled) }

func (e *Element) SetText(text string) { e.v.Set("textContent", text) }

func (e *Element) SetInnerHTML(html string) { e.v.Set("innerHTML", html) }

func (e *Element) Query(selector string) dom.Element {
	return wrap(e.v.Call("querySelector", selector))
}

func (e *Element) QueryAll(selector string) []dom.Element {
	return wrapAll(e.v.Call("querySelectorAll", selector))
}

func (e *Element) AppendChild(child dom.Element) { e.v.Call("appendChild", unwrap(child)) }

func (e *Element) Prepend(child dom.Element) { e.v.Call("prepend", unwrap(child)) }

func (e *Element) Remove() { e.v.Call("remove") }

func (e *Element) Clone() dom.Element { return wrap(e.v.Call("cloneNode", true)) }

func (e *Element) OffsetWidth() float64 { return e.v.Get("offsetWidth").Float() }

func (e *Element) Top() float64 {
	return e.v.Call("getBoundingClientRect").Get("top").Float()
}

func (e *Element) Reset() {
	if e.v.Get("reset").Type() == js.TypeFunction {
		e.v.Call("reset")
	}
}
