package domtest

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
)

type listener struct {
	fn      dom.Listener
	removed bool
}

type listeners map[string][]*listener

func (ls listeners) add(eventType string, fn dom.Listener) dom.Remove {
	l := &listener{fn: fn}
	ls[eventType] = append(ls[eventType], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		ls[eventType] = slices.DeleteFunc(ls[eventType], func(x *listener) bool { return x == l })
	}
}

func (ls listeners) dispatch(ev *Event) {
	for _, l := range slices.Clone(ls[ev.typ]) {
		if !l.removed {
			l.fn(ev)
		}
	}
}

func (ls listeners) count(eventType string) int { return len(ls[eventType]) }

// Element is an in-memory DOM element.
type Element struct {
	tag          string
	attrs        map[string]string
	classes      []string
	styles       map[string]string
	cssText      string
	value        string
	initialValue string
	text         string
	html         string
	disabled     bool
	offsetWidth  float64
	top          float64

	parent    *Element
	children  []*Element
	doc       *Document
	listeners listeners
	resets    int
}

var _ dom.Element = (*Element)(nil)

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{
		tag:       strings.ToLower(tag),
		attrs:     map[string]string{},
		styles:    map[string]string{},
		listeners: listeners{},
	}
}

// WithID sets the id attribute.
func (e *Element) WithID(id string) *Element {
	e.attrs["id"] = id
	return e
}

// WithClass adds classes.
func (e *Element) WithClass(names ...string) *Element {
	e.AddClass(names...)
	return e
}

// WithAttr sets an attribute.
func (e *Element) WithAttr(name, value string) *Element {
	e.SetAttr(name, value)
	return e
}

// WithValue sets both the current and the initial form value.
func (e *Element) WithValue(v string) *Element {
	e.value = v
	e.initialValue = v
	return e
}

// WithWidth sets the layout width returned by OffsetWidth.
func (e *Element) WithWidth(w float64) *Element {
	e.offsetWidth = w
	return e
}

// WithTop sets the viewport offset returned by Top.
func (e *Element) WithTop(top float64) *Element {
	e.top = top
	return e
}

// Append appends children and returns e.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		e.AppendChild(c)
	}
	return e
}

func (e *Element) ID() string      { return e.attrs["id"] }
func (e *Element) TagName() string { return strings.ToUpper(e.tag) }

func (e *Element) Is(other dom.Element) bool {
	o, ok := other.(*Element)
	return ok && o == e
}

func (e *Element) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	if name == "class" {
		if len(e.classes) == 0 {
			return "", false
		}
		return strings.Join(e.classes, " "), true
	}
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	if name == "class" {
		e.classes = strings.Fields(value)
		return
	}
	e.attrs[name] = value
}

func (e *Element) HasClass(name string) bool { return slices.Contains(e.classes, name) }

func (e *Element) AddClass(names ...string) {
	for _, n := range names {
		if !e.HasClass(n) {
			e.classes = append(e.classes, n)
		}
	}
}

func (e *Element) RemoveClass(names ...string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return slices.Contains(names, c) })
}

func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

// Classes returns the class list.
func (e *Element) Classes() []string { return slices.Clone(e.classes) }

func (e *Element) Style(prop string) string   { return e.styles[prop] }
func (e *Element) SetStyle(prop, value string) { e.styles[prop] = value }
func (e *Element) SetCSSText(css string)       { e.cssText = css }

// CSSText returns the last value given to SetCSSText.
func (e *Element) CSSText() string { return e.cssText }

func (e *Element) Value() string     { return e.value }
func (e *Element) SetValue(v string) { e.value = v }

func (e *Element) MaxLength() int {
	v, ok := e.attrs["maxlength"]
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}

func (e *Element) SetMaxLength(n int) { e.attrs["maxlength"] = strconv.Itoa(n) }

func (e *Element) SetDisabled(disabled bool) { e.disabled = disabled }

// Disabled reports the last value given to SetDisabled.
func (e *Element) Disabled() bool { return e.disabled }

func (e *Element) SetText(text string) {
	e.text = text
	e.children = nil
}

// Text returns the text content set with SetText.
func (e *Element) Text() string { return e.text }

func (e *Element) SetInnerHTML(html string) {
	e.html = html
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

// InnerHTML returns the markup set with SetInnerHTML.
func (e *Element) InnerHTML() string { return e.html }

func (e *Element) Query(selector string) dom.Element {
	if m := e.find(selector); m != nil {
		return m
	}
	return nil
}

func (e *Element) QueryAll(selector string) []dom.Element {
	var out []dom.Element
	for _, m := range e.findAll(selector) {
		out = append(out, m)
	}
	return out
}

func (e *Element) find(selector string) *Element {
	l := mustParse(selector)
	var found *Element
	e.walk(func(n *Element) bool {
		if l.matches(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

func (e *Element) findAll(selector string) []*Element {
	l := mustParse(selector)
	var out []*Element
	e.walk(func(n *Element) bool {
		if l.matches(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// walk visits descendants in document order until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	for _, c := range e.children {
		if !fn(c) || !c.walk(fn) {
			return false
		}
	}
	return true
}

func (e *Element) AppendChild(child dom.Element) {
	c := child.(*Element)
	c.detach()
	c.parent = e
	e.children = append(e.children, c)
}

func (e *Element) Prepend(child dom.Element) {
	c := child.(*Element)
	c.detach()
	c.parent = e
	e.children = append([]*Element{c}, e.children...)
}

func (e *Element) Remove() { e.detach() }

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	p.children = slices.DeleteFunc(p.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// Clone returns a deep copy without listeners.
func (e *Element) Clone() dom.Element { return e.clone() }

func (e *Element) clone() *Element {
	c := NewElement(e.tag)
	for k, v := range e.attrs {
		c.attrs[k] = v
	}
	for k, v := range e.styles {
		c.styles[k] = v
	}
	c.classes = slices.Clone(e.classes)
	c.cssText, c.value, c.initialValue = e.cssText, e.value, e.initialValue
	c.text, c.html = e.text, e.html
	c.offsetWidth, c.top = e.offsetWidth, e.top
	for _, ch := range e.children {
		c.AppendChild(ch.clone())
	}
	return c
}

func (e *Element) OffsetWidth() float64 { return e.offsetWidth }
func (e *Element) Top() float64         { return e.top }

// Reset restores the initial value of every descendant.
func (e *Element) Reset() {
	e.resets++
	e.walk(func(n *Element) bool {
		n.value = n.initialValue
		return true
	})
}

// Resets counts Reset calls.
func (e *Element) Resets() int { return e.resets }

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements.
func (e *Element) Children() []*Element { return slices.Clone(e.children) }

func (e *Element) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return e.listeners.add(eventType, fn)
}

// ListenerCount reports the listeners registered for eventType.
func (e *Element) ListenerCount(eventType string) int { return e.listeners.count(eventType) }

// Dispatch delivers ev to e and then bubbles it through the ancestors and
// the owning document.
func (e *Element) Dispatch(ev *Event) *Event {
	if ev.target == nil {
		ev.target = e
	}
	var top *Element
	for n := e; n != nil; n = n.parent {
		n.listeners.dispatch(ev)
		top = n
	}
	if top.doc != nil {
		top.doc.listeners.dispatch(ev)
	}
	return ev
}

// Fire dispatches an event of eventType at page coordinate x.
func (e *Element) Fire(eventType string, x float64) *Event {
	return e.Dispatch(&Event{typ: eventType, pageX: x})
}

// Click dispatches a click.
func (e *Element) Click() *Event { return e.Fire("click", 0) }

// Input sets the value and dispatches an input event.
func (e *Element) Input(v string) *Event {
	e.value = v
	return e.Fire("input", 0)
}

// Submit dispatches a submit event.
func (e *Element) Submit() *Event { return e.Fire("submit", 0) }
