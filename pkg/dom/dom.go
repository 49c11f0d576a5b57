package dom

import "time"

// Listener handles a DOM event.
type Listener func(Event)

// Remove detaches a listener, timer or observer. Calling it twice is a no-op.
type Remove func()

// Target is anything events can be listened for on.
type Target interface {
	AddEventListener(eventType string, fn Listener) Remove
}

// Event is a dispatched DOM event.
type Event interface {
	Type() string
	Target() Element
	PreventDefault()
	DefaultPrevented() bool
	// PageX is the horizontal page coordinate of a mouse event or of the
	// first touch point of a touch event.
	PageX() float64
}

// Element is a node of the document tree.
type Element interface {
	Target

	ID() string
	TagName() string
	Is(other Element) bool

	Attr(name string) (string, bool)
	SetAttr(name, value string)

	HasClass(name string) bool
	AddClass(names ...string)
	RemoveClass(names ...string)
	ToggleClass(name string) bool

	Style(prop string) string
	SetStyle(prop, value string)
	SetCSSText(css string)

	Value() string
	SetValue(v string)
	MaxLength() int
	SetMaxLength(n int)
	SetDisabled(disabled bool)
	SetText(text string)
	SetInnerHTML(html string)

	Query(selector string) Element
	QueryAll(selector string) []Element
	AppendChild(child Element)
	Prepend(child Element)
	Remove()
	Clone() Element

	OffsetWidth() float64
	// Top is the distance from the viewport top, as reported by getBoundingClientRect.
	Top() float64
	// Reset resets a form element to its initial values.
	Reset()
}

// Document is the page document.
type Document interface {
	Target

	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
	Body() Element
	CreateElement(tag string) Element
}

// Timer is a pending timeout.
type Timer interface {
	// Stop cancels the timeout. It reports false if it already ran or was stopped.
	Stop() bool
}

// ObserverOptions configures an intersection observer.
type ObserverOptions struct {
	Threshold  float64
	RootMargin string
}

// Window is the browsing context.
type Window interface {
	Target

	ScrollY() float64
	InnerWidth() float64
	ScrollTo(top float64, smooth bool)
	Open(url, target string)
	Alert(message string)
	ConsoleLog(format string, args ...any)

	// Framed reports whether the page is embedded in another frame.
	Framed() bool
	// NavigateTop points the top window at this page. It fails when the
	// top window belongs to another origin.
	NavigateTop() error

	SetTimeout(d time.Duration, fn func()) Timer
	// RequestAnimationFrame schedules fn before the next repaint.
	RequestAnimationFrame(fn func()) Remove
	// Observe calls fn with each element that starts intersecting the viewport.
	Observe(elements []Element, opts ObserverOptions, fn func(Element)) Remove
}
