package domtest

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
)

// ErrCrossOrigin is returned by NavigateTop when the window is framed by
// another origin.
var ErrCrossOrigin = errors.New("blocked a frame from accessing a cross-origin frame")

// ScrollCall records a ScrollTo call.
type ScrollCall struct {
	Top    float64
	Smooth bool
}

// OpenCall records an Open call.
type OpenCall struct {
	URL    string
	Target string
}

// ConsoleCall records a ConsoleLog call.
type ConsoleCall struct {
	Format string
	Args   []any
}

func (c ConsoleCall) String() string { return fmt.Sprintf(c.Format, c.Args...) }

type timer struct {
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

type frame struct {
	fn        func()
	cancelled bool
}

type observer struct {
	elements     []*Element
	opts         dom.ObserverOptions
	fn           func(dom.Element)
	disconnected bool
}

// Window is an in-memory browsing context with a virtual clock.
type Window struct {
	scrollY    float64
	innerWidth float64
	framed     bool
	crossOrig  bool

	elapsed   time.Duration
	seq       int
	timers    []*timer
	frames    []*frame
	observers []*observer
	listeners listeners

	Scrolls      []ScrollCall
	Opened       []OpenCall
	Alerts       []string
	Console      []ConsoleCall
	NavigatedTop bool
}

var _ dom.Window = (*Window)(nil)

// NewWindow creates a top level desktop sized window.
func NewWindow() *Window {
	return &Window{innerWidth: 1280, listeners: listeners{}}
}

// WithWidth sets the viewport width.
func (w *Window) WithWidth(width float64) *Window {
	w.innerWidth = width
	return w
}

// WithFrame embeds the window in a frame. With crossOrigin the top
// navigation fails.
func (w *Window) WithFrame(crossOrigin bool) *Window {
	w.framed = true
	w.crossOrig = crossOrigin
	return w
}

func (w *Window) ScrollY() float64    { return w.scrollY }
func (w *Window) InnerWidth() float64 { return w.innerWidth }

func (w *Window) ScrollTo(top float64, smooth bool) {
	w.Scrolls = append(w.Scrolls, ScrollCall{Top: top, Smooth: smooth})
	w.scrollY = top
}

func (w *Window) Open(url, target string) {
	w.Opened = append(w.Opened, OpenCall{URL: url, Target: target})
}

func (w *Window) Alert(message string) { w.Alerts = append(w.Alerts, message) }

func (w *Window) ConsoleLog(format string, args ...any) {
	w.Console = append(w.Console, ConsoleCall{Format: format, Args: args})
}

func (w *Window) Framed() bool { return w.framed }

func (w *Window) NavigateTop() error {
	if w.crossOrig {
		return ErrCrossOrigin
	}
	w.NavigatedTop = true
	return nil
}

func (w *Window) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return w.listeners.add(eventType, fn)
}

// ListenerCount reports the listeners registered for eventType.
func (w *Window) ListenerCount(eventType string) int { return w.listeners.count(eventType) }

// Dispatch delivers ev to the window listeners.
func (w *Window) Dispatch(ev *Event) *Event {
	w.listeners.dispatch(ev)
	return ev
}

// Fire dispatches a window event of eventType at page coordinate x.
func (w *Window) Fire(eventType string, x float64) *Event {
	return w.Dispatch(&Event{typ: eventType, pageX: x})
}

// Scroll sets the scroll position and dispatches a scroll event.
func (w *Window) Scroll(y float64) {
	w.scrollY = y
	w.Fire("scroll", 0)
}

// Resize sets the viewport width and dispatches a resize event.
func (w *Window) Resize(width float64) {
	w.innerWidth = width
	w.Fire("resize", 0)
}

func (w *Window) SetTimeout(d time.Duration, fn func()) dom.Timer {
	w.seq++
	t := &timer{due: w.elapsed + d, seq: w.seq, fn: fn}
	w.timers = append(w.timers, t)
	return t
}

// Advance moves the virtual clock forward by d, running every timeout that
// falls due in order, including ones scheduled along the way.
func (w *Window) Advance(d time.Duration) {
	end := w.elapsed + d
	for {
		next := w.nextTimer(end)
		if next == nil {
			break
		}
		w.elapsed = next.due
		next.fired = true
		next.fn()
	}
	w.elapsed = end
	w.timers = slices.DeleteFunc(w.timers, func(t *timer) bool { return t.fired || t.stopped })
}

func (w *Window) nextTimer(end time.Duration) *timer {
	var next *timer
	for _, t := range w.timers {
		if t.fired || t.stopped || t.due > end {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// PendingTimers counts timeouts that have neither run nor been stopped.
func (w *Window) PendingTimers() int {
	n := 0
	for _, t := range w.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (w *Window) RequestAnimationFrame(fn func()) dom.Remove {
	f := &frame{fn: fn}
	w.frames = append(w.frames, f)
	return func() { f.cancelled = true }
}

// RunFrame runs the callbacks queued before the call and reports how many ran.
func (w *Window) RunFrame() int {
	queued := w.frames
	w.frames = nil
	n := 0
	for _, f := range queued {
		if !f.cancelled {
			f.fn()
			n++
		}
	}
	return n
}

// PendingFrames counts queued animation frame callbacks.
func (w *Window) PendingFrames() int {
	n := 0
	for _, f := range w.frames {
		if !f.cancelled {
			n++
		}
	}
	return n
}

func (w *Window) Observe(elements []dom.Element, opts dom.ObserverOptions, fn func(dom.Element)) dom.Remove {
	o := &observer{opts: opts, fn: fn}
	for _, el := range elements {
		if e, ok := el.(*Element); ok {
			o.elements = append(o.elements, e)
		}
	}
	w.observers = append(w.observers, o)
	return func() { o.disconnected = true }
}

// Intersect reports el as intersecting to every observer watching it.
func (w *Window) Intersect(el *Element) {
	for _, o := range w.observers {
		if !o.disconnected && slices.Contains(o.elements, el) {
			o.fn(el)
		}
	}
}

// Observed reports whether an active observer watches el, and with which options.
func (w *Window) Observed(el *Element) (dom.ObserverOptions, bool) {
	for _, o := range w.observers {
		if !o.disconnected && slices.Contains(o.elements, el) {
			return o.opts, true
		}
	}
	return dom.ObserverOptions{}, false
}
