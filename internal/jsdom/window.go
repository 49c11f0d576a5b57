//go:build js && wasm

package jsdom

import (
	"errors"
	"fmt"
	"sync"
	"syscall/js"
	"time"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
)

// ErrTopNavigation is returned when the top window refuses navigation.
var ErrTopNavigation = errors.New("cannot navigate the top window")

// Window wraps the global window.
type Window struct {
	v       js.Value
	console js.Value
}

var _ dom.Window = (*Window)(nil)

// NewWindow returns the page window.
func NewWindow() *Window {
	g := js.Global()
	return &Window{v: g, console: g.Get("console")}
}

func (w *Window) AddEventListener(eventType string, fn dom.Listener) dom.Remove {
	return listen(w.v, eventType, fn)
}

func (w *Window) ScrollY() float64    { return w.v.Get("scrollY").Float() }
func (w *Window) InnerWidth() float64 { return w.v.Get("innerWidth").Float() }

func (w *Window) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	w.v.Call("scrollTo", map[string]any{"top": top, "behavior": behavior})
}

func (w *Window) Open(url, target string) { w.v.Call("open", url, target) }

func (w *Window) Alert(message string) { w.v.Call("alert", message) }

func (w *Window) ConsoleLog(format string, args ...any) {
	w.console.Call("log", append([]any{format}, args...)...)
}

func (w *Window) Framed() bool {
	return !w.v.Get("self").Equal(w.v.Get("top"))
}

// NavigateTop assigns the top location. Browsers throw a SecurityError for
// cross-origin parents, which syscall/js raises as a panic.
func (w *Window) NavigateTop() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(ErrTopNavigation, fmt.Errorf("%v", r))
		}
	}()
	w.v.Get("top").Set("location", w.v.Get("self").Get("location").Get("href"))
	return nil
}

type timer struct {
	w    *Window
	id   js.Value
	cb   js.Func
	mu   sync.Mutex
	done bool
}

// finish marks the timer done and releases the callback; it reports
// whether this call did it.
func (t *timer) finish() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.cb.Release()
	return true
}

func (t *timer) Stop() bool {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()
	if done {
		return false
	}
	t.w.v.Call("clearTimeout", t.id)
	return t.finish()
}

func (w *Window) SetTimeout(d time.Duration, fn func()) dom.Timer {
	t := &timer{w: w}
	t.cb = js.FuncOf(func(js.Value, []js.Value) any {
		if t.finish() {
			fn()
		}
		return nil
	})
	t.id = w.v.Call("setTimeout", t.cb, d.Milliseconds())
	return t
}

func (w *Window) RequestAnimationFrame(fn func()) dom.Remove {
	var (
		once sync.Once
		cb   js.Func
	)
	release := func() { once.Do(cb.Release) }
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		release()
		fn()
		return nil
	})
	id := w.v.Call("requestAnimationFrame", cb)
	return func() {
		w.v.Call("cancelAnimationFrame", id)
		release()
	}
}

func (w *Window) Observe(elements []dom.Element, opts dom.ObserverOptions, fn func(dom.Element)) dom.Remove {
	ctor := w.v.Get("IntersectionObserver")
	if isNullish(ctor) {
		// Without observer support everything is shown at once.
		for _, el := range elements {
			fn(el)
		}
		return func() {}
	}

	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		entries := args[0]
		for i := range entries.Length() {
			entry := entries.Index(i)
			if entry.Get("isIntersecting").Bool() {
				fn(wrap(entry.Get("target")))
			}
		}
		return nil
	})
	observer := ctor.New(cb, map[string]any{
		"threshold":  opts.Threshold,
		"rootMargin": opts.RootMargin,
	})
	for _, el := range elements {
		observer.Call("observe", unwrap(el))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			observer.Call("disconnect")
			cb.Release()
		})
	}
}
