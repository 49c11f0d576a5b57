//go:build js && wasm

package jsdom

import (
	"sync"
	"syscall/js"

	"github.com/dmitrymomot/clinicsite/pkg/dom"
)

// listen registers fn for eventType on target and returns the remover.
func listen(target js.Value, eventType string, fn dom.Listener) dom.Remove {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(&Event{v: args[0]})
		}
		return nil
	})
	target.Call("addEventListener", eventType, cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			target.Call("removeEventListener", eventType, cb)
			cb.Release()
		})
	}
}

func isNullish(v js.Value) bool { return v.IsNull() || v.IsUndefined() }
