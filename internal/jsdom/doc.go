//go:build js && wasm

// Package jsdom implements the dom interfaces on top of the browser DOM
// through syscall/js.
//
// Every callback handed to the browser is a js.Func that is released when
// its Remove is called, or after it runs for one-shot timers and frames.
package jsdom
