// Package dom describes the small slice of the browser document API that the
// page features use. Package ui is written against these interfaces only.
//
// Two implementations exist: internal/jsdom wraps syscall/js for the
// WebAssembly build, and package domtest provides an in-memory document with
// virtual timers and animation frames for tests.
//
// Lookups return a nil Element when nothing matches. Every AddEventListener
// returns a function that removes the listener again.
package dom
