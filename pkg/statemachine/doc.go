// Package statemachine provides a small, type-safe finite state machine used
// to drive interactive widgets such as the testimonial carousel.
//
// States and events are any comparable types, typically string constants:
//
//	type mode string
//	type input string
//
//	const (
//		auto     mode  = "auto"
//		dragging mode  = "dragging"
//		down     input = "pointer_down"
//		up       input = "pointer_up"
//	)
//
//	sm := statemachine.MustNew(auto,
//		statemachine.WithTransition(auto, dragging, down),
//		statemachine.WithTransition(dragging, auto, up,
//			statemachine.WithGuard(func(from mode, e input) bool { return !hovering }),
//		),
//	)
//
//	if err := sm.Fire(down); err != nil {
//		// no transition from the current state
//	}
//
// Several transitions may share a from/event pair; the first one whose guards
// all pass wins, which allows guard based branching. Actions run in order
// before the state changes and an action error aborts the transition.
//
// Fire distinguishes an undefined transition (ErrNoTransitionAvailable) from a
// transition that exists but was blocked by guards (ErrTransitionRejected).
//
// All methods are safe for concurrent use. Guards and actions run while the
// machine lock is held and must not call back into the same machine.
package statemachine
