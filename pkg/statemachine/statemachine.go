package statemachine

import (
	"fmt"
	"sync"
)

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard[S, E comparable] func(from S, event E) bool

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action[S, E comparable] func(from, to S, event E) error

// Transition defines a state change triggered by an event.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for transition to proceed
	Actions []Action[S, E] // Executed in order before state change
}

// Machine is an in-memory state machine with O(1) transition lookup.
type Machine[S, E comparable] struct {
	mu          sync.RWMutex
	initial     S
	current     S
	transitions map[S]map[E][]Transition[S, E]
}

// AddTransition registers a transition. Multiple transitions for the same
// from/event pair are tried in registration order.
func (m *Machine[S, E]) AddTransition(t Transition[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[E][]Transition[S, E])
	}
	m.transitions[t.From][t.Event] = append(m.transitions[t.From][t.Event], t)
}

func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

// Fire applies event to the current state.
func (m *Machine[S, E]) Fire(event E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.match(event)
	if err != nil {
		return err
	}

	for _, action := range t.Actions {
		if err := action(m.current, t.To, event); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}

// CanFire reports whether Fire(event) would find a transition whose guards pass.
func (m *Machine[S, E]) CanFire(event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.match(event)
	return err == nil
}

// Reset returns the machine to its initial state.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// match returns the first transition for event whose guards all pass.
// Callers must hold the lock.
func (m *Machine[S, E]) match(event E) (*Transition[S, E], error) {
	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return nil, &ErrNoTransitionAvailable{StateName: fmt.Sprint(m.current), EventName: fmt.Sprint(event)}
	}

	for i := range candidates {
		if m.guardsPass(&candidates[i], event) {
			return &candidates[i], nil
		}
	}

	return nil, &ErrTransitionRejected{StateName: fmt.Sprint(m.current), EventName: fmt.Sprint(event)}
}

func (m *Machine[S, E]) guardsPass(t *Transition[S, E], event E) bool {
	for _, guard := range t.Guards {
		if !guard(m.current, event) {
			return false
		}
	}
	return true
}
