package carousel

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	// Stop cancels the call. It reports false if the call already ran or was stopped.
	Stop() bool
}

// Scheduler runs f once after d, on another goroutine or a later turn of the
// event loop. f may run before AfterFunc returns, but never inside it.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, f func()) Timer

func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) Timer { return fn(d, f) }

// RealScheduler schedules on the Go runtime timers.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
