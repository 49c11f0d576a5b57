package guard

import (
	"time"

	"golang.org/x/time/rate"
)

// ScrollInterval is the minimum spacing of handled scroll events.
const ScrollInterval = 16 * time.Millisecond

// Throttle drops events that arrive closer together than its interval.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle admitting one event per interval.
// A non-positive interval uses ScrollInterval.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = ScrollInterval
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Allow reports whether an event arriving now should be handled.
func (t *Throttle) Allow() bool { return t.limiter.Allow() }

// AllowAt reports whether an event arriving at ts should be handled.
func (t *Throttle) AllowAt(ts time.Time) bool { return t.limiter.AllowN(ts, 1) }

// Wrap returns fn guarded by the throttle.
func (t *Throttle) Wrap(fn func()) func() {
	return func() {
		if t.Allow() {
			fn()
		}
	}
}
