// Package ratelimiter provides a keyed sliding window rate limiter with a
// block-out period, used to throttle repeated user actions on the page
// (form submissions, call and WhatsApp clicks).
//
// Every action identifier owns an ordered list of attempt timestamps. On each
// check the timestamps older than the window are pruned; when the remaining
// count already reaches the limit the key is blocked for twice the window and
// every check fails until the block expires.
//
// # Basic Usage
//
//	limiter, err := ratelimiter.New(ratelimiter.NewMemoryStore())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if !limiter.IsAllowed(ctx, "form-booking", 3, 30*time.Second) {
//		// show the "too many attempts" banner
//		return
//	}
//
// A zero or negative limit or window falls back to the package defaults
// (5 attempts per 60 seconds):
//
//	limiter.IsAllowed(ctx, "click-phone", 0, 0)
//
// # Detailed Results
//
// Allow returns a Result describing the decision:
//
//	result, err := limiter.Allow(ctx, "click-whatsapp", ratelimiter.Rule{
//		MaxAttempts: 5,
//		Window:      time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//	if !result.Allowed {
//		fmt.Println("retry in", result.RetryAfter())
//	}
//
// Status reports the same information without recording an attempt, and
// Reset discards all state for a key so the next attempt is accepted.
//
// # Time Source
//
// The limiter reads the current time from time.Now unless WithClock is given,
// which keeps tests deterministic:
//
//	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
//	limiter, _ := ratelimiter.New(store, ratelimiter.WithClock(func() time.Time { return now }))
//
// # Thread Safety
//
// MemoryStore serializes updates per store with a mutex, so a Limiter can be
// shared between goroutines. In the browser all callbacks run on a single
// thread and the lock is never contended.
//
// # Memory
//
// Keys are never evicted. This is acceptable for page-lifetime usage with a
// handful of fixed action identifiers; do not key by unbounded input.
package ratelimiter
