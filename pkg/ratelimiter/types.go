package ratelimiter

import "time"

const (
	// DefaultMaxAttempts is used when a rule does not set a positive limit.
	DefaultMaxAttempts = 5
	// DefaultWindow is used when a rule does not set a positive window.
	DefaultWindow = 60 * time.Second
	// blockFactor multiplies the window to get the block-out duration.
	blockFactor = 2
)

// Rule defines how many attempts are accepted within a window.
type Rule struct {
	MaxAttempts int           // Attempts accepted per window
	Window      time.Duration // Length of the sliding window
}

// normalize replaces non-positive values with the package defaults.
func (r Rule) normalize() Rule {
	if r.MaxAttempts <= 0 {
		r.MaxAttempts = DefaultMaxAttempts
	}
	if r.Window <= 0 {
		r.Window = DefaultWindow
	}
	return r
}

// BlockDuration returns how long a key stays blocked once it exceeds the rule.
func (r Rule) BlockDuration() time.Duration {
	return r.normalize().Window * blockFactor
}

// Entry is the stored state of a single action key.
type Entry struct {
	Attempts     []time.Time // Accepted attempts inside the current window, oldest first
	Blocked      bool        // Set when the key exceeded its rule
	BlockedUntil time.Time   // Checks fail until this instant while Blocked is set
}

// blockedAt reports whether the entry rejects attempts at the given instant.
func (e *Entry) blockedAt(now time.Time) bool {
	return e.Blocked && now.Before(e.BlockedUntil)
}

// Result contains the result of a rate limit check.
type Result struct {
	Allowed      bool      // Whether the attempt was accepted
	Limit        int       // Maximum attempts per window
	Remaining    int       // Attempts left in the current window
	BlockedUntil time.Time // Zero unless the key is blocked
	CheckedAt    time.Time // Instant the decision was made
}

// RetryAfter returns how long to wait before the next attempt can succeed.
// Returns 0 if the attempt was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed || r.BlockedUntil.IsZero() {
		return 0
	}
	return max(0, r.BlockedUntil.Sub(r.CheckedAt))
}
