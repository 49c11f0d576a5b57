package bridge

import (
	"context"
	"time"

	"github.com/dmitrymomot/clinicsite/pkg/ratelimiter"
	"github.com/dmitrymomot/clinicsite/pkg/sanitizer"
)

// Utils backs the SecurityUtils global.
type Utils struct {
	limiter *ratelimiter.Limiter
	now     func() time.Time
}

// Option configures Utils.
type Option func(*Utils)

// WithClock sets the time source for date validation. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(u *Utils) {
		if now != nil {
			u.now = now
		}
	}
}

// New returns Utils sharing limiter with the page guards.
func New(limiter *ratelimiter.Limiter, opts ...Option) (*Utils, error) {
	if limiter == nil {
		return nil, ErrNoLimiter
	}
	u := &Utils{limiter: limiter, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// EscapeHTML escapes a string argument; anything else yields "".
func (u *Utils) EscapeHTML(args []Arg) string {
	s, _ := str(args, 0)
	return sanitizer.EscapeHTML(s)
}

// StripScripts strips a string argument; anything else yields "".
func (u *Utils) StripScripts(args []Arg) string {
	s, _ := str(args, 0)
	return sanitizer.StripScripts(s)
}

func (u *Utils) SanitizePhone(args []Arg) (string, bool) {
	return validate(args, sanitizer.SanitizePhone)
}

func (u *Utils) SanitizeName(args []Arg) (string, bool) {
	return validate(args, sanitizer.SanitizeName)
}

func (u *Utils) SanitizeDate(args []Arg) (string, bool) {
	return validate(args, func(s string) (string, bool) { return sanitizer.SanitizeDate(s, u.now()) })
}

func (u *Utils) SanitizeURL(args []Arg) (string, bool) {
	return validate(args, sanitizer.SanitizeURL)
}

// IsAllowed records an attempt for (actionID, maxAttempts, windowMs).
// Missing or unusable limits fall back to the limiter defaults.
func (u *Utils) IsAllowed(ctx context.Context, args []Arg) bool {
	key, _ := str(args, 0)
	return u.limiter.IsAllowed(ctx, key, count(args, 1), millis(args, 2))
}

// Reset clears the history of actionID.
func (u *Utils) Reset(ctx context.Context, args []Arg) {
	key, _ := str(args, 0)
	_ = u.limiter.Reset(ctx, key)
}

func validate(args []Arg, fn func(string) (string, bool)) (string, bool) {
	s, ok := str(args, 0)
	if !ok {
		return "", false
	}
	return fn(s)
}
