package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/clinicsite/pkg/logger"
)

// Limiter implements a sliding window limiter with a block-out period.
type Limiter struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock sets the time source. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLogger sets the logger used for rejection diagnostics. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(l *Limiter) {
		if log != nil {
			l.logger = log
		}
	}
}

// New creates a new sliding window rate limiter.
func New(store Store, opts ...Option) (*Limiter, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	l := &Limiter{
		store:  store,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// IsAllowed records an attempt for actionID and reports whether it is accepted.
// Store failures are logged and treated as allowed: the limiter is a UX
// affordance and must not lock visitors out of the page.
func (l *Limiter) IsAllowed(ctx context.Context, actionID string, maxAttempts int, window time.Duration) bool {
	result, err := l.Allow(ctx, actionID, Rule{MaxAttempts: maxAttempts, Window: window})
	if err != nil {
		l.logger.ErrorContext(ctx, "rate limiter store failure",
			logger.Component("ratelimiter"),
			logger.Action(actionID),
			logger.Error(err),
		)
		return true
	}
	return result.Allowed
}

// Allow records an attempt for actionID under rule.
func (l *Limiter) Allow(ctx context.Context, actionID string, rule Rule) (*Result, error) {
	rule = rule.normalize()
	now := l.now()

	var result Result
	err := l.store.Update(ctx, actionID, func(e *Entry) {
		result = evaluate(e, now, rule)
	})
	if err != nil {
		return nil, err
	}

	if !result.Allowed {
		l.logger.WarnContext(ctx, "rate limit exceeded",
			logger.Component("ratelimiter"),
			logger.Action(actionID),
			slog.Time("blocked_until", result.BlockedUntil),
		)
	}
	return &result, nil
}

// Status returns the state actionID would be evaluated against, without
// recording an attempt.
func (l *Limiter) Status(ctx context.Context, actionID string, rule Rule) (*Result, error) {
	rule = rule.normalize()
	now := l.now()

	entry, _, err := l.store.Get(ctx, actionID)
	if err != nil {
		return nil, err
	}

	if entry.blockedAt(now) {
		return &Result{
			Limit:        rule.MaxAttempts,
			BlockedUntil: entry.BlockedUntil,
			CheckedAt:    now,
		}, nil
	}

	count := 0
	for _, ts := range entry.Attempts {
		if now.Sub(ts) < rule.Window {
			count++
		}
	}

	remaining := rule.MaxAttempts - count
	return &Result{
		Allowed:   remaining > 0,
		Limit:     rule.MaxAttempts,
		Remaining: max(0, remaining),
		CheckedAt: now,
	}, nil
}

// Reset discards all state for actionID so the next attempt is accepted.
func (l *Limiter) Reset(ctx context.Context, actionID string) error {
	return l.store.Delete(ctx, actionID)
}

// evaluate applies the sliding window algorithm to e at now.
//
// A blocked key rejects until BlockedUntil. Otherwise attempts at least one
// window old are pruned; a full window blocks the key for twice the window,
// anything else records the attempt and clears the block.
func evaluate(e *Entry, now time.Time, rule Rule) Result {
	if e.blockedAt(now) {
		return Result{
			Limit:        rule.MaxAttempts,
			BlockedUntil: e.BlockedUntil,
			CheckedAt:    now,
		}
	}

	kept := e.Attempts[:0]
	for _, ts := range e.Attempts {
		if now.Sub(ts) < rule.Window {
			kept = append(kept, ts)
		}
	}
	e.Attempts = kept

	if len(e.Attempts) >= rule.MaxAttempts {
		e.Blocked = true
		e.BlockedUntil = now.Add(rule.BlockDuration())
		return Result{
			Limit:        rule.MaxAttempts,
			BlockedUntil: e.BlockedUntil,
			CheckedAt:    now,
		}
	}

	e.Attempts = append(e.Attempts, now)
	e.Blocked = false
	e.BlockedUntil = time.Time{}

	return Result{
		Allowed:   true,
		Limit:     rule.MaxAttempts,
		Remaining: rule.MaxAttempts - len(e.Attempts),
		CheckedAt: now,
	}
}
