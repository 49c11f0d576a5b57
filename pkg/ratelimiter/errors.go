package ratelimiter

import "errors"

// Package-level error definitions for rate limiter operations.
var (
	// ErrStoreRequired indicates that a limiter was created without a store.
	ErrStoreRequired = errors.New("store is required")

	// ErrContextCancelled indicates that the operation was cancelled due to context.
	ErrContextCancelled = errors.New("context cancelled")

	// ErrStoreUnavailable indicates that the store backend is unavailable.
	ErrStoreUnavailable = errors.New("store unavailable")
)
