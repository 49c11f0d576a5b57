package ratelimiter

import "context"

// Store defines the interface for rate limit storage backends.
type Store interface {
	// Update loads the entry for key (a zero Entry when the key is unseen),
	// passes it to fn and persists the result. Implementations must run the
	// whole read-modify-write atomically with respect to other calls.
	Update(ctx context.Context, key string, fn func(entry *Entry)) error

	// Get returns a copy of the entry for key and whether it exists.
	Get(ctx context.Context, key string) (Entry, bool, error)

	// Delete clears the rate limit state for the given key.
	Delete(ctx context.Context, key string) error
}
