package ratelimiter

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// MemoryStore implements Store interface using in-memory storage.
// Entries live until Delete is called.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*Entry),
	}
}

// Update runs fn against the entry for key under the store lock.
func (ms *MemoryStore) Update(ctx context.Context, key string, fn func(entry *Entry)) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrContextCancelled, err)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	e, exists := ms.entries[key]
	if !exists {
		e = &Entry{}
	}

	fn(e)
	ms.entries[key] = e
	return nil
}

// Get returns a copy of the stored entry so callers cannot mutate store state.
func (ms *MemoryStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, false, errors.Join(ErrContextCancelled, err)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	e, exists := ms.entries[key]
	if !exists {
		return Entry{}, false, nil
	}

	cp := *e
	cp.Attempts = slices.Clone(e.Attempts)
	return cp, true, nil
}

func (ms *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrContextCancelled, err)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.entries, key)
	return nil
}

// Len returns the number of tracked keys.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.entries)
}
