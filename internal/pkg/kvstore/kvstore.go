// Package kvstore provides an expiring key-value store for short-lived
// credentials. Entries carry a per-key time-to-live and the store is
// the single source of truth for expiry; callers never compare
// timestamps themselves.
package kvstore

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates the entry is absent or already expired.
	ErrNotFound = errors.New("entry not found")

	// ErrUnavailable indicates the underlying store could not be
	// reached. Callers translate this into a storage error rather
	// than exposing connectivity detail.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the expiring credential store contract.
//
// All operations are atomic per key under concurrent access; Set
// unconditionally replaces any prior entry, so the most recently
// written value is the only valid one.
type Store interface {
	// Set stores value under key with the given time-to-live,
	// replacing any existing entry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the current value, or ErrNotFound when the entry is
	// absent or expired. Expired entries are never returned.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the entry if present; no-op when absent.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an unexpired entry is present.
	Exists(ctx context.Context, key string) (bool, error)

	// TTL returns the remaining validity of the entry, or ErrNotFound
	// when absent.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// CompareAndDelete atomically deletes the entry if its current
	// value equals expect, reporting whether the delete happened.
	// Under concurrent calls for the same key at most one caller
	// observes true.
	CompareAndDelete(ctx context.Context, key, expect string) (bool, error)
}
