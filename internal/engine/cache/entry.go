package cache

import "time"

// Entry represents a single cached token record with its fetch timestamp.
// Entries are owned exclusively by the Store and never shared outside it.
type Entry[T any] struct {
	// Data is the cached value.
	Data T

	// FetchedAt is the timestamp when the entry was stored.
	FetchedAt time.Time
}

// IsValid reports whether the entry is still fresh at the given instant:
// valid iff now − FetchedAt ≤ ttl.
func (e Entry[T]) IsValid(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) <= ttl
}

// Age returns the duration between the entry's fetch time and now.
func (e Entry[T]) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}
