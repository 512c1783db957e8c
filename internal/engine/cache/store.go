package cache

import (
	"errors"
	"sync"
	"time"
)

// Common cache errors.
var (
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
	ErrInvalidTTLValue = errors.New("cache TTL must be positive")
)

// Clock returns the current time. Injected into the store so expiry is
// deterministic under test.
type Clock func() time.Time

// Store provides in-memory caching with TTL expiration.
// Thread-safe for concurrent access.
type Store[T any] struct {
	// ttl is the time-to-live applied to every entry.
	ttl time.Duration

	// now supplies the current time.
	now Clock

	// mu protects entries and the counters.
	mu      sync.Mutex
	entries map[string]Entry[T]
	hits    uint64
	misses  uint64
}

// NewStore creates a memory-backed cache store with the given TTL.
// A nil clock defaults to time.Now.
func NewStore[T any](ttl time.Duration, now Clock) (*Store[T], error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTLValue
	}
	if now == nil {
		now = time.Now
	}
	return &Store[T]{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]Entry[T]),
	}, nil
}

// Get retrieves a cached value by key.
// A present, unexpired entry counts as a hit and is returned. A missing key
// counts as a miss. An expired entry counts as a miss and is deleted so it
// no longer contributes to subsequent lookups.
func (s *Store[T]) Get(key string) (T, bool) {
	var zero T
	if key == "" {
		return zero, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		s.misses++
		return zero, false
	}

	if !entry.IsValid(s.now(), s.ttl) {
		delete(s.entries, key)
		s.misses++
		return zero, false
	}

	s.hits++
	return entry.Data, true
}

// Peek reports whether key holds a valid entry without touching the hit/miss
// counters or evicting. Used by the batch fetcher's short-circuit check.
func (s *Store[T]) Peek(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	return ok && entry.IsValid(s.now(), s.ttl)
}

// Set stores a value under key with the current timestamp, unconditionally
// overwriting any prior entry.
func (s *Store[T]) Set(key string, value T) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = Entry[T]{Data: value, FetchedAt: s.now()}
	return nil
}

// Clear removes all entries. Counters are left untouched.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry[T])
}

// Len returns the number of stored entries, including any not yet evicted
// expired ones.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// TTL returns the store's time-to-live.
func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}

// Stats returns a snapshot of the hit/miss counters.
func (s *Store[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{Hits: s.hits, Misses: s.misses}
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// HitRate returns hits / (hits + misses) × 100, or 0 when there have been
// no accesses.
func (st Stats) HitRate() float64 {
	total := st.Hits + st.Misses
	if total == 0 {
		return 0
	}
	return float64(st.Hits) / float64(total) * 100
}
