package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for deterministic expiry tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(t *testing.T, ttl time.Duration) (*Store[string], *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	store, err := NewStore[string](ttl, clk.Now)
	require.NoError(t, err)
	return store, clk
}

func TestEntry(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := Entry[string]{Data: "v", FetchedAt: now}

	assert.True(t, entry.IsValid(now, time.Minute))
	assert.True(t, entry.IsValid(now.Add(time.Minute), time.Minute), "boundary instant is still valid")
	assert.False(t, entry.IsValid(now.Add(time.Minute+time.Nanosecond), time.Minute))
	assert.Equal(t, 30*time.Second, entry.Age(now.Add(30*time.Second)))
}

func TestStoreGetSet(t *testing.T) {
	store, clk := newTestStore(t, 5*time.Minute)

	_, ok := store.Get("token-1-USDC")
	assert.False(t, ok)

	require.NoError(t, store.Set("token-1-USDC", "usdc"))

	clk.Advance(4 * time.Minute)
	got, ok := store.Get("token-1-USDC")
	assert.True(t, ok)
	assert.Equal(t, "usdc", got)

	t.Run("overwrite refreshes timestamp", func(t *testing.T) {
		require.NoError(t, store.Set("token-1-USDC", "usdc2"))
		clk.Advance(4 * time.Minute)

		got, ok := store.Get("token-1-USDC")
		assert.True(t, ok)
		assert.Equal(t, "usdc2", got)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.Set("", "x"), ErrInvalidCacheKey)
		_, ok := store.Get("")
		assert.False(t, ok)
	})
}

func TestStoreExpiry(t *testing.T) {
	store, clk := newTestStore(t, 5*time.Minute)
	require.NoError(t, store.Set("k", "v"))

	clk.Advance(5*time.Minute + time.Second)

	_, ok := store.Get("k")
	assert.False(t, ok, "entry past TTL is treated as absent")
	assert.Equal(t, 0, store.Len(), "stale read evicts the entry")

	// The evicted entry must not feed later hits.
	_, ok = store.Get("k")
	assert.False(t, ok)
	assert.Equal(t, Stats{Hits: 0, Misses: 2}, store.Stats())
}

func TestStorePeek(t *testing.T) {
	store, clk := newTestStore(t, time.Minute)
	require.NoError(t, store.Set("k", "v"))

	assert.True(t, store.Peek("k"))
	clk.Advance(2 * time.Minute)
	assert.False(t, store.Peek("k"))

	// Peek neither counts nor evicts.
	assert.Equal(t, Stats{}, store.Stats())
	assert.Equal(t, 1, store.Len())
}

func TestStoreClear(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Set("b", "2"))
	store.Get("a")
	store.Get("missing")

	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, store.Stats(), "clear leaves counters alone")
}

func TestStoreInvalidTTL(t *testing.T) {
	_, err := NewStore[string](0, nil)
	assert.ErrorIs(t, err, ErrInvalidTTLValue)
}

func TestHitRate(t *testing.T) {
	assert.Equal(t, 0.0, Stats{}.HitRate(), "no accesses yields 0, not NaN")
	assert.InDelta(t, 50.0, Stats{Hits: 1, Misses: 1}.HitRate(), 1e-9)
	assert.InDelta(t, 75.0, Stats{Hits: 3, Misses: 1}.HitRate(), 1e-9)
}

func TestParseTTL(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "300", want: 5 * time.Minute},
		{input: "5m", want: 5 * time.Minute},
		{input: "1h30m", want: 90 * time.Minute},
		{input: "0", wantErr: true},
		{input: "100000000", wantErr: true},
		{input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTTL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTTLFromEnv(t *testing.T) {
	t.Setenv(EnvTTLSeconds, "")
	assert.Equal(t, DefaultTTL, TTLFromEnv(DefaultTTL))

	t.Setenv(EnvTTLSeconds, "60")
	assert.Equal(t, time.Minute, TTLFromEnv(DefaultTTL))

	t.Setenv(EnvTTLSeconds, "-1")
	assert.Equal(t, DefaultTTL, TTLFromEnv(DefaultTTL))
}
