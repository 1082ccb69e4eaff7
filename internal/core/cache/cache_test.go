package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestGetMissThenHit(t *testing.T) {
	c := New[string, int](10, time.Minute)

	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 42, 0)
	value, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 42, value)

	stats := c.Stats()
	require.Equal(t, int64(1), stats.Hits)
	require.Equal(t, int64(1), stats.Misses)
	require.Equal(t, 0.5, stats.HitRate)
}

func TestSetOverwritesExistingKey(t *testing.T) {
	c := New[string, string](10, time.Minute)
	c.Set("k", "first", 0)
	c.Set("k", "second", 0)

	value, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, "second", value)
	require.Equal(t, 1, c.Len())
}

func TestEvictionRemovesLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3, time.Minute)
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	c.Set("c", 3, 0)

	// Touch "a" so "b" becomes the oldest.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("d", 4, 0)

	require.Equal(t, 3, c.Len())
	require.True(t, c.Has("a"))
	require.False(t, c.Has("b"))
	require.True(t, c.Has("c"))
	require.True(t, c.Has("d"))
	require.Equal(t, int64(1), c.Stats().Evictions)
}

func TestEvictionIsOnePerInsert(t *testing.T) {
	c := New[int, int](2, time.Minute)
	for i := 0; i < 10; i++ {
		c.Set(i, i, 0)
	}
	require.Equal(t, 2, c.Len())
	require.Equal(t, int64(8), c.Stats().Evictions)
}

func TestTTLExpiryCountsAsMiss(t *testing.T) {
	clock := newFakeClock()
	c := New[string, int](10, time.Minute, WithClock[string, int](clock.Now))

	c.Set("a", 1, 0)
	clock.Advance(59 * time.Second)
	_, ok := c.Get("a")
	require.True(t, ok)

	clock.Advance(2 * time.Minute)
	_, ok = c.Get("a")
	require.False(t, ok)

	stats := c.Stats()
	require.Equal(t, int64(1), stats.Hits)
	require.Equal(t, int64(1), stats.Misses)
	require.Equal(t, int64(1), stats.Expirations)
	require.Equal(t, 0, stats.Size)
}

func TestPerEntryTTLOverridesDefault(t *testing.T) {
	clock := newFakeClock()
	c := New[string, int](10, time.Minute, WithClock[string, int](clock.Now))

	c.Set("short", 1, 10*time.Second)
	c.Set("long", 2, time.Hour)

	clock.Advance(30 * time.Second)
	require.False(t, c.Has("short"))
	require.True(t, c.Has("long"))
}

func TestHasDoesNotTouchCounters(t *testing.T) {
	c := New[string, int](10, time.Minute)
	c.Set("a", 1, 0)

	require.True(t, c.Has("a"))
	require.False(t, c.Has("b"))

	stats := c.Stats()
	require.Zero(t, stats.Hits)
	require.Zero(t, stats.Misses)
}

func TestLenPurgesExpiredEntries(t *testing.T) {
	clock := newFakeClock()
	c := New[string, int](10, time.Minute, WithClock[string, int](clock.Now))

	c.Set("a", 1, 0)
	c.Set("b", 2, time.Hour)
	require.Equal(t, 2, c.Len())

	clock.Advance(10 * time.Minute)
	require.Equal(t, 1, c.Len())
	require.Equal(t, int64(1), c.Stats().Expirations)
}

func TestGetOrSetComputesOnceOnMiss(t *testing.T) {
	c := New[string, int](10, time.Minute)
	calls := 0
	compute := func() (int, error) {
		calls++
		return 7, nil
	}

	value, err := c.GetOrSet("k", 0, compute)
	require.NoError(t, err)
	require.Equal(t, 7, value)

	value, err = c.GetOrSet("k", 0, compute)
	require.NoError(t, err)
	require.Equal(t, 7, value)
	require.Equal(t, 1, calls)
}

func TestGetOrSetDoesNotCacheErrors(t *testing.T) {
	c := New[string, int](10, time.Minute)
	boom := errors.New("boom")

	_, err := c.GetOrSet("k", 0, func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	require.False(t, c.Has("k"))

	value, err := c.GetOrSet("k", 0, func() (int, error) { return 9, nil })
	require.NoError(t, err)
	require.Equal(t, 9, value)
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string, int](10, time.Minute)
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	c.Get("a")

	c.Delete("a")
	require.False(t, c.Has("a"))
	require.Equal(t, 1, c.Len())

	c.Clear()
	require.Equal(t, 0, c.Len())
	// Counters survive a clear.
	require.Equal(t, int64(1), c.Stats().Hits)
}

func TestZeroMaxSizeClampsToOne(t *testing.T) {
	c := New[string, int](0, time.Minute)
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	require.Equal(t, 1, c.Len())
	require.False(t, c.Has("a"))
	require.True(t, c.Has("b"))
}

func TestConcurrentAccessIsSafe(t *testing.T) {
	c := New[int, int](64, time.Minute)
	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := (seed*31 + i) % 100
				c.Set(key, i, 0)
				c.Get(key)
			}
		}(worker)
	}
	wg.Wait()

	stats := c.Stats()
	require.LessOrEqual(t, stats.Size, 64)
	require.Equal(t, int64(1600), stats.Hits+stats.Misses)
}

func TestHealthThresholds(t *testing.T) {
	cases := []struct {
		fill int
		want HealthStatus
	}{
		{fill: 0, want: HealthHealthy},
		{fill: 69, want: HealthHealthy},
		{fill: 70, want: HealthWarning},
		{fill: 89, want: HealthWarning},
		{fill: 90, want: HealthCritical},
		{fill: 100, want: HealthCritical},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("fill_%d", tc.fill), func(t *testing.T) {
			c := New[int, int](100, time.Minute)
			for i := 0; i < tc.fill; i++ {
				c.Set(i, i, 0)
			}
			health := c.Health()
			require.Equal(t, tc.want, health.Status)
			require.InDelta(t, float64(tc.fill)/100.0, health.Utilization, 1e-9)
			if tc.want == HealthCritical {
				require.NotEmpty(t, health.Recommendation)
			}
		})
	}
}

func TestRegistryDefaultsAndIsolation(t *testing.T) {
	registry := NewRegistry(RegistryConfig{})

	stats := registry.StatsByKind()
	require.Len(t, stats, 5)
	require.Equal(t, 512, stats[KindChart].MaxSize)
	require.Equal(t, 2048, stats[KindGrid].MaxSize)
	require.Equal(t, 2048, stats[KindPhonetic].MaxSize)
	require.Equal(t, 4096, stats[KindScore].MaxSize)
	require.Equal(t, 8192, stats[KindCharacter].MaxSize)

	// Traffic on one kind leaves the others untouched.
	registry.Grids.Get("missing")
	stats = registry.StatsByKind()
	require.Equal(t, int64(1), stats[KindGrid].Misses)
	require.Zero(t, stats[KindChart].Misses)

	health := registry.HealthByKind()
	require.Len(t, health, 5)
	for kind, h := range health {
		require.Equal(t, HealthHealthy, h.Status, "kind %s", kind)
	}
}

func TestRegistryPartialConfigKeepsOverrides(t *testing.T) {
	cfg := RegistryConfig{
		Score: Settings{MaxSize: 16, TTL: time.Second},
	}
	registry := NewRegistry(cfg)

	stats := registry.StatsByKind()
	require.Equal(t, 16, stats[KindScore].MaxSize)
	require.Equal(t, 512, stats[KindChart].MaxSize)
}
