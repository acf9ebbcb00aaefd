package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/VladPetriv/currency_bot/internal/service"
	"github.com/VladPetriv/currency_bot/internal/store"
	"github.com/coocood/freecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_GetOrCreate(t *testing.T) {
	t.Parallel()

	sessions := store.NewSession()

	first := sessions.GetOrCreate(1)
	require.NotNil(t, first)
	assert.Equal(t, int64(1), first.ChatID)
	assert.False(t, first.Rates.Current().IsStable)

	assert.Same(t, first, sessions.GetOrCreate(1))
	assert.NotSame(t, first, sessions.GetOrCreate(2))
	assert.Equal(t, 2, sessions.Count())
}

func TestSessionStore_ConcurrentGetOrCreate(t *testing.T) {
	t.Parallel()

	sessions := store.NewSession()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []*service.Session
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			session := sessions.GetOrCreate(42)

			mu.Lock()
			results = append(results, session)
			mu.Unlock()
		}()
	}
	wg.Wait()

	for _, session := range results {
		assert.Same(t, results[0], session)
	}
	assert.Equal(t, 1, sessions.Count())
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func TestThrottleStore_Hit(t *testing.T) {
	t.Parallel()

	// the first hit lands just before a second boundary
	clock := &testClock{now: time.Date(2024, time.March, 1, 12, 0, 0, 900_000_000, time.UTC)}
	throttle := store.NewThrottle(store.ThrottleOptions{
		Cache: freecache.NewCache(store.DefaultThrottleCacheSize),
		Now:   clock.Now,
	})

	testCases := [...]struct {
		desc     string
		key      string
		advance  time.Duration
		expected bool
	}{
		{
			desc:     "should let the first hit through",
			key:      "1:currency/convert",
			expected: false,
		},
		{
			desc:     "should throttle a hit across the second boundary",
			key:      "1:currency/convert",
			advance:  200 * time.Millisecond,
			expected: true,
		},
		{
			desc:     "should restart the window on a throttled hit",
			key:      "1:currency/convert",
			advance:  900 * time.Millisecond,
			expected: true,
		},
		{
			desc:     "should not throttle another chat",
			key:      "2:currency/convert",
			expected: false,
		},
		{
			desc:     "should let a hit through after a quiet window",
			key:      "1:currency/convert",
			advance:  1500 * time.Millisecond,
			expected: false,
		},
	}
	// cases share the store, so they run in order
	for _, tc := range testCases {
		clock.now = clock.now.Add(tc.advance)

		throttled, err := throttle.Hit(tc.key, time.Second)
		require.NoError(t, err, tc.desc)
		assert.Equal(t, tc.expected, throttled, tc.desc)
	}
}
