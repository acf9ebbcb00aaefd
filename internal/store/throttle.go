package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/VladPetriv/currency_bot/internal/service"
	"github.com/coocood/freecache"
)

// DefaultThrottleCacheSize is the freecache size in bytes. 512KB is the freecache minimum.
const DefaultThrottleCacheSize = 512 * 1024

type throttleStore struct {
	mu    sync.Mutex
	cache *freecache.Cache
	now   func() time.Time
}

var _ service.ThrottleStore = (*throttleStore)(nil)

// ThrottleOptions represents input options for new instance of throttle store.
type ThrottleOptions struct {
	Cache *freecache.Cache
	// Now overrides the clock, time.Now by default.
	Now func() time.Time
}

// NewThrottle creates a new throttle store on top of a freecache cache.
func NewThrottle(opts ThrottleOptions) *throttleStore {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &throttleStore{
		cache: opts.Cache,
		now:   now,
	}
}

// Hit keeps the time of the last hit under key. Freecache expiry only evicts old keys,
// the window itself is measured against the stored time.
func (t *throttleStore) Hit(key string, window time.Duration) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()

	value, err := t.cache.Get([]byte(key))
	if err != nil && !errors.Is(err, freecache.ErrNotFound) {
		return false, fmt.Errorf("get throttle key %s: %w", key, err)
	}

	throttled := false
	if err == nil && len(value) == 8 {
		lastHit := time.Unix(0, int64(binary.BigEndian.Uint64(value)))
		throttled = now.Sub(lastHit) < window
	}

	hit := make([]byte, 8)
	binary.BigEndian.PutUint64(hit, uint64(now.UnixNano()))

	expireSeconds := int(math.Ceil(window.Seconds())) + 1
	err = t.cache.Set([]byte(key), hit, expireSeconds)
	if err != nil {
		return false, fmt.Errorf("set throttle key %s: %w", key, err)
	}

	return throttled, nil
}
