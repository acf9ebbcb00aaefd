package currency

import (
	"maps"
	"sync"
	"time"

	"github.com/VladPetriv/currency_bot/internal/models"
	"golang.org/x/sync/singleflight"
)

// DefaultStaleAfter is the age after which a rate table should be refreshed.
const DefaultStaleAfter = 6 * time.Hour

// RateCache holds the latest rate table. It never refreshes on its own:
// callers check staleness and refresh when a conversion is requested.
type RateCache struct {
	mu    sync.RWMutex
	table models.RateTable

	refreshGroup singleflight.Group
}

// NewRateCache creates an unstable, empty cache that is immediately stale.
func NewRateCache() *RateCache {
	return &RateCache{
		table: models.RateTable{
			IsStable:   false,
			LastUpdate: time.Time{},
			Data:       map[string]float64{},
		},
	}
}

// Current returns a snapshot of the cached table that is safe to read without locks.
func (c *RateCache) Current() models.RateTable {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table := c.table
	table.Data = maps.Clone(c.table.Data)

	return table
}

// Refresh replaces the cached table. Tables are never merged.
func (c *RateCache) Refresh(table models.RateTable) {
	if table.Data == nil {
		table.Data = map[string]float64{}
	}

	c.mu.Lock()
	c.table = table
	c.mu.Unlock()
}

// IsStaleAt reports whether the table is at least threshold old at now.
func (c *RateCache) IsStaleAt(now time.Time, threshold time.Duration) bool {
	c.mu.RLock()
	lastUpdate := c.table.LastUpdate
	c.mu.RUnlock()

	if lastUpdate.IsZero() {
		return true
	}

	return now.Sub(lastUpdate) >= threshold
}

// RefreshIfStale calls fetch and stores its table when the cache is stale at now.
// Concurrent callers share one in-flight fetch. The returned flag reports whether
// this call observed a refresh.
func (c *RateCache) RefreshIfStale(now time.Time, threshold time.Duration, fetch func() models.RateTable) (models.RateTable, bool) {
	if !c.IsStaleAt(now, threshold) {
		return c.Current(), false
	}

	result, _, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		// another caller may have refreshed while this one was waiting
		if !c.IsStaleAt(now, threshold) {
			return false, nil
		}

		c.Refresh(fetch())

		return true, nil
	})

	refreshed, _ := result.(bool)

	return c.Current(), refreshed
}

// TableFromResponse turns a provider response into a rate table fetched at fetchedAt.
// A nil or unsuccessful response yields an unstable, empty table that still
// advances LastUpdate, so repeated failures are retried only after the stale window.
func TableFromResponse(response *models.RateResponse, fetchedAt time.Time) models.RateTable {
	if response == nil || !response.Success {
		return models.RateTable{
			IsStable:   false,
			LastUpdate: fetchedAt,
			Data:       map[string]float64{},
		}
	}

	return models.RateTable{
		IsStable:   true,
		LastUpdate: fetchedAt,
		Data:       maps.Clone(response.Rates),
	}
}
