package market

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

// CacheSchemaVersion invalidates cached history when the cached shape changes
const CacheSchemaVersion = "1.0"

type cachedHistoryEntry struct {
	Version  string
	History  []domain.PriceHistory
	CachedAt time.Time
}

// historyCache keeps recent history lookups in an expiring LRU
type historyCache struct {
	lru *expirable.LRU[string, *cachedHistoryEntry]
}

func newHistoryCache(size int, ttl time.Duration) *historyCache {
	return &historyCache{
		lru: expirable.NewLRU[string, *cachedHistoryEntry](size, nil, ttl),
	}
}

// Get returns cached history if present and written with the current schema version
func (c *historyCache) Get(key string) ([]domain.PriceHistory, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.History, true
}

func (c *historyCache) Set(key string, history []domain.PriceHistory) {
	c.lru.Add(key, &cachedHistoryEntry{
		Version:  CacheSchemaVersion,
		History:  history,
		CachedAt: time.Now(),
	})
}

// historyKey is independent of city order
func historyKey(itemID string, cities []domain.City, quality int) string {
	names := make([]string, len(cities))
	for i, city := range cities {
		names[i] = string(city)
	}
	sort.Strings(names)
	return itemID + "|" + strings.Join(names, ",") + "|" + strconv.Itoa(quality)
}
