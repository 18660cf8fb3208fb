package stats

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
)

// statsCache provides an in-memory LRU cache for stats lookups
// with time-based expiration.
type statsCache struct {
	lru *expirable.LRU[string, *domain.UserStats]
}

// newStatsCache creates a new stats cache with the specified size and TTL.
func newStatsCache(size int, ttl time.Duration) *statsCache {
	return &statsCache{
		lru: expirable.NewLRU[string, *domain.UserStats](size, nil, ttl),
	}
}

func (c *statsCache) Get(userID string) (*domain.UserStats, bool) {
	return c.lru.Get(userID)
}

func (c *statsCache) Set(userID string, stats *domain.UserStats) {
	c.lru.Add(userID, stats)
}

func (c *statsCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
