package cache

import (
	"context"
	"fmt"
	"slices"
	"time"

	"fxswap/internal/domain"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
)

// RistrettoFeedCache keeps feed snapshots in process memory.
type RistrettoFeedCache struct {
	cache *ristretto.Cache
}

// NewFeedCache keeps up to maxItems snapshots.
func NewFeedCache(maxItems int64) (*RistrettoFeedCache, error) {
	if maxItems <= 0 {
		maxItems = 1
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		// one unit per snapshot: MaxCost counts snapshots, not bytes
		MaxCost:            maxItems,
		IgnoreInternalCost: true,
		BufferItems:        64,
	})
	if err != nil {
		return nil, fmt.Errorf("create feed cache failed: %w", err)
	}
	return &RistrettoFeedCache{cache: c}, nil
}

func (c *RistrettoFeedCache) Get(_ context.Context, key string) ([]domain.PriceObservation, bool) {
	if v, ok := c.cache.Get(key); ok {
		obs, ok := v.([]domain.PriceObservation)
		return slices.Clone(obs), ok
	}
	return nil, false
}

func (c *RistrettoFeedCache) Set(_ context.Context, key string, observations []domain.PriceObservation, ttl time.Duration) {
	if !c.cache.SetWithTTL(key, slices.Clone(observations), 1, ttl) {
		logrus.WithField("key", key).Warn("Feed cache rejected snapshot")
		return
	}
	// make the snapshot visible to the next Get
	c.cache.Wait()
}

func (c *RistrettoFeedCache) Close() { c.cache.Close() }
