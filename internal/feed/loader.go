package feed

import (
	"context"
	"fmt"
	"time"

	"fxswap/internal/adapters"
	"fxswap/internal/domain"
	"fxswap/internal/price"

	"github.com/sirupsen/logrus"
)

// Loader turns the configured feed source into a price index, going through the snapshot cache.
type Loader struct {
	source adapters.FeedSource
	cache  adapters.FeedCache
	ttl    time.Duration
}

// Load returns the latest-price index of the feed.
// Fetch failures are reported as domain.ErrFeedUnavailable.
func (l *Loader) Load(ctx context.Context) (*price.Index, error) {
	key := l.source.Name()
	if obs, ok := l.cache.Get(ctx, key); ok {
		logrus.WithFields(logrus.Fields{"source": key, "observations": len(obs)}).Debug("Price feed served from cache")
		return price.Normalize(obs), nil
	}

	began := time.Now()
	obs, err := l.source.FetchObservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFeedUnavailable, err)
	}
	if obs == nil {
		obs = []domain.PriceObservation{}
	}
	l.cache.Set(ctx, key, obs, l.ttl)

	logrus.WithFields(logrus.Fields{
		"source":       key,
		"observations": len(obs),
		"took":         time.Since(began),
	}).Info("Price feed fetched")
	return price.Normalize(obs), nil
}

func NewLoader(source adapters.FeedSource, cache adapters.FeedCache, ttl time.Duration) *Loader {
	return &Loader{source: source, cache: cache, ttl: ttl}
}
