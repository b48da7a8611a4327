package adapters

import (
	"context"
	"time"

	"fxswap/internal/domain"
)

// FeedSource delivers the raw list of price observations.
type FeedSource interface {
	FetchObservations(ctx context.Context) ([]domain.PriceObservation, error)
	// Name identifies the source, it is also the cache key of its snapshot.
	Name() string
}

// FeedCache keeps recently fetched feed snapshots.
type FeedCache interface {
	Get(ctx context.Context, key string) ([]domain.PriceObservation, bool)
	Set(ctx context.Context, key string, observations []domain.PriceObservation, ttl time.Duration)
}
