package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fxswap/internal/domain"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const redisKeyPrefix = "fxswap:feed:"

// RedisFeedCache shares feed snapshots between service instances.
// Redis failures degrade to cache misses.
type RedisFeedCache struct {
	client *redis.Client
}

func NewRedisFeedCache(ctx context.Context, addr, password string, db int) (*RedisFeedCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return &RedisFeedCache{client: client}, nil
}

func (c *RedisFeedCache) Get(ctx context.Context, key string) ([]domain.PriceObservation, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).WithField("key", key).Warn("Feed cache read failed")
		}
		return nil, false
	}

	var obs []domain.PriceObservation
	if err = json.Unmarshal(raw, &obs); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Feed cache entry is corrupted")
		return nil, false
	}
	return obs, true
}

func (c *RedisFeedCache) Set(ctx context.Context, key string, observations []domain.PriceObservation, ttl time.Duration) {
	payload, err := json.Marshal(observations)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Failed to encode feed snapshot")
		return
	}
	if err = c.client.Set(ctx, redisKeyPrefix+key, payload, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Feed cache write failed")
	}
}

func (c *RedisFeedCache) Close() error { return c.client.Close() }
