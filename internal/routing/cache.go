package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

const redisKeyPrefix = "route"

type RedisCache struct {
	redis redis.Cmdable
	ttl   time.Duration
}

func NewRedisCache(redis redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: redis, ttl: ttl}
}

type cacheEnvelope struct {
	DurationMin float64 `json:"duration_min"`
	DistanceKm  float64 `json:"distance_km"`
}

// Get returns nil without an error on a miss.
func (c *RedisCache) Get(ctx context.Context, from, to domain.Point) (*domain.RouteEstimate, error) {
	val, err := c.redis.Get(ctx, redisKey(from, to)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var env cacheEnvelope
	if err := json.Unmarshal([]byte(val), &env); err != nil {
		return nil, err
	}
	return &domain.RouteEstimate{DurationMin: env.DurationMin, DistanceKm: env.DistanceKm}, nil
}

func (c *RedisCache) Set(ctx context.Context, from, to domain.Point, est *domain.RouteEstimate) error {
	payload, err := json.Marshal(cacheEnvelope{DurationMin: est.DurationMin, DistanceKm: est.DistanceKm})
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, redisKey(from, to), payload, c.ttl).Err()
}

// redisKey rounds to about a metre so jitter in reported positions still hits.
func redisKey(from, to domain.Point) string {
	return fmt.Sprintf("%s:%.5f,%.5f:%.5f,%.5f", redisKeyPrefix, from.Lat, from.Lng, to.Lat, to.Lng)
}
