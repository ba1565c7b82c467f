// Package routing estimates travel time and distance between two points.
package routing

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/observability"
)

type Estimator interface {
	Estimate(ctx context.Context, from, to domain.Point) (*domain.RouteEstimate, error)
}

var ErrNoRoute = errors.New("no route between points")

// GoogleEstimator asks the Distance Matrix API for a single origin and destination.
type GoogleEstimator struct {
	client *maps.Client
}

func NewGoogleEstimator(apiKey string, opts ...maps.ClientOption) (*GoogleEstimator, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}
	return &GoogleEstimator{client: client}, nil
}

func (g *GoogleEstimator) Estimate(ctx context.Context, from, to domain.Point) (*domain.RouteEstimate, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{latLng(from)},
		Destinations: []string{latLng(to)},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}
	resp, err := g.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("distance matrix request failed: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, ErrNoRoute
	}
	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, element.Status)
	}
	return &domain.RouteEstimate{
		DurationMin: element.Duration.Minutes(),
		DistanceKm:  float64(element.Distance.Meters) / 1000,
	}, nil
}

func latLng(p domain.Point) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

// Disabled answers every lookup with zeros when no API key is configured.
type Disabled struct{}

func (Disabled) Estimate(context.Context, domain.Point, domain.Point) (*domain.RouteEstimate, error) {
	observability.IncrementRouteLookup("disabled")
	return &domain.RouteEstimate{}, nil
}

// Cached serves repeated lookups from the cache and stores fresh answers.
type Cached struct {
	next  Estimator
	cache *RedisCache
}

func NewCached(next Estimator, cache *RedisCache) *Cached {
	return &Cached{next: next, cache: cache}
}

func (c *Cached) Estimate(ctx context.Context, from, to domain.Point) (*domain.RouteEstimate, error) {
	est, err := c.cache.Get(ctx, from, to)
	if err != nil {
		zap.L().Warn("route cache lookup failed", zap.Error(err))
	}
	if est != nil {
		observability.IncrementRouteLookup("cache")
		return est, nil
	}

	est, err = c.next.Estimate(ctx, from, to)
	if err != nil {
		observability.IncrementRouteLookup("error")
		return nil, err
	}
	observability.IncrementRouteLookup("api")
	if err := c.cache.Set(ctx, from, to, est); err != nil {
		zap.L().Warn("route cache store failed", zap.Error(err))
	}
	return est, nil
}
