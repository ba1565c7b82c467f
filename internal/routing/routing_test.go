package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

var (
	pickup = domain.Point{Lat: 4.65, Lng: -74.05}
	driver = domain.Point{Lat: 4.66, Lng: -74.06}
)

func newGoogle(t *testing.T, body string, hits *int) *GoogleEstimator {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		assert.Equal(t, "/maps/api/distancematrix/json", r.URL.Path)
		assert.Equal(t, "4.660000,-74.060000", r.URL.Query().Get("origins"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	estimator, err := NewGoogleEstimator("test-key", maps.WithBaseURL(server.URL))
	require.NoError(t, err)
	return estimator
}

const okBody = `{
	"status": "OK",
	"origin_addresses": ["a"],
	"destination_addresses": ["b"],
	"rows": [{"elements": [{"status": "OK", "duration": {"value": 540, "text": "9 mins"}, "distance": {"value": 4200, "text": "4.2 km"}}]}]
}`

func TestGoogleEstimator(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expected    *domain.RouteEstimate
		expectedErr bool
	}{
		{
			name:     "Route found",
			body:     okBody,
			expected: &domain.RouteEstimate{DurationMin: 9, DistanceKm: 4.2},
		},
		{
			name: "No route",
			body: `{"status": "OK", "origin_addresses": [], "destination_addresses": [],
				"rows": [{"elements": [{"status": "ZERO_RESULTS"}]}]}`,
			expectedErr: true,
		},
		{
			name:        "Request denied",
			body:        `{"status": "REQUEST_DENIED", "error_message": "bad key", "rows": []}`,
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int
			estimator := newGoogle(t, tt.body, &hits)

			est, err := estimator.Estimate(context.Background(), driver, pickup)
			assert.Equal(t, 1, hits)
			if tt.expectedErr {
				assert.Error(t, err)
				assert.Nil(t, est)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, est)
		})
	}
}

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisCache(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	est, err := cache.Get(ctx, driver, pickup)
	require.NoError(t, err)
	assert.Nil(t, est)

	require.NoError(t, cache.Set(ctx, driver, pickup, &domain.RouteEstimate{DurationMin: 9, DistanceKm: 4.2}))
	assert.True(t, mr.Exists("route:4.66000,-74.06000:4.65000,-74.05000"))

	est, err = cache.Get(ctx, driver, pickup)
	require.NoError(t, err)
	assert.Equal(t, &domain.RouteEstimate{DurationMin: 9, DistanceKm: 4.2}, est)

	mr.FastForward(2 * time.Minute)
	est, err = cache.Get(ctx, driver, pickup)
	require.NoError(t, err)
	assert.Nil(t, est)
}

type failing struct{ calls int }

func (f *failing) Estimate(context.Context, domain.Point, domain.Point) (*domain.RouteEstimate, error) {
	f.calls++
	return nil, errors.New("upstream unavailable")
}

func TestCached(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	t.Run("Second lookup served from cache", func(t *testing.T) {
		var hits int
		cached := NewCached(newGoogle(t, okBody, &hits), NewRedisCache(client, time.Minute))

		first, err := cached.Estimate(ctx, driver, pickup)
		require.NoError(t, err)
		second, err := cached.Estimate(ctx, driver, pickup)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, hits)
	})

	t.Run("Upstream failure is returned and not cached", func(t *testing.T) {
		next := &failing{}
		cached := NewCached(next, NewRedisCache(client, time.Minute))
		other := domain.Point{Lat: 1, Lng: 1}

		_, err := cached.Estimate(ctx, other, pickup)
		assert.Error(t, err)
		_, err = cached.Estimate(ctx, other, pickup)
		assert.Error(t, err)
		assert.Equal(t, 2, next.calls)
	})

	t.Run("Cache outage falls through to upstream", func(t *testing.T) {
		broken := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		t.Cleanup(func() { _ = broken.Close() })
		var hits int
		cached := NewCached(newGoogle(t, okBody, &hits), NewRedisCache(broken, time.Minute))

		est, err := cached.Estimate(ctx, driver, pickup)
		require.NoError(t, err)
		assert.Equal(t, 9.0, est.DurationMin)
		assert.Equal(t, 1, hits)
	})
}

func TestDisabled(t *testing.T) {
	est, err := Disabled{}.Estimate(context.Background(), driver, pickup)
	require.NoError(t, err)
	assert.Equal(t, &domain.RouteEstimate{}, est)
}
