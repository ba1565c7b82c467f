package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/ridehail/internal/observability"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	observability.Init()

	var pattern string
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/client-requests/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		pattern = RoutePattern(r)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/client-requests/42", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "/client-requests/{id}", pattern)
}

func TestRoutePatternWithoutRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plain", nil)
	assert.Equal(t, UnmatchedRoute, RoutePattern(req))
}

func TestMetricsUnknownPathsShareOneLabel(t *testing.T) {
	observability.Init()

	var patterns []string
	r := chi.NewRouter()
	r.Use(Metrics)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		patterns = append(patterns, RoutePattern(r))
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/drivers/status", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/wp-login.php", "/.env", "/random/123"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, []string{UnmatchedRoute, UnmatchedRoute, UnmatchedRoute}, patterns)
}

func TestStatusRecorder(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := NewStatusRecorder(rr)
	assert.Equal(t, http.StatusOK, rec.Status())

	rec.WriteHeader(http.StatusConflict)
	assert.Equal(t, http.StatusConflict, rec.Status())
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestPublicRateLimiter(t *testing.T) {
	handler := PublicRateLimiter(1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/user/login", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/user/login", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
