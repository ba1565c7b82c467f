package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "Valid", value: "42", want: 42},
		{name: "Zero", value: "0", wantErr: true},
		{name: "Negative", value: "-3", wantErr: true},
		{name: "Not a number", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.value)
			got, err := PathInt(req, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryFloat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/drivers/nearby?lat=-12.05&lng=abc", nil)

	lat, err := QueryFloat(req, "lat", 0)
	require.NoError(t, err)
	assert.Equal(t, -12.05, lat)

	maxKm, err := QueryFloat(req, "max_km", 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, maxKm)

	_, err = QueryFloat(req, "lng", 0)
	assert.Error(t, err)
}

func TestQueryFloatRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+Infinity", "1e400"} {
		t.Run(raw, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/drivers/nearby?max_km="+raw, nil)

			_, err := QueryFloat(req, "max_km", 5)
			assert.Error(t, err)
		})
	}
}
