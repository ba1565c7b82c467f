package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/ridehail/internal/observability"
)

// Metrics records request durations labelled with the matched chi route.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := NewStatusRecorder(w)

		next.ServeHTTP(rw, r)

		observability.ObserveHTTP(r.Method, RoutePattern(r), rw.Status(), time.Since(start))
	})
}

// UnmatchedRoute labels requests no route matched.
const UnmatchedRoute = "unmatched"

// RoutePattern returns the chi pattern so ids and unknown paths do not
// explode label cardinality.
func RoutePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if pattern := rc.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return UnmatchedRoute
}

type StatusRecorder struct {
	http.ResponseWriter
	status int
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *StatusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *StatusRecorder) Status() int {
	return sr.status
}
