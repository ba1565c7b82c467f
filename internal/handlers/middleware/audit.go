package middleware

import (
	"net/http"
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

type AuditRecorder interface {
	Record(entry domain.AuditLog)
}

// Audit records admin calls once the handler has written its response.
func Audit(recorder AuditRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := NewStatusRecorder(w)

			next.ServeHTTP(rw, r)

			adminID, _, _ := auth.CallerFrom(r.Context())
			recorder.Record(domain.AuditLog{
				AdminID:    adminID,
				Method:     r.Method,
				Path:       RoutePattern(r),
				Status:     rw.Status(),
				DurationMs: time.Since(start).Milliseconds(),
			})
		})
	}
}
