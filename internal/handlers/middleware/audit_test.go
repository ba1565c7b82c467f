package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

type captureRecorder struct {
	entries []domain.AuditLog
}

func (c *captureRecorder) Record(entry domain.AuditLog) {
	c.entries = append(c.entries, entry)
}

func TestAudit(t *testing.T) {
	recorder := &captureRecorder{}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithCaller(r.Context(), 7, domain.RoleAdmin)))
		})
	})
	r.Use(Audit(recorder))
	r.Post("/admin/drivers/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/drivers/12/approve", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, 7, entry.AdminID)
	assert.Equal(t, http.MethodPost, entry.Method)
	assert.Equal(t, "/admin/drivers/{id}/approve", entry.Path)
	assert.Equal(t, http.StatusNotFound, entry.Status)
	assert.GreaterOrEqual(t, entry.DurationMs, int64(0))
}

func TestAuditWithoutCaller(t *testing.T) {
	recorder := &captureRecorder{}
	handler := Audit(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/audit-logs", nil))

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, 0, recorder.entries[0].AdminID)
	assert.Equal(t, http.StatusOK, recorder.entries[0].Status)
	assert.Equal(t, "/admin/audit-logs", recorder.entries[0].Path)
}
