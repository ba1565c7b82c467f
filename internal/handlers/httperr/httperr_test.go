package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Not found", err: fmt.Errorf("%w: client request", domain.ErrNotFound), want: http.StatusNotFound},
		{name: "Forbidden", err: fmt.Errorf("%w: not owner", domain.ErrForbidden), want: http.StatusForbidden},
		{name: "Validation", err: fmt.Errorf("%w: bad fare", domain.ErrValidation), want: http.StatusBadRequest},
		{name: "Conflict", err: fmt.Errorf("%w: taken", domain.ErrConflict), want: http.StatusConflict},
		{name: "Insufficient funds", err: fmt.Errorf("%w: need 10", domain.ErrInsufficientFunds), want: http.StatusPaymentRequired},
		{name: "Deadlock", err: fmt.Errorf("commit transaction: %w", &pgconn.PgError{Code: "40P01"}), want: http.StatusConflict},
		{name: "Unclassified", err: errors.New("database error"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/client-requests/1", nil)

	t.Run("Classified error keeps its message", func(t *testing.T) {
		w := httptest.NewRecorder()
		Respond(w, req, fmt.Errorf("%w: trip already rated", domain.ErrConflict))

		var body utils.Response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict: trip already rated", body.Error)
	})

	t.Run("Unclassified error is hidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		Respond(w, req, errors.New("connection reset"))

		var body utils.Response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body.Error)
	})

	t.Run("Deadlock answers conflict without driver text", func(t *testing.T) {
		w := httptest.NewRecorder()
		Respond(w, req, fmt.Errorf("commit transaction: %w", &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}))

		var body utils.Response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, lockConflictMessage, body.Error)
	})
}

func TestRespondPrecondition(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/drivers/pending-request/accept", nil)

	w := httptest.NewRecorder()
	RespondPrecondition(w, req, fmt.Errorf("%w: already reserved", domain.ErrConflict))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	RespondPrecondition(w, req, fmt.Errorf("%w: driver", domain.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	RespondPrecondition(w, req, &pgconn.PgError{Code: "40P01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	RespondPrecondition(w, req, errors.New("database error"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
