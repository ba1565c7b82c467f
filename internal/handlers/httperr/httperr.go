// Package httperr maps domain error kinds onto HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict), pg.IsLockConflict(err):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

const lockConflictMessage = "Concurrent update, try again"

// Respond writes err with its mapped status. Unclassified errors are logged
// and hidden behind a generic message.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, message(r, err))
}

// RespondPrecondition collapses every classified failure into 400.
func RespondPrecondition(w http.ResponseWriter, r *http.Request, err error) {
	if Status(err) == http.StatusInternalServerError {
		Respond(w, r, err)
		return
	}
	utils.RespondWithError(w, http.StatusBadRequest, message(r, err))
}

// message keeps driver error text out of responses.
func message(r *http.Request, err error) string {
	if pg.IsLockConflict(err) {
		zap.L().Info("transaction aborted by a concurrent one", zap.String("path", r.URL.Path), zap.Error(err))
		return lockConflictMessage
	}
	return err.Error()
}
