package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/dto"
	"github.com/GlebRadaev/ridehail/internal/handlers/httperr"
	"github.com/GlebRadaev/ridehail/pkg/auth"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type DriverService interface {
	Approve(ctx context.Context, driverID int) error
	Suspend(ctx context.Context, driverID int) error
}

type LedgerService interface {
	ApproveRecharge(ctx context.Context, txID int) (*domain.Transaction, error)
	RejectRecharge(ctx context.Context, txID int) error
	Grant(ctx context.Context, userID int, txType string, amount float64, description string) (*domain.Transaction, error)
}

type CompanyService interface {
	Summary(ctx context.Context) ([]domain.CashflowTotal, error)
}

type AuditService interface {
	List(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type AdminHandler struct {
	drivers DriverService
	ledger  LedgerService
	company CompanyService
	audit   AuditService
}

func New(drivers DriverService, ledger LedgerService, company CompanyService, audit AuditService) *AdminHandler {
	return &AdminHandler{
		drivers: drivers,
		ledger:  ledger,
		company: company,
		audit:   audit,
	}
}

func adminID(r *http.Request) int {
	id, _, _ := auth.CallerFrom(r.Context())
	return id
}

// ApproveDriver godoc
//
//	@Summary	Approve and verify a driver
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Driver user id"
//	@Success	200	{object}	dto.MessageDTO
//	@Failure	403	{object}	utils.Response
//	@Failure	404	{object}	utils.Response
//	@Router		/admin/drivers/{id}/approve [post]
func (h *AdminHandler) ApproveDriver(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.drivers.Approve(r.Context(), id); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	zap.L().Info("driver approved", zap.Int("admin_id", adminID(r)), zap.Int("driver_id", id))
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageDTO{Message: "Driver approved"})
}

// SuspendDriver godoc
//
//	@Summary	Suspend a driver
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Driver user id"
//	@Success	200	{object}	dto.MessageDTO
//	@Failure	404	{object}	utils.Response
//	@Router		/admin/drivers/{id}/suspend [post]
func (h *AdminHandler) SuspendDriver(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.drivers.Suspend(r.Context(), id); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	zap.L().Info("driver suspended", zap.Int("admin_id", adminID(r)), zap.Int("driver_id", id))
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageDTO{Message: "Driver suspended"})
}

// ApproveRecharge godoc
//
//	@Summary	Confirm a pending recharge
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.TransactionIDDTO	true	"Recharge to confirm"
//	@Success	200		{object}	dto.TransactionDTO
//	@Failure	404		{object}	utils.Response
//	@Failure	409		{object}	utils.Response	"Already confirmed"
//	@Router		/admin/transactions/approve [post]
func (h *AdminHandler) ApproveRecharge(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionIDDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := h.ledger.ApproveRecharge(r.Context(), req.TransactionID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTO(tx))
}

// RejectRecharge godoc
//
//	@Summary	Discard a pending recharge
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.TransactionIDDTO	true	"Recharge to reject"
//	@Success	200		{object}	dto.MessageDTO
//	@Failure	404		{object}	utils.Response
//	@Failure	409		{object}	utils.Response
//	@Router		/admin/transactions/reject [post]
func (h *AdminHandler) RejectRecharge(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionIDDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.ledger.RejectRecharge(r.Context(), req.TransactionID); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageDTO{Message: "Recharge rejected"})
}

// Grant godoc
//
//	@Summary	Credit a bonus or referral payout
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.GrantRequestDTO	true	"Credit"
//	@Success	201		{object}	dto.TransactionDTO
//	@Failure	400		{object}	utils.Response
//	@Router		/admin/transactions/grant [post]
func (h *AdminHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := h.ledger.Grant(r.Context(), req.UserID, req.Type, req.Amount, req.Description)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionDTO(tx))
}

// CompanySummary godoc
//
//	@Summary	Company cashflow totals per type
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.CashflowTotalDTO
//	@Router		/admin/company/summary [get]
func (h *AdminHandler) CompanySummary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.company.Summary(r.Context())
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCashflowTotalDTOs(totals))
}

// AuditLogs godoc
//
//	@Summary	Recent admin actions
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Max entries, default 100"
//	@Success	200		{array}		dto.AuditLogDTO
//	@Failure	400		{object}	utils.Response
//	@Router		/admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = v
	}
	logs, err := h.audit.List(r.Context(), limit)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAuditLogDTOs(logs))
}
