package ledger

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/dto"
	"github.com/GlebRadaev/ridehail/internal/handlers/httperr"
	"github.com/GlebRadaev/ridehail/pkg/auth"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	ListTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	Recharge(ctx context.Context, userID int, amount float64) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int, amount float64, cardNumber string) (*domain.Transaction, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

func userID(r *http.Request) int {
	id, _, _ := auth.CallerFrom(r.Context())
	return id
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Available counts every confirmed posting, withdrawable excludes bonus and referral credit, mount is the stored running balance.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/transactions/balance/me [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledgerService.GetBalance(r.Context(), userID(r))
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Available:    balance.Available,
		Withdrawable: balance.Withdrawable,
		Mount:        balance.Mount,
	})
}

// ListTransactions godoc
//
//	@Summary	List the caller's transactions, newest first
//	@Tags		Transactions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionDTO
//	@Failure	401	{object}	utils.Response
//	@Router		/transactions/list/me [get]
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	list, err := h.ledgerService.ListTransactions(r.Context(), userID(r))
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTOs(list))
}

// Recharge godoc
//
//	@Summary		Request a balance recharge
//	@Description	Creates an unconfirmed RECHARGE that an admin must approve before it counts.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RechargeRequestDTO	true	"Amount"
//	@Success		201		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response
//	@Router			/transactions/recharge [post]
func (h *LedgerHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	var req dto.RechargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tx, err := h.ledgerService.Recharge(r.Context(), userID(r), req.Amount)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionDTO(tx))
}

// Withdraw godoc
//
//	@Summary	Withdraw to a card
//	@Tags		Transactions
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success	200		{object}	dto.TransactionDTO
//	@Failure	400		{object}	utils.Response	"Invalid amount or card number"
//	@Failure	402		{object}	utils.Response	"Insufficient balance"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/transactions/withdraw [post]
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tx, err := h.ledgerService.Withdraw(r.Context(), userID(r), req.Amount, req.CardNumber)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTO(tx))
}
