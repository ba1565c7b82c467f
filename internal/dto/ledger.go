package dto

import (
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

type BalanceResponseDTO struct {
	Available    float64 `json:"available" example:"120.5"`
	Withdrawable float64 `json:"withdrawable" example:"80"`
	Mount        float64 `json:"mount" example:"120.5"`
}

type TransactionDTO struct {
	ID              int       `json:"id" example:"42"`
	Income          float64   `json:"income" example:"100"`
	Expense         float64   `json:"expense" example:"0"`
	Type            string    `json:"type" example:"RECHARGE"`
	ClientRequestID *int      `json:"client_request_id"`
	IsConfirmed     bool      `json:"is_confirmed"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date" example:"2024-05-01T12:00:00Z"`
}

func NewTransactionDTO(tx *domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:              tx.ID,
		Income:          tx.Income,
		Expense:         tx.Expense,
		Type:            tx.Type,
		ClientRequestID: tx.ClientRequestID,
		IsConfirmed:     tx.IsConfirmed,
		Description:     tx.Description,
		Date:            tx.Date,
	}
}

func NewTransactionDTOs(list []domain.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(list))
	for i := range list {
		out = append(out, NewTransactionDTO(&list[i]))
	}
	return out
}

type RechargeRequestDTO struct {
	Amount float64 `json:"amount" example:"100"`
}

type WithdrawRequestDTO struct {
	Amount     float64 `json:"amount" example:"50"`
	CardNumber string  `json:"card_number" example:"4111111111111111"`
}
