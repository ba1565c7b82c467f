package dto

import (
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

type TransactionIDDTO struct {
	TransactionID int `json:"transaction_id" example:"42"`
}

type GrantRequestDTO struct {
	UserID      int     `json:"user_id" example:"3"`
	Type        string  `json:"type" example:"BONUS" enums:"BONUS,REFERRAL_1,REFERRAL_2,REFERRAL_3,REFERRAL_4,REFERRAL_5"`
	Amount      float64 `json:"amount" example:"10"`
	Description string  `json:"description" example:"welcome bonus"`
}

type CashflowTotalDTO struct {
	CashflowType string  `json:"cashflow_type" example:"SERVICE"`
	Income       float64 `json:"income" example:"250"`
	Expense      float64 `json:"expense" example:"0"`
}

func NewCashflowTotalDTOs(list []domain.CashflowTotal) []CashflowTotalDTO {
	out := make([]CashflowTotalDTO, 0, len(list))
	for _, c := range list {
		out = append(out, CashflowTotalDTO(c))
	}
	return out
}

type AuditLogDTO struct {
	ID         string    `json:"id"`
	AdminID    int       `json:"admin_id"`
	Method     string    `json:"method" example:"POST"`
	Path       string    `json:"path" example:"/admin/drivers/{id}/approve"`
	Status     int       `json:"status" example:"200"`
	DurationMs int64     `json:"duration_ms" example:"4"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAuditLogDTOs(list []domain.AuditLog) []AuditLogDTO {
	out := make([]AuditLogDTO, 0, len(list))
	for _, l := range list {
		out = append(out, AuditLogDTO(l))
	}
	return out
}
