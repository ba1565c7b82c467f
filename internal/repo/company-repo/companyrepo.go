package companyrepo

import (
	"context"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, entry *domain.CompanyAccount) (*domain.CompanyAccount, error) {
	query := `
		INSERT INTO company_accounts (income, expense, cashflow_type, id_client_request)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date
	`
	err := r.db.QueryRow(ctx, query, entry.Income, entry.Expense, entry.CashflowType, entry.ClientRequestID).
		Scan(&entry.ID, &entry.Date)
	if err != nil {
		zap.L().Error("failed to insert company account entry", zap.String("cashflow_type", entry.CashflowType), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// Summary totals company cash flow per cashflow type.
func (r *Repository) Summary(ctx context.Context) ([]domain.CashflowTotal, error) {
	query := `
		SELECT cashflow_type, COALESCE(SUM(income), 0)::float8, COALESCE(SUM(expense), 0)::float8
		FROM company_accounts
		GROUP BY cashflow_type
		ORDER BY cashflow_type
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to summarise company accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	totals := make([]domain.CashflowTotal, 0)
	for rows.Next() {
		var t domain.CashflowTotal
		if err := rows.Scan(&t.CashflowType, &t.Income, &t.Expense); err != nil {
			zap.L().Error("failed to scan company total", zap.Error(err))
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate company totals", zap.Error(err))
		return nil, err
	}
	return totals, nil
}
