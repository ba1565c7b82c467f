package companyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	stamp := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	requestID := 10
	query := regexp.QuoteMeta(`
		INSERT INTO company_accounts (income, expense, cashflow_type, id_client_request)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date`)

	mock.ExpectQuery(query).
		WithArgs(2000.0, 0.0, domain.CashflowService, &requestID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "date"}).AddRow(1, stamp))
	entry, err := repo.Insert(context.Background(), &domain.CompanyAccount{
		Income: 2000, CashflowType: domain.CashflowService, ClientRequestID: &requestID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, stamp, entry.Date)

	var none *int
	mock.ExpectQuery(query).
		WithArgs(0.0, 50.0, domain.CashflowWithdraws, none).
		WillReturnError(errors.New("database error"))
	_, err = repo.Insert(context.Background(), &domain.CompanyAccount{Expense: 50, CashflowType: domain.CashflowWithdraws})
	assert.Error(t, err)
}

func TestRepository_Summary(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM company_accounts
		GROUP BY cashflow_type`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.CashflowTotal
	}{
		{
			name: "Totals per type",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"cashflow_type", "income", "expense"}).
					AddRow(domain.CashflowAdditional, 500.0, 0.0).
					AddRow(domain.CashflowService, 2000.0, 0.0).
					AddRow(domain.CashflowWithdraws, 0.0, 300.0))
			},
			result: []domain.CashflowTotal{
				{CashflowType: domain.CashflowAdditional, Income: 500},
				{CashflowType: domain.CashflowService, Income: 2000},
				{CashflowType: domain.CashflowWithdraws, Expense: 300},
			},
		},
		{
			name: "Empty ledger",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"cashflow_type", "income", "expense"}))
			},
			result: []domain.CashflowTotal{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Summary(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}
