package companyservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockPoster, *MockCompanyRepo) {
	ctrl := gomock.NewController(t)
	poster := NewMockPoster(ctrl)
	companyRepo := NewMockCompanyRepo(ctrl)

	service := New(poster, companyRepo)
	defer ctrl.Finish()
	return service, poster, companyRepo
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		fare     float64
		expected FareSplit
	}{
		{
			name:     "Round fare",
			fare:     20000,
			expected: FareSplit{Fare: 20000, Driver: 17000, Commission: 2000, Savings: 200, Retained: 800},
		},
		{
			name:     "Cents rounded half up",
			fare:     123.45,
			expected: FareSplit{Fare: 123.45, Driver: 104.93, Commission: 12.35, Savings: 1.23, Retained: 4.94},
		},
		{
			name:     "Tiny fare",
			fare:     0.5,
			expected: FareSplit{Fare: 0.5, Driver: 0.43, Commission: 0.05, Savings: 0.01, Retained: 0.01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.fare))
		})
	}
}

func TestSettle(t *testing.T) {
	service, poster, companyRepo := NewMock(t)
	ctx := context.Background()
	driverID := 7
	request := &domain.ClientRequest{ID: 3, ClientID: 2, DriverAssignedID: &driverID}
	requestID := 3

	tests := []struct {
		name        string
		request     *domain.ClientRequest
		fare        float64
		prepareMock func()
		expectedErr error
	}{
		{
			name:    "Fare split across parties",
			request: request,
			fare:    20000,
			prepareMock: func() {
				gomock.InOrder(
					poster.EXPECT().Post(ctx, domain.Posting{UserID: 2, Expense: 20000, Type: domain.TxService, ClientRequestID: &requestID, Description: "trip payment"}).
						Return(&domain.Transaction{ID: 1}, nil),
					poster.EXPECT().Post(ctx, domain.Posting{UserID: 7, Income: 17000, Type: domain.TxIncome, ClientRequestID: &requestID, Description: "trip income"}).
						Return(&domain.Transaction{ID: 2}, nil),
					poster.EXPECT().Post(ctx, domain.Posting{UserID: 7, Income: 200, Type: domain.TxSavings, ClientRequestID: &requestID, Description: "trip savings"}).
						Return(&domain.Transaction{ID: 3}, nil),
					companyRepo.EXPECT().Insert(ctx, &domain.CompanyAccount{Income: 2000, CashflowType: domain.CashflowService, ClientRequestID: &requestID}).
						Return(&domain.CompanyAccount{ID: 1}, nil),
				)
			},
		},
		{
			name:    "Client cannot pay",
			request: request,
			fare:    20000,
			prepareMock: func() {
				poster.EXPECT().Post(ctx, gomock.Any()).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name:    "Commission insert fails",
			request: request,
			fare:    100,
			prepareMock: func() {
				poster.EXPECT().Post(ctx, gomock.Any()).Return(&domain.Transaction{}, nil).Times(3)
				companyRepo.EXPECT().Insert(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		{
			name:        "Zero fare",
			request:     request,
			fare:        0,
			prepareMock: func() {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "No driver assigned",
			request:     &domain.ClientRequest{ID: 3, ClientID: 2},
			fare:        100,
			prepareMock: func() {},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Settle(ctx, tt.request, tt.fare)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if errors.Is(tt.expectedErr, domain.ErrValidation) || errors.Is(tt.expectedErr, domain.ErrInsufficientFunds) {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			}
		})
	}
}

func TestSummary(t *testing.T) {
	service, _, companyRepo := NewMock(t)
	ctx := context.Background()

	totals := []domain.CashflowTotal{
		{CashflowType: domain.CashflowService, Income: 2000},
		{CashflowType: domain.CashflowWithdraws, Expense: 500},
	}
	companyRepo.EXPECT().Summary(ctx).Return(totals, nil)

	got, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, totals, got)
}
