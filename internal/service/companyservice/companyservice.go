package companyservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

//go:generate mockgen -source=companyservice.go -destination=mock_companyservice.go -package=companyservice

type Poster interface {
	Post(ctx context.Context, p domain.Posting) (*domain.Transaction, error)
}

type CompanyRepo interface {
	Insert(ctx context.Context, entry *domain.CompanyAccount) (*domain.CompanyAccount, error)
	Summary(ctx context.Context) ([]domain.CashflowTotal, error)
}

var (
	driverShare     = decimal.RequireFromString("0.85")
	commissionShare = decimal.RequireFromString("0.10")
	savingsShare    = decimal.RequireFromString("0.01")
)

var ErrInvalidFare = fmt.Errorf("%w: fare must be positive", domain.ErrValidation)

// FareSplit is one fare broken down into the amounts posted on payment.
// Retained is what is left after the three postings and is not posted.
type FareSplit struct {
	Fare       float64
	Driver     float64
	Commission float64
	Savings    float64
	Retained   float64
}

// Split rounds every share half-up to cents. Rounding drift ends up in Retained.
func Split(fare float64) FareSplit {
	f := decimal.NewFromFloat(fare).Round(2)
	driver := f.Mul(driverShare).Round(2)
	commission := f.Mul(commissionShare).Round(2)
	savings := f.Mul(savingsShare).Round(2)
	retained := f.Sub(driver).Sub(commission).Sub(savings)
	return FareSplit{
		Fare:       f.InexactFloat64(),
		Driver:     driver.InexactFloat64(),
		Commission: commission.InexactFloat64(),
		Savings:    savings.InexactFloat64(),
		Retained:   retained.InexactFloat64(),
	}
}

type Service struct {
	ledger      Poster
	companyRepo CompanyRepo
}

func New(ledger Poster, companyRepo CompanyRepo) *Service {
	return &Service{
		ledger:      ledger,
		companyRepo: companyRepo,
	}
}

// Settle posts the payment of a finished trip. It must run inside the
// caller's transaction so a rejected client debit undoes nothing else.
func (s *Service) Settle(ctx context.Context, cr *domain.ClientRequest, fare float64) error {
	if fare <= 0 {
		return ErrInvalidFare
	}
	if cr.DriverAssignedID == nil {
		return fmt.Errorf("%w: request %d has no assigned driver", domain.ErrValidation, cr.ID)
	}
	split := Split(fare)
	requestID := cr.ID
	driverID := *cr.DriverAssignedID

	postings := []domain.Posting{
		{UserID: cr.ClientID, Expense: split.Fare, Type: domain.TxService, ClientRequestID: &requestID, Description: "trip payment"},
		{UserID: driverID, Income: split.Driver, Type: domain.TxIncome, ClientRequestID: &requestID, Description: "trip income"},
		{UserID: driverID, Income: split.Savings, Type: domain.TxSavings, ClientRequestID: &requestID, Description: "trip savings"},
	}
	for _, p := range postings {
		if p.Income == 0 && p.Expense == 0 {
			continue
		}
		if _, err := s.ledger.Post(ctx, p); err != nil {
			return err
		}
	}

	if split.Commission > 0 {
		if _, err := s.companyRepo.Insert(ctx, &domain.CompanyAccount{
			Income:          split.Commission,
			CashflowType:    domain.CashflowService,
			ClientRequestID: &requestID,
		}); err != nil {
			return err
		}
	}

	zap.L().Info("trip settled",
		zap.Int("request_id", cr.ID),
		zap.Float64("fare", split.Fare),
		zap.Float64("driver", split.Driver),
		zap.Float64("commission", split.Commission),
		zap.Float64("savings", split.Savings),
		zap.Float64("retained", split.Retained),
	)
	return nil
}

func (s *Service) Summary(ctx context.Context) ([]domain.CashflowTotal, error) {
	return s.companyRepo.Summary(ctx)
}
