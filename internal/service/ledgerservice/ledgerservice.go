package ledgerservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/observability"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/pkg/validate"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type LedgerRepo interface {
	EnsureMount(ctx context.Context, userID int) error
	LockMount(ctx context.Context, userID int) (float64, error)
	AdjustMount(ctx context.Context, userID int, delta float64) (float64, error)
	GetMount(ctx context.Context, userID int) (float64, error)
	Insert(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	LockByID(ctx context.Context, id int) (*domain.Transaction, error)
	Confirm(ctx context.Context, id int) (bool, error)
	DeleteUnconfirmed(ctx context.Context, id int) (bool, error)
	Totals(ctx context.Context, userID int) (*domain.LedgerTotals, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type CompanyRepo interface {
	Insert(ctx context.Context, entry *domain.CompanyAccount) (*domain.CompanyAccount, error)
}

type Service struct {
	ledgerRepo  LedgerRepo
	companyRepo CompanyRepo
	txManager   pg.TXManager
}

func New(ledgerRepo LedgerRepo, companyRepo CompanyRepo, txManager pg.TXManager) *Service {
	return &Service{
		ledgerRepo:  ledgerRepo,
		companyRepo: companyRepo,
		txManager:   txManager,
	}
}

var (
	ErrUnknownType         = fmt.Errorf("%w: unknown transaction type", domain.ErrValidation)
	ErrWrongShape          = fmt.Errorf("%w: amounts do not match the transaction type", domain.ErrValidation)
	ErrNotPositive         = fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be in whole cents and below the account limit", domain.ErrValidation)
	ErrNotGrantable        = fmt.Errorf("%w: type cannot be granted", domain.ErrValidation)
	ErrNotRecharge         = fmt.Errorf("%w: transaction is not a recharge", domain.ErrValidation)
	ErrInvalidCard         = fmt.Errorf("%w: invalid card number", domain.ErrValidation)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", domain.ErrNotFound)
	ErrAlreadyConfirmed    = fmt.Errorf("%w: transaction already confirmed", domain.ErrConflict)
	ErrInsufficientBalance = fmt.Errorf("%w: balance is lower than the expense", domain.ErrInsufficientFunds)
)

func validatePosting(p domain.Posting) error {
	shape, ok := domain.ShapeOf(p.Type)
	if !ok {
		return ErrUnknownType
	}
	if p.Income < 0 || p.Expense < 0 {
		return ErrWrongShape
	}
	switch shape {
	case domain.ShapeIncome:
		if p.Income <= 0 || p.Expense != 0 {
			return ErrWrongShape
		}
		return checkAmount(p.Income)
	case domain.ShapeExpense:
		if p.Expense <= 0 || p.Income != 0 {
			return ErrWrongShape
		}
		return checkAmount(p.Expense)
	}
	return nil
}

func checkAmount(amount float64) error {
	if amount <= 0 {
		return ErrNotPositive
	}
	if !domain.ValidAmount(amount) {
		return ErrInvalidAmount
	}
	return nil
}

// Open creates the zero balance row a new user starts with.
func (s *Service) Open(ctx context.Context, userID int) error {
	return s.ledgerRepo.EnsureMount(ctx, userID)
}

// Post appends a confirmed entry and moves the running balance in one
// transaction. Joined to an outer transaction when ctx carries one.
func (s *Service) Post(ctx context.Context, p domain.Posting) (*domain.Transaction, error) {
	if err := validatePosting(p); err != nil {
		return nil, err
	}

	var posted *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		mount, err := s.lockMount(ctx, p.UserID)
		if err != nil {
			return err
		}
		if decimal.NewFromFloat(p.Expense).GreaterThan(decimal.NewFromFloat(mount)) {
			zap.L().Info("posting rejected, insufficient funds",
				zap.Int("user_id", p.UserID), zap.String("type", p.Type), zap.Float64("expense", p.Expense))
			return ErrInsufficientBalance
		}
		posted, err = s.apply(ctx, p)
		return err
	})
	if err != nil {
		observability.IncrementLedgerPosting(p.Type, "rejected")
		return nil, err
	}
	observability.IncrementLedgerPosting(p.Type, "ok")
	return posted, nil
}

func (s *Service) lockMount(ctx context.Context, userID int) (float64, error) {
	if err := s.ledgerRepo.EnsureMount(ctx, userID); err != nil {
		return 0, err
	}
	return s.ledgerRepo.LockMount(ctx, userID)
}

// apply runs with the user's balance row already locked.
func (s *Service) apply(ctx context.Context, p domain.Posting) (*domain.Transaction, error) {
	tx, err := s.ledgerRepo.Insert(ctx, &domain.Transaction{
		UserID:          p.UserID,
		Income:          p.Income,
		Expense:         p.Expense,
		Type:            p.Type,
		ClientRequestID: p.ClientRequestID,
		IsConfirmed:     true,
		Description:     p.Description,
	})
	if err != nil {
		return nil, err
	}
	delta := decimal.NewFromFloat(p.Income).Sub(decimal.NewFromFloat(p.Expense)).InexactFloat64()
	if _, err := s.ledgerRepo.AdjustMount(ctx, p.UserID, delta); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetBalance derives available and withdrawable amounts from confirmed
// postings. Bonus credits count toward available but cannot be cashed out.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	totals, err := s.ledgerRepo.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}
	mount, err := s.ledgerRepo.GetMount(ctx, userID)
	if err != nil {
		return nil, err
	}
	available, withdrawable := balances(totals)
	return &domain.Balance{
		Available:    available,
		Withdrawable: withdrawable,
		Mount:        mount,
	}, nil
}

func balances(t *domain.LedgerTotals) (available, withdrawable float64) {
	income := decimal.NewFromFloat(t.Income)
	expense := decimal.NewFromFloat(t.Expense)
	bonus := decimal.NewFromFloat(t.BonusIncome)

	avail := income.Sub(expense)
	if bonus.IsZero() {
		return avail.InexactFloat64(), avail.InexactFloat64()
	}
	w := income.Sub(bonus).Sub(expense)
	if w.IsNegative() {
		w = decimal.Zero
	}
	return avail.InexactFloat64(), w.InexactFloat64()
}

func (s *Service) ListTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	return s.ledgerRepo.ListByUser(ctx, userID)
}

// Recharge records an unconfirmed top-up. The balance moves on approval.
func (s *Service) Recharge(ctx context.Context, userID int, amount float64) (*domain.Transaction, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	tx, err := s.ledgerRepo.Insert(ctx, &domain.Transaction{
		UserID:      userID,
		Income:      amount,
		Type:        domain.TxRecharge,
		Description: "recharge request",
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("recharge requested", zap.Int("user_id", userID), zap.Int("tx_id", tx.ID), zap.Float64("amount", amount))
	return tx, nil
}

func (s *Service) ApproveRecharge(ctx context.Context, txID int) (*domain.Transaction, error) {
	var approved *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.lockRecharge(ctx, txID)
		if err != nil {
			return err
		}
		ok, err := s.ledgerRepo.Confirm(ctx, txID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyConfirmed
		}
		if _, err := s.lockMount(ctx, tx.UserID); err != nil {
			return err
		}
		if _, err := s.ledgerRepo.AdjustMount(ctx, tx.UserID, tx.Income); err != nil {
			return err
		}
		if _, err := s.companyRepo.Insert(ctx, &domain.CompanyAccount{
			Income:       tx.Income,
			CashflowType: domain.CashflowAdditional,
		}); err != nil {
			return err
		}
		tx.IsConfirmed = true
		approved = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	observability.IncrementLedgerPosting(domain.TxRecharge, "ok")
	zap.L().Info("recharge approved", zap.Int("tx_id", txID), zap.Int("user_id", approved.UserID))
	return approved, nil
}

func (s *Service) RejectRecharge(ctx context.Context, txID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockRecharge(ctx, txID); err != nil {
			return err
		}
		ok, err := s.ledgerRepo.DeleteUnconfirmed(ctx, txID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyConfirmed
		}
		zap.L().Info("recharge rejected", zap.Int("tx_id", txID))
		return nil
	})
}

func (s *Service) lockRecharge(ctx context.Context, txID int) (*domain.Transaction, error) {
	tx, err := s.ledgerRepo.LockByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	if tx.Type != domain.TxRecharge {
		return nil, ErrNotRecharge
	}
	if tx.IsConfirmed {
		return nil, ErrAlreadyConfirmed
	}
	return tx, nil
}

// Withdraw pays out to a card. The amount is bounded by the withdrawable
// balance and by the running balance.
func (s *Service) Withdraw(ctx context.Context, userID int, amount float64, cardNumber string) (*domain.Transaction, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	if !validate.IsCardNumber(cardNumber) {
		return nil, ErrInvalidCard
	}

	var posted *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		mount, err := s.lockMount(ctx, userID)
		if err != nil {
			return err
		}
		totals, err := s.ledgerRepo.Totals(ctx, userID)
		if err != nil {
			return err
		}
		_, withdrawable := balances(totals)
		want := decimal.NewFromFloat(amount)
		if want.GreaterThan(decimal.NewFromFloat(withdrawable)) || want.GreaterThan(decimal.NewFromFloat(mount)) {
			zap.L().Info("withdrawal rejected, insufficient funds", zap.Int("user_id", userID), zap.Float64("amount", amount))
			return ErrInsufficientBalance
		}
		posted, err = s.apply(ctx, domain.Posting{
			UserID:      userID,
			Expense:     amount,
			Type:        domain.TxWithdrawal,
			Description: "withdrawal to card " + maskCard(cardNumber),
		})
		if err != nil {
			return err
		}
		_, err = s.companyRepo.Insert(ctx, &domain.CompanyAccount{
			Expense:      amount,
			CashflowType: domain.CashflowWithdraws,
		})
		return err
	})
	if err != nil {
		observability.IncrementLedgerPosting(domain.TxWithdrawal, "rejected")
		return nil, err
	}
	observability.IncrementLedgerPosting(domain.TxWithdrawal, "ok")
	return posted, nil
}

func maskCard(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) <= 4 {
		return string(digits)
	}
	return "****" + string(digits[len(digits)-4:])
}

// Grant credits a bonus or referral payout decided by an administrator.
func (s *Service) Grant(ctx context.Context, userID int, txType string, amount float64, description string) (*domain.Transaction, error) {
	if !domain.IsGrantable(txType) {
		return nil, ErrNotGrantable
	}
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	return s.Post(ctx, domain.Posting{
		UserID:      userID,
		Income:      amount,
		Type:        txType,
		Description: description,
	})
}
