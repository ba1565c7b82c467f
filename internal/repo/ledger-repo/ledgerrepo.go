package ledgerrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const txColumns = `id, user_id, income, expense, type, id_client_request, is_confirmed, description, date`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// EnsureMount creates the zero balance row for a user if it is missing.
func (r *Repository) EnsureMount(ctx context.Context, userID int) error {
	query := `
		INSERT INTO verify_mounts (user_id, mount)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to ensure balance row", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// LockMount reads the balance FOR UPDATE, serialising every posting of the user.
func (r *Repository) LockMount(ctx context.Context, userID int) (float64, error) {
	var mount float64
	err := r.db.QueryRow(ctx, `SELECT mount FROM verify_mounts WHERE user_id = $1 FOR UPDATE`, userID).Scan(&mount)
	if err != nil {
		zap.L().Error("failed to lock balance row", zap.Int("user_id", userID), zap.Error(err))
		return 0, err
	}
	return mount, nil
}

func (r *Repository) AdjustMount(ctx context.Context, userID int, delta float64) (float64, error) {
	query := `
		UPDATE verify_mounts
		SET mount = mount + $2, updated_at = now()
		WHERE user_id = $1
		RETURNING mount
	`
	var mount float64
	if err := r.db.QueryRow(ctx, query, userID, delta).Scan(&mount); err != nil {
		zap.L().Error("failed to adjust balance", zap.Int("user_id", userID), zap.Error(err))
		return 0, err
	}
	return mount, nil
}

func (r *Repository) GetMount(ctx context.Context, userID int) (float64, error) {
	var mount float64
	err := r.db.QueryRow(ctx, `SELECT mount FROM verify_mounts WHERE user_id = $1`, userID).Scan(&mount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		zap.L().Error("failed to get balance", zap.Int("user_id", userID), zap.Error(err))
		return 0, err
	}
	return mount, nil
}

func (r *Repository) Insert(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, income, expense, type, id_client_request, is_confirmed, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date
	`
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.Income, tx.Expense, tx.Type, tx.ClientRequestID, tx.IsConfirmed, tx.Description).
		Scan(&tx.ID, &tx.Date)
	if err != nil {
		zap.L().Error("failed to insert transaction", zap.Int("user_id", tx.UserID), zap.String("type", tx.Type), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// LockByID reads a transaction FOR UPDATE so approval and rejection cannot race.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.QueryRow(ctx, `SELECT `+txColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id).
		Scan(&tx.ID, &tx.UserID, &tx.Income, &tx.Expense, &tx.Type, &tx.ClientRequestID, &tx.IsConfirmed, &tx.Description, &tx.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock transaction", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) Confirm(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE transactions SET is_confirmed = TRUE WHERE id = $1 AND is_confirmed = FALSE`, id)
	if err != nil {
		zap.L().Error("failed to confirm transaction", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) DeleteUnconfirmed(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND is_confirmed = FALSE`, id)
	if err != nil {
		zap.L().Error("failed to delete transaction", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Totals sums the confirmed postings of a user.
func (r *Repository) Totals(ctx context.Context, userID int) (*domain.LedgerTotals, error) {
	query := `
		SELECT COALESCE(SUM(income), 0)::float8,
			COALESCE(SUM(expense), 0)::float8,
			COALESCE(SUM(income) FILTER (WHERE type = 'BONUS'), 0)::float8
		FROM transactions
		WHERE user_id = $1 AND is_confirmed
	`
	var totals domain.LedgerTotals
	if err := r.db.QueryRow(ctx, query, userID).Scan(&totals.Income, &totals.Expense, &totals.BonusIncome); err != nil {
		zap.L().Error("failed to sum transactions", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Income, &tx.Expense, &tx.Type, &tx.ClientRequestID,
			&tx.IsConfirmed, &tx.Description, &tx.Date); err != nil {
			zap.L().Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
