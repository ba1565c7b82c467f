package driverrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const driverColumns = `id, user_id, status, verified, suspended, vehicle_type_id,
		vehicle_plate, vehicle_brand, vehicle_model, vehicle_color,
		pending_request_id, pending_request_accepted_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanDriver(row pgx.Row) (*domain.DriverInfo, error) {
	var d domain.DriverInfo
	err := row.Scan(&d.ID, &d.UserID, &d.Status, &d.Verified, &d.Suspended, &d.VehicleTypeID,
		&d.VehiclePlate, &d.VehicleBrand, &d.VehicleModel, &d.VehicleColor,
		&d.PendingRequestID, &d.PendingRequestAcceptedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.DriverInfo, error) {
	query := `
		INSERT INTO driver_info (user_id)
		VALUES ($1)
		RETURNING ` + driverColumns
	driver, err := scanDriver(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create driver info", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return driver, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.DriverInfo, error) {
	query := `SELECT ` + driverColumns + ` FROM driver_info WHERE user_id = $1`
	return r.findOne(ctx, query, userID)
}

// LockByUserID reads the driver row FOR UPDATE; callers must be inside a transaction.
func (r *Repository) LockByUserID(ctx context.Context, userID int) (*domain.DriverInfo, error) {
	query := `SELECT ` + driverColumns + ` FROM driver_info WHERE user_id = $1 FOR UPDATE`
	return r.findOne(ctx, query, userID)
}

// LockByPendingRequest locks the driver holding requestID in its pending
// slot. It returns nil when nobody holds the request.
func (r *Repository) LockByPendingRequest(ctx context.Context, requestID int) (*domain.DriverInfo, error) {
	query := `SELECT ` + driverColumns + ` FROM driver_info WHERE pending_request_id = $1 FOR UPDATE`
	return r.findOne(ctx, query, requestID)
}

func (r *Repository) findOne(ctx context.Context, query string, key int) (*domain.DriverInfo, error) {
	driver, err := scanDriver(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get driver info", zap.Int("key", key), zap.Error(err))
		return nil, err
	}
	return driver, nil
}

// SetPending claims the driver's single pending slot. It reports false when
// the slot is already taken or another driver holds the same request.
func (r *Repository) SetPending(ctx context.Context, userID, requestID int) (bool, error) {
	query := `
		UPDATE driver_info
		SET pending_request_id = $2, pending_request_accepted_at = now()
		WHERE user_id = $1 AND pending_request_id IS NULL
	`
	tag, err := r.db.Exec(ctx, query, userID, requestID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return false, nil
		}
		zap.L().Error("failed to set pending request", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ClearPending(ctx context.Context, userID int) error {
	query := `
		UPDATE driver_info
		SET pending_request_id = NULL, pending_request_accepted_at = NULL
		WHERE user_id = $1
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to clear pending request", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// ReleaseRequest frees whichever driver slot points at the request.
func (r *Repository) ReleaseRequest(ctx context.Context, requestID int) error {
	query := `
		UPDATE driver_info
		SET pending_request_id = NULL, pending_request_accepted_at = NULL
		WHERE pending_request_id = $1
	`
	if _, err := r.db.Exec(ctx, query, requestID); err != nil {
		zap.L().Error("failed to release pending request", zap.Int("request_id", requestID), zap.Error(err))
		return err
	}
	return nil
}

// ListExpiredPending returns drivers whose reservation was taken before the cutoff.
func (r *Repository) ListExpiredPending(ctx context.Context, before time.Time) ([]int, error) {
	query := `
		SELECT user_id
		FROM driver_info
		WHERE pending_request_id IS NOT NULL AND pending_request_accepted_at < $1
		ORDER BY pending_request_accepted_at
	`
	rows, err := r.db.Query(ctx, query, before)
	if err != nil {
		zap.L().Error("failed to list expired pending requests", zap.Error(err))
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		zap.L().Error("failed to scan expired pending requests", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

func (r *Repository) Approve(ctx context.Context, userID int) (bool, error) {
	query := `
		UPDATE driver_info
		SET status = $2, verified = TRUE, suspended = FALSE
		WHERE user_id = $1
	`
	return r.exec(ctx, "approve driver", query, userID, domain.DriverStatusApproved)
}

func (r *Repository) Suspend(ctx context.Context, userID int) (bool, error) {
	query := `UPDATE driver_info SET suspended = TRUE WHERE user_id = $1`
	return r.exec(ctx, "suspend driver", query, userID)
}

func (r *Repository) UpdateProfile(ctx context.Context, driver *domain.DriverInfo) (bool, error) {
	query := `
		UPDATE driver_info
		SET vehicle_type_id = $2, vehicle_plate = $3, vehicle_brand = $4, vehicle_model = $5, vehicle_color = $6
		WHERE user_id = $1
	`
	ok, err := r.exec(ctx, "update driver profile", query, driver.UserID, driver.VehicleTypeID,
		driver.VehiclePlate, driver.VehicleBrand, driver.VehicleModel, driver.VehicleColor)
	if err != nil && pg.IsForeignKeyViolation(err) {
		return false, fmt.Errorf("%w: unknown vehicle type", domain.ErrValidation)
	}
	return ok, err
}

func (r *Repository) exec(ctx context.Context, what, query string, args ...any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to "+what, zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
