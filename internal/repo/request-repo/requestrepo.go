package requestrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const requestColumns = `id, id_client, id_driver_assigned, assigned_busy_driver_id, status,
		fare_offered, fare_assigned, pickup_description, destination_description,
		pickup_lat, pickup_lng, destination_lat, destination_lng, id_service_type,
		time_to_pickup, distance_to_pickup, client_rating, driver_rating, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanRequest(row pgx.Row) (*domain.ClientRequest, error) {
	var cr domain.ClientRequest
	err := row.Scan(&cr.ID, &cr.ClientID, &cr.DriverAssignedID, &cr.AssignedBusyDriverID, &cr.Status,
		&cr.FareOffered, &cr.FareAssigned, &cr.PickupDescription, &cr.DestinationDescription,
		&cr.Pickup.Lat, &cr.Pickup.Lng, &cr.Destination.Lat, &cr.Destination.Lng, &cr.ServiceTypeID,
		&cr.TimeToPickup, &cr.DistanceToPickup, &cr.ClientRating, &cr.DriverRating, &cr.CreatedAt, &cr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *Repository) Create(ctx context.Context, cr *domain.ClientRequest) (*domain.ClientRequest, error) {
	query := `
		INSERT INTO client_requests (id_client, status, fare_offered, pickup_description, destination_description,
			pickup_lat, pickup_lng, destination_lat, destination_lng, id_service_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + requestColumns
	created, err := scanRequest(r.db.QueryRow(ctx, query, cr.ClientID, domain.StatusCreated, cr.FareOffered,
		cr.PickupDescription, cr.DestinationDescription, cr.Pickup.Lat, cr.Pickup.Lng,
		cr.Destination.Lat, cr.Destination.Lng, cr.ServiceTypeID))
	if err != nil {
		zap.L().Error("failed to create client request", zap.Int("client_id", cr.ClientID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ClientRequest, error) {
	return r.findOne(ctx, `SELECT `+requestColumns+` FROM client_requests WHERE id = $1`, id)
}

// LockByID reads the request FOR UPDATE; callers must be inside a transaction.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.ClientRequest, error) {
	return r.findOne(ctx, `SELECT `+requestColumns+` FROM client_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) findOne(ctx context.Context, query string, id int) (*domain.ClientRequest, error) {
	cr, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get client request", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return cr, nil
}

func (r *Repository) ListByClient(ctx context.Context, clientID int) ([]domain.ClientRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM client_requests WHERE id_client = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

// ListOpenNear returns CREATED requests of a vehicle type whose pickup lies
// within maxKm of the point, closest first.
func (r *Repository) ListOpenNear(ctx context.Context, lat, lng, maxKm float64, vehicleTypeID int) ([]domain.ClientRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM client_requests
		WHERE status = 'CREATED' AND id_driver_assigned IS NULL
			AND id_service_type IN (SELECT id FROM service_types WHERE vehicle_type_id = $4)
			AND earth_distance(ll_to_earth(pickup_lat, pickup_lng), ll_to_earth($1, $2)) / 1000 <= $3
		ORDER BY earth_distance(ll_to_earth(pickup_lat, pickup_lng), ll_to_earth($1, $2)) ASC
	`
	return r.list(ctx, query, lat, lng, maxKm, vehicleTypeID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.ClientRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query client requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	requests := make([]domain.ClientRequest, 0)
	for rows.Next() {
		cr, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan client request", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *cr)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate client requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// VehicleTypeForService resolves the vehicle type a service type requires.
func (r *Repository) VehicleTypeForService(ctx context.Context, serviceTypeID int) (*int, error) {
	var vehicleTypeID int
	err := r.db.QueryRow(ctx, `SELECT vehicle_type_id FROM service_types WHERE id = $1`, serviceTypeID).Scan(&vehicleTypeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to resolve vehicle type", zap.Int("service_type_id", serviceTypeID), zap.Error(err))
		return nil, err
	}
	return &vehicleTypeID, nil
}

// Reserve marks the request PENDING for a busy driver. The write only lands
// while the request is open, unassigned and not held by someone else.
func (r *Repository) Reserve(ctx context.Context, requestID, driverID int) (bool, error) {
	query := `
		UPDATE client_requests
		SET assigned_busy_driver_id = $2, status = 'PENDING', updated_at = now()
		WHERE id = $1
			AND status IN ('CREATED', 'PENDING')
			AND id_driver_assigned IS NULL
			AND (assigned_busy_driver_id IS NULL OR assigned_busy_driver_id = $2)
	`
	tag, err := r.db.Exec(ctx, query, requestID, driverID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return false, nil
		}
		zap.L().Error("failed to reserve client request", zap.Int("id", requestID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Assign hands the request to the driver at the agreed fare and drops the
// reservation and transit estimates, under the same guard as Reserve.
func (r *Repository) Assign(ctx context.Context, requestID, driverID int, fare float64) (bool, error) {
	query := `
		UPDATE client_requests
		SET status = 'ACCEPTED', id_driver_assigned = $2, fare_assigned = $3,
			assigned_busy_driver_id = NULL, time_to_pickup = NULL, distance_to_pickup = NULL,
			updated_at = now()
		WHERE id = $1
			AND status IN ('CREATED', 'PENDING')
			AND id_driver_assigned IS NULL
			AND (assigned_busy_driver_id IS NULL OR assigned_busy_driver_id = $2)
	`
	tag, err := r.db.Exec(ctx, query, requestID, driverID, fare)
	if err != nil {
		zap.L().Error("failed to assign client request", zap.Int("id", requestID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseBusy drops the driver's reservation and reopens a PENDING request.
func (r *Repository) ReleaseBusy(ctx context.Context, requestID, driverID int) error {
	query := `
		UPDATE client_requests
		SET assigned_busy_driver_id = NULL,
			status = CASE WHEN status = 'PENDING' THEN 'CREATED' ELSE status END,
			updated_at = now()
		WHERE id = $1 AND assigned_busy_driver_id = $2
	`
	if _, err := r.db.Exec(ctx, query, requestID, driverID); err != nil {
		zap.L().Error("failed to release client request", zap.Int("id", requestID), zap.Error(err))
		return err
	}
	return nil
}

// Transition moves the request from one status to another and reports false
// if it was no longer in the expected status.
func (r *Repository) Transition(ctx context.Context, requestID int, from, to string) (bool, error) {
	query := `
		UPDATE client_requests
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
	`
	tag, err := r.db.Exec(ctx, query, requestID, from, to)
	if err != nil {
		zap.L().Error("failed to change request status", zap.Int("id", requestID), zap.String("to", to), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Cancel(ctx context.Context, requestID int, allowed []string) (bool, error) {
	query := `
		UPDATE client_requests
		SET status = 'CANCELLED', assigned_busy_driver_id = NULL, updated_at = now()
		WHERE id = $1 AND status = ANY($2)
	`
	tag, err := r.db.Exec(ctx, query, requestID, allowed)
	if err != nil {
		zap.L().Error("failed to cancel client request", zap.Int("id", requestID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RateDriver stores the client's score for the driver once, after payment.
func (r *Repository) RateDriver(ctx context.Context, requestID int, score float64) (bool, error) {
	query := `
		UPDATE client_requests
		SET driver_rating = $2, updated_at = now()
		WHERE id = $1 AND status = 'PAID' AND driver_rating IS NULL
	`
	return r.rate(ctx, query, requestID, score)
}

// RateClient stores the driver's score for the client once, after payment.
func (r *Repository) RateClient(ctx context.Context, requestID int, score float64) (bool, error) {
	query := `
		UPDATE client_requests
		SET client_rating = $2, updated_at = now()
		WHERE id = $1 AND status = 'PAID' AND client_rating IS NULL
	`
	return r.rate(ctx, query, requestID, score)
}

func (r *Repository) rate(ctx context.Context, query string, requestID int, score float64) (bool, error) {
	tag, err := r.db.Exec(ctx, query, requestID, score)
	if err != nil {
		zap.L().Error("failed to rate client request", zap.Int("id", requestID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// HasActiveForDriver reports whether the driver is assigned to a trip in progress.
func (r *Repository) HasActiveForDriver(ctx context.Context, driverID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM client_requests
			WHERE id_driver_assigned = $1 AND status = ANY($2)
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, driverID, domain.ActiveStatuses).Scan(&exists); err != nil {
		zap.L().Error("failed to check active trip", zap.Int("driver_id", driverID), zap.Error(err))
		return false, err
	}
	return exists, nil
}
