package positionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// eligibleDriver restricts a join on driver_info d to drivers allowed on the road.
const eligibleDriver = `u.role = 'DRIVER' AND d.status = 'APPROVED' AND d.verified AND NOT d.suspended`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Upsert(ctx context.Context, pos *domain.DriverPosition) (*domain.DriverPosition, error) {
	query := `
		INSERT INTO driver_positions (driver_id, lat, lng, geohash, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (driver_id) DO UPDATE
		SET lat = EXCLUDED.lat, lng = EXCLUDED.lng, geohash = EXCLUDED.geohash, updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, pos.DriverID, pos.Lat, pos.Lng, pos.Geohash).Scan(&pos.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to upsert driver position", zap.Int("driver_id", pos.DriverID), zap.Error(err))
		return nil, err
	}
	return pos, nil
}

func (r *Repository) Get(ctx context.Context, driverID int) (*domain.DriverPosition, error) {
	query := `SELECT driver_id, lat, lng, geohash, updated_at FROM driver_positions WHERE driver_id = $1`
	var pos domain.DriverPosition
	err := r.db.QueryRow(ctx, query, driverID).Scan(&pos.DriverID, &pos.Lat, &pos.Lng, &pos.Geohash, &pos.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get driver position", zap.Int("driver_id", driverID), zap.Error(err))
		return nil, err
	}
	return &pos, nil
}

// Nearby returns eligible drivers within maxKm of the point, closest first.
func (r *Repository) Nearby(ctx context.Context, lat, lng, maxKm float64) ([]domain.NearbyDriver, error) {
	query := `
		SELECT p.driver_id, u.login, p.lat, p.lng,
			earth_distance(ll_to_earth(p.lat, p.lng), ll_to_earth($1, $2)) / 1000 AS distance_km,
			d.vehicle_type_id, d.vehicle_plate
		FROM driver_positions p
		JOIN users u ON u.id = p.driver_id
		JOIN driver_info d ON d.user_id = p.driver_id
		WHERE ` + eligibleDriver + `
			AND earth_distance(ll_to_earth(p.lat, p.lng), ll_to_earth($1, $2)) / 1000 <= $3
		ORDER BY distance_km ASC
	`
	return r.list(ctx, query, lat, lng, maxKm)
}

// ForVehicleType returns eligible drivers of one vehicle type that have a
// recorded position, ordered by distance to the point. onlyDriverID narrows
// the result to a single driver.
func (r *Repository) ForVehicleType(ctx context.Context, vehicleTypeID int, lat, lng float64, onlyDriverID *int) ([]domain.NearbyDriver, error) {
	query := `
		SELECT p.driver_id, u.login, p.lat, p.lng,
			earth_distance(ll_to_earth(p.lat, p.lng), ll_to_earth($1, $2)) / 1000 AS distance_km,
			d.vehicle_type_id, d.vehicle_plate
		FROM driver_positions p
		JOIN users u ON u.id = p.driver_id
		JOIN driver_info d ON d.user_id = p.driver_id
		WHERE ` + eligibleDriver + `
			AND d.vehicle_type_id = $3
			AND ($4::int IS NULL OR p.driver_id = $4)
		ORDER BY distance_km ASC
	`
	return r.list(ctx, query, lat, lng, vehicleTypeID, onlyDriverID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.NearbyDriver, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query nearby drivers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	drivers := make([]domain.NearbyDriver, 0)
	for rows.Next() {
		var d domain.NearbyDriver
		if err := rows.Scan(&d.DriverID, &d.Login, &d.Lat, &d.Lng, &d.DistanceKm, &d.VehicleTypeID, &d.VehiclePlate); err != nil {
			zap.L().Error("failed to scan nearby driver", zap.Error(err))
			return nil, err
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate nearby drivers", zap.Error(err))
		return nil, err
	}
	return drivers, nil
}
