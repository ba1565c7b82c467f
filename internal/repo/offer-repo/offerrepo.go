package offerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const offerColumns = `id, id_driver, id_client_request, fare_offer, time, distance, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanOffer(row pgx.Row) (*domain.DriverTripOffer, error) {
	var o domain.DriverTripOffer
	if err := row.Scan(&o.ID, &o.DriverID, &o.ClientRequestID, &o.FareOffer, &o.Time, &o.Distance, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, offer *domain.DriverTripOffer) (*domain.DriverTripOffer, error) {
	query := `
		INSERT INTO driver_trip_offers (id_driver, id_client_request, fare_offer, time, distance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, offer.DriverID, offer.ClientRequestID, offer.FareOffer, offer.Time, offer.Distance).
		Scan(&offer.ID, &offer.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: driver %d already offered on request %d", domain.ErrConflict, offer.DriverID, offer.ClientRequestID)
		}
		zap.L().Error("failed to create offer", zap.Int("driver_id", offer.DriverID), zap.Error(err))
		return nil, err
	}
	return offer, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.DriverTripOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM driver_trip_offers WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByDriverAndRequest(ctx context.Context, driverID, requestID int) (*domain.DriverTripOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM driver_trip_offers WHERE id_driver = $1 AND id_client_request = $2`
	return r.findOne(ctx, query, driverID, requestID)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.DriverTripOffer, error) {
	offer, err := scanOffer(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get offer", zap.Error(err))
		return nil, err
	}
	return offer, nil
}

// ListByRequest returns the offers on a request, cheapest first, with the
// bidding driver's profile, mean rating over paid trips and last position.
func (r *Repository) ListByRequest(ctx context.Context, requestID int, onlyDriverID *int) ([]domain.OfferDetail, error) {
	query := `
		SELECT o.id, o.id_driver, o.id_client_request, o.fare_offer, o.time, o.distance, o.created_at,
			u.login,
			COALESCE(d.vehicle_plate, ''), COALESCE(d.vehicle_brand, ''),
			COALESCE(d.vehicle_model, ''), COALESCE(d.vehicle_color, ''),
			(SELECT AVG(cr.driver_rating)::float8 FROM client_requests cr
				WHERE cr.id_driver_assigned = o.id_driver AND cr.status = 'PAID' AND cr.driver_rating IS NOT NULL),
			p.lat, p.lng
		FROM driver_trip_offers o
		JOIN users u ON u.id = o.id_driver
		LEFT JOIN driver_info d ON d.user_id = o.id_driver
		LEFT JOIN driver_positions p ON p.driver_id = o.id_driver
		WHERE o.id_client_request = $1 AND ($2::int IS NULL OR o.id_driver = $2)
		ORDER BY o.fare_offer ASC, o.created_at ASC
	`
	rows, err := r.db.Query(ctx, query, requestID, onlyDriverID)
	if err != nil {
		zap.L().Error("failed to list offers", zap.Int("request_id", requestID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	offers := make([]domain.OfferDetail, 0)
	for rows.Next() {
		var (
			o        domain.OfferDetail
			lat, lng *float64
		)
		err := rows.Scan(&o.ID, &o.DriverID, &o.ClientRequestID, &o.FareOffer, &o.Time, &o.Distance, &o.CreatedAt,
			&o.DriverLogin, &o.VehiclePlate, &o.VehicleBrand, &o.VehicleModel, &o.VehicleColor,
			&o.AverageRating, &lat, &lng)
		if err != nil {
			zap.L().Error("failed to scan offer", zap.Error(err))
			return nil, err
		}
		if lat != nil && lng != nil {
			o.Position = &domain.Point{Lat: *lat, Lng: *lng}
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate offers", zap.Error(err))
		return nil, err
	}
	return offers, nil
}
