package offerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

var stamp = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		INSERT INTO driver_trip_offers (id_driver, id_client_request, fare_offer, time, distance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`)
	var none *float64

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		anyErr      bool
		result      *domain.DriverTripOffer
	}{
		{
			name: "Offer created",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, 10, 22000.0, none, none).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, stamp))
			},
			result: &domain.DriverTripOffer{ID: 3, DriverID: 7, ClientRequestID: 10, FareOffer: 22000, CreatedAt: stamp},
		},
		{
			name: "Second offer from the same driver",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, 10, 22000.0, none, none).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, 10, 22000.0, none, none).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.DriverTripOffer{DriverID: 7, ClientRequestID: 10, FareOffer: 22000})
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Find(t *testing.T) {
	repo, mock := NewMock(t)
	columns := []string{"id", "id_driver", "id_client_request", "fare_offer", "time", "distance", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM driver_trip_offers WHERE id = $1`)).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(3, 7, 10, 22000.0, floatPtr(6), floatPtr(2.5), stamp))
	offer, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &domain.DriverTripOffer{ID: 3, DriverID: 7, ClientRequestID: 10, FareOffer: 22000,
		Time: floatPtr(6), Distance: floatPtr(2.5), CreatedAt: stamp}, offer)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM driver_trip_offers WHERE id_driver = $1 AND id_client_request = $2`)).
		WithArgs(7, 11).
		WillReturnError(pgx.ErrNoRows)
	offer, err = repo.FindByDriverAndRequest(context.Background(), 7, 11)
	assert.NoError(t, err)
	assert.Nil(t, offer)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM driver_trip_offers WHERE id_driver = $1 AND id_client_request = $2`)).
		WithArgs(7, 12).
		WillReturnError(errors.New("database error"))
	_, err = repo.FindByDriverAndRequest(context.Background(), 7, 12)
	assert.Error(t, err)
}

func TestRepository_ListByRequest(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`WHERE o.id_client_request = $1 AND ($2::int IS NULL OR o.id_driver = $2)
		ORDER BY o.fare_offer ASC, o.created_at ASC`)
	columns := []string{"id", "id_driver", "id_client_request", "fare_offer", "time", "distance", "created_at",
		"login", "vehicle_plate", "vehicle_brand", "vehicle_model", "vehicle_color", "avg", "lat", "lng"}
	var everyone *int

	mock.ExpectQuery(query).
		WithArgs(10, everyone).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(3, 7, 10, 22000.0, nil, nil, stamp, "drv7", "AB123", "Kia", "Rio", "white", floatPtr(4.5), floatPtr(4.61), floatPtr(-74.01)).
			AddRow(4, 8, 10, 25000.0, nil, nil, stamp, "drv8", "", "", "", "", nil, nil, nil))

	offers, err := repo.ListByRequest(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "drv7", offers[0].DriverLogin)
	assert.Equal(t, floatPtr(4.5), offers[0].AverageRating)
	assert.Equal(t, &domain.Point{Lat: 4.61, Lng: -74.01}, offers[0].Position)
	assert.Nil(t, offers[1].AverageRating)
	assert.Nil(t, offers[1].Position)

	mock.ExpectQuery(query).
		WithArgs(10, intPtr(7)).
		WillReturnError(errors.New("database error"))
	_, err = repo.ListByRequest(context.Background(), 10, intPtr(7))
	assert.Error(t, err)
}
