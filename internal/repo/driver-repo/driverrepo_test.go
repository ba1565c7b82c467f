package driverrepo

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

var columns = []string{"id", "user_id", "status", "verified", "suspended", "vehicle_type_id",
	"vehicle_plate", "vehicle_brand", "vehicle_model", "vehicle_color",
	"pending_request_id", "pending_request_accepted_at"}

func intPtr(v int) *int { return &v }

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM driver_info WHERE user_id = $1`)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.DriverInfo
	}{
		{
			name:   "Driver found",
			userID: 7,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).WillReturnRows(pgxmock.NewRows(columns).
					AddRow(1, 7, domain.DriverStatusApproved, true, false, intPtr(1), "AB123", "Kia", "Rio", "white", nil, nil))
			},
			result: &domain.DriverInfo{
				ID: 1, UserID: 7, Status: domain.DriverStatusApproved, Verified: true,
				VehicleTypeID: intPtr(1), VehiclePlate: "AB123", VehicleBrand: "Kia", VehicleModel: "Rio", VehicleColor: "white",
			},
		},
		{
			name:   "Driver not found",
			userID: 8,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(8).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 9,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(9).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_LockByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	accepted := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM driver_info WHERE user_id = $1 FOR UPDATE`)).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, 7, domain.DriverStatusApproved, true, false, nil, "", "", "", "", intPtr(55), &accepted))

	driver, err := repo.LockByUserID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, intPtr(55), driver.PendingRequestID)
	assert.Equal(t, &accepted, driver.PendingRequestAcceptedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByPendingRequest(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM driver_info WHERE pending_request_id = $1 FOR UPDATE`)
	accepted := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(query).
		WithArgs(55).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, 7, domain.DriverStatusApproved, true, false, nil, "", "", "", "", intPtr(55), &accepted))
	driver, err := repo.LockByPendingRequest(context.Background(), 55)
	require.NoError(t, err)
	assert.Equal(t, 7, driver.UserID)

	mock.ExpectQuery(query).WithArgs(56).WillReturnError(pgx.ErrNoRows)
	driver, err = repo.LockByPendingRequest(context.Background(), 56)
	require.NoError(t, err)
	assert.Nil(t, driver)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO driver_info (user_id) VALUES ($1) RETURNING id, user_id`)).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, 7, domain.DriverStatusPendingReview, false, false, nil, "", "", "", "", nil, nil))

	driver, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.DriverStatusPendingReview, driver.Status)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO driver_info (user_id)`)).
		WithArgs(8).
		WillReturnError(errors.New("database error"))
	_, err = repo.Create(context.Background(), 8)
	assert.Error(t, err)
}

func TestRepository_SetPending(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		UPDATE driver_info
		SET pending_request_id = $2, pending_request_accepted_at = now()
		WHERE user_id = $1 AND pending_request_id IS NULL`)

	tests := []struct {
		name      string
		mockSetup func()
		expectOK  bool
		expectErr bool
	}{
		{
			name: "Slot claimed",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(7, 10).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectOK: true,
		},
		{
			name: "Slot already taken",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(7, 10).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectOK: false,
		},
		{
			name: "Request held by another driver",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(7, 10).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectOK: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(7, 10).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.SetPending(context.Background(), 7, 10)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectOK, ok)
		})
	}
}

func TestRepository_ClearPending(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET pending_request_id = NULL, pending_request_accepted_at = NULL WHERE user_id = $1`)).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.ClearPending(context.Background(), 7))

	mock.ExpectExec(regexp.QuoteMeta(`WHERE pending_request_id = $1`)).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.ReleaseRequest(context.Background(), 10))

	mock.ExpectExec(regexp.QuoteMeta(`WHERE pending_request_id = $1`)).
		WithArgs(11).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.ReleaseRequest(context.Background(), 11))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListExpiredPending(t *testing.T) {
	repo, mock := NewMock(t)
	cutoff := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE pending_request_id IS NOT NULL AND pending_request_accepted_at < $1`)).
		WithArgs(cutoff).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(3).AddRow(4))

	ids, err := repo.ListExpiredPending(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, ids)
}

func TestRepository_AdminUpdates(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = $2, verified = TRUE, suspended = FALSE WHERE user_id = $1`)).
		WithArgs(7, domain.DriverStatusApproved).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.Approve(context.Background(), 7)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE driver_info SET suspended = TRUE WHERE user_id = $1`)).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.Suspend(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_UpdateProfile(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SET vehicle_type_id = $2, vehicle_plate = $3, vehicle_brand = $4, vehicle_model = $5, vehicle_color = $6`)
	driver := &domain.DriverInfo{UserID: 7, VehicleTypeID: intPtr(2), VehiclePlate: "M1", VehicleBrand: "Honda", VehicleModel: "CB", VehicleColor: "red"}

	mock.ExpectExec(query).
		WithArgs(7, intPtr(2), "M1", "Honda", "CB", "red").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.UpdateProfile(context.Background(), driver)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(query).
		WithArgs(7, intPtr(2), "M1", "Honda", "CB", "red").
		WillReturnError(&pgconn.PgError{Code: "23503"})
	_, err = repo.UpdateProfile(context.Background(), driver)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
