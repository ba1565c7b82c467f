package userrepo

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
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id, login, password_hash, role, created_at FROM users WHERE login = $1")

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "test_user",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "created_at"}).
					AddRow(1, "test_user", "hashed_password", domain.RoleDriver, created)
				mock.ExpectQuery(query).WithArgs("test_user").WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Login:        "test_user",
				PasswordHash: "hashed_password",
				Role:         domain.RoleDriver,
				CreatedAt:    created,
			},
		},
		{
			name:  "User not found",
			login: "non_existing_user",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("non_existing_user").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("test_user").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id, login, password_hash, role, created_at FROM users WHERE id = $1")

	rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "created_at"}).
		AddRow(3, "rider", "hash", domain.RoleClient, created)
	mock.ExpectQuery(query).WithArgs(3).WillReturnRows(rows)
	user, err := repo.FindByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "rider", user.Login)

	mock.ExpectQuery(query).WithArgs(4).WillReturnError(pgx.ErrNoRows)
	user, err = repo.FindByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		INSERT INTO users (login, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`)

	tests := []struct {
		name        string
		user        *domain.User
		mockSetup   func()
		expectedErr error
		anyErr      bool
		result      *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{Login: "new_user", PasswordHash: "hashed_password", Role: domain.RoleClient},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("new_user", "hashed_password", domain.RoleClient).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))
			},
			result: &domain.User{ID: 1, Login: "new_user", PasswordHash: "hashed_password", Role: domain.RoleClient, CreatedAt: created},
		},
		{
			name: "Duplicate login",
			user: &domain.User{Login: "taken", PasswordHash: "h", Role: domain.RoleClient},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("taken", "h", domain.RoleClient).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			user: &domain.User{Login: "new_user", PasswordHash: "h", Role: domain.RoleClient},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("new_user", "h", domain.RoleClient).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
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
