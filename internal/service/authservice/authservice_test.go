package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

type mocks struct {
	userRepo   *MockRepo
	driverRepo *MockDriverRepo
	ledger     *MockLedger
	hasher     *auth.MockHashServiceInterface
	jwt        *auth.MockJWTServiceInterface
	tx         *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		userRepo:   NewMockRepo(ctrl),
		driverRepo: NewMockDriverRepo(ctrl),
		ledger:     NewMockLedger(ctrl),
		hasher:     auth.NewMockHashServiceInterface(ctrl),
		jwt:        auth.NewMockJWTServiceInterface(ctrl),
		tx:         pg.NewMockTXManager(ctrl),
	}

	service := New(m.userRepo, m.driverRepo, m.ledger, m.hasher, m.jwt, m.tx, time.Hour)
	defer ctrl.Finish()
	return service, m
}

func (m *mocks) passThrough() {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	created := func(_ context.Context, user *domain.User) (*domain.User, error) {
		user.ID = 1
		return user, nil
	}

	tests := []struct {
		name          string
		login         string
		password      string
		role          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Client registration",
			login:    "testuser",
			password: "testpassword",
			role:     domain.RoleClient,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.passThrough()
				m.userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(created)
				m.ledger.EXPECT().Open(ctx, 1).Return(nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "testuser",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleClient,
			},
		},
		{
			name:     "Driver registration",
			login:    "driver",
			password: "testpassword",
			role:     domain.RoleDriver,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(ctx, "driver").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.passThrough()
				m.userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(created)
				m.driverRepo.EXPECT().Create(ctx, 1).Return(&domain.DriverInfo{UserID: 1, Status: domain.DriverStatusPendingReview}, nil)
				m.ledger.EXPECT().Open(ctx, 1).Return(nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "driver",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleDriver,
			},
		},
		{
			name:          "Admin cannot self-register",
			login:         "root",
			password:      "testpassword",
			role:          domain.RoleAdmin,
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
		{
			name:          "Empty password",
			login:         "testuser",
			role:          domain.RoleClient,
			prepareMock:   func() {},
			expectedError: ErrEmptyCredentials,
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			role:     domain.RoleClient,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Error finding user",
			login:    "testuser",
			password: "testpassword",
			role:     domain.RoleClient,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "testuser",
			password: "testpassword",
			role:     domain.RoleClient,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating driver profile",
			login:    "driver",
			password: "testpassword",
			role:     domain.RoleDriver,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(ctx, "driver").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.passThrough()
				m.userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(created)
				m.driverRepo.EXPECT().Create(ctx, 1).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
		{
			name:     "Error creating balance",
			login:    "testuser",
			password: "testpassword",
			role:     domain.RoleClient,
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(ctx, "testuser").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.passThrough()
				m.userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(created)
				m.ledger.EXPECT().Open(ctx, 1).Return(errors.New("balance creation failed"))
			},
			expectedError: errors.New("balance creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(ctx, tt.login, tt.password, tt.role)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{
					ID:           1,
					Login:        "testuser",
					PasswordHash: "hashedpassword",
					Role:         domain.RoleClient,
				}, nil)
				m.hasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "testuser",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleClient,
			},
		},
		{
			name:     "Invalid credentials - user not found",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			login:    "testuser",
			password: "wrongpassword",
			prepareMock: func() {
				m.userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{
					ID:           1,
					Login:        "testuser",
					PasswordHash: "hashedpassword",
				}, nil)
				m.hasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)
	user := &domain.User{ID: 1, Role: domain.RoleDriver}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func() {
				m.jwt.EXPECT().GenerateJWT(1, domain.RoleDriver, gomock.Any()).DoAndReturn(func(_ int, _ string, exp time.Time) (string, error) {
					assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
					return "generated-token", nil
				})
			},
			expectedToken: "generated-token",
		},
		{
			name: "Error generating token",
			prepareMock: func() {
				m.jwt.EXPECT().GenerateJWT(1, domain.RoleDriver, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
