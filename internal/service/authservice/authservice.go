package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type DriverRepo interface {
	Create(ctx context.Context, userID int) (*domain.DriverInfo, error)
}

type Ledger interface {
	Open(ctx context.Context, userID int) error
}

type Service struct {
	userRepo    Repo
	driverRepo  DriverRepo
	ledger      Ledger
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	txManager   pg.TXManager
	tokenTTL    time.Duration
}

func New(
	repo Repo,
	driverRepo DriverRepo,
	ledger Ledger,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	txManager pg.TXManager,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		userRepo:    repo,
		driverRepo:  driverRepo,
		ledger:      ledger,
		hashService: hashService,
		jwtService:  jwtService,
		txManager:   txManager,
		tokenTTL:    tokenTTL,
	}
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginTaken         = fmt.Errorf("%w: username already taken", domain.ErrConflict)
	ErrInvalidRole        = fmt.Errorf("%w: role must be CLIENT or DRIVER", domain.ErrValidation)
	ErrEmptyCredentials   = fmt.Errorf("%w: login and password are required", domain.ErrValidation)
)

// Register creates the account, its balance row and, for drivers, the
// driver profile awaiting review, all in one transaction.
func (s *Service) Register(ctx context.Context, login, password, role string) (*domain.User, error) {
	if login == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	if role != domain.RoleClient && role != domain.RoleDriver {
		return nil, ErrInvalidRole
	}
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var newUser *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newUser, err = s.userRepo.Create(ctx, &domain.User{
			Login:        login,
			PasswordHash: hashedPassword,
			Role:         role,
		})
		if err != nil {
			zap.L().Error("can't create user: ", zap.Error(err))
			return err
		}
		if role == domain.RoleDriver {
			if _, err := s.driverRepo.Create(ctx, newUser.ID); err != nil {
				zap.L().Error("can't create driver profile: ", zap.Error(err))
				return err
			}
		}
		if err := s.ledger.Open(ctx, newUser.ID); err != nil {
			zap.L().Error("can't create balance: ", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login), zap.String("role", role))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
