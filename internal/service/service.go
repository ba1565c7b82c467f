package service

import (
	"time"

	"github.com/GlebRadaev/ridehail/internal/audit"
	"github.com/GlebRadaev/ridehail/internal/repo"
	"github.com/GlebRadaev/ridehail/internal/service/authservice"
	"github.com/GlebRadaev/ridehail/internal/service/companyservice"
	"github.com/GlebRadaev/ridehail/internal/service/driverservice"
	"github.com/GlebRadaev/ridehail/internal/service/ledgerservice"
	"github.com/GlebRadaev/ridehail/internal/service/offerservice"
	"github.com/GlebRadaev/ridehail/internal/service/tripservice"
	pkgauth "github.com/GlebRadaev/ridehail/pkg/auth"
)

// Deps are the collaborators that do not come from the database.
type Deps struct {
	JWT         pkgauth.JWTServiceInterface
	Estimator   offerservice.Estimator
	AuditPool   audit.WorkerPoolI
	TokenTTL    time.Duration
	NearbyMaxKm float64
}

type Services struct {
	AuthService    *authservice.Service
	LedgerService  *ledgerservice.Service
	CompanyService *companyservice.Service
	TripService    *tripservice.Service
	OfferService   *offerservice.Service
	DriverService  *driverservice.Service
	Audit          *audit.Recorder
}

func New(repo *repo.Repositories, deps Deps) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.CompanyRepo, repo.TxManager)
	companyService := companyservice.New(ledgerService, repo.CompanyRepo)
	authService := authservice.New(repo.UserRepo, repo.DriverRepo, ledgerService,
		&pkgauth.HashService{}, deps.JWT, repo.TxManager, deps.TokenTTL)
	tripService := tripservice.New(repo.RequestRepo, repo.DriverRepo, repo.OfferRepo, repo.PositionRepo,
		companyService, repo.TxManager, deps.NearbyMaxKm)
	offerService := offerservice.New(repo.OfferRepo, repo.RequestRepo, repo.DriverRepo, deps.Estimator)
	driverService := driverservice.New(repo.DriverRepo, repo.PositionRepo, repo.RequestRepo, deps.NearbyMaxKm)

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		CompanyService: companyService,
		TripService:    tripService,
		OfferService:   offerService,
		DriverService:  driverService,
		Audit:          audit.New(repo.AuditRepo, deps.AuditPool),
	}
}
