package repo

import (
	"github.com/GlebRadaev/ridehail/internal/pg"
	auditrepo "github.com/GlebRadaev/ridehail/internal/repo/audit-repo"
	companyrepo "github.com/GlebRadaev/ridehail/internal/repo/company-repo"
	driverrepo "github.com/GlebRadaev/ridehail/internal/repo/driver-repo"
	ledgerrepo "github.com/GlebRadaev/ridehail/internal/repo/ledger-repo"
	offerrepo "github.com/GlebRadaev/ridehail/internal/repo/offer-repo"
	positionrepo "github.com/GlebRadaev/ridehail/internal/repo/position-repo"
	requestrepo "github.com/GlebRadaev/ridehail/internal/repo/request-repo"
	userrepo "github.com/GlebRadaev/ridehail/internal/repo/user-repo"
)

// Repositories are shared by several services, each of which sees them
// through its own narrow interface.
type Repositories struct {
	UserRepo     *userrepo.Repository
	DriverRepo   *driverrepo.Repository
	PositionRepo *positionrepo.Repository
	RequestRepo  *requestrepo.Repository
	OfferRepo    *offerrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
	CompanyRepo  *companyrepo.Repository
	AuditRepo    *auditrepo.Repository
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		DriverRepo:   driverrepo.New(conn),
		PositionRepo: positionrepo.New(conn),
		RequestRepo:  requestrepo.New(conn),
		OfferRepo:    offerrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		CompanyRepo:  companyrepo.New(conn),
		AuditRepo:    auditrepo.New(conn),
		TxManager:    txManager,
	}
}
