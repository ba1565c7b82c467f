package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/audit"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/internal/repo"
	"github.com/GlebRadaev/ridehail/internal/routing"
	pkgauth "github.com/GlebRadaev/ridehail/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))

	services := New(repos, Deps{
		JWT:         pkgauth.NewMockJWTServiceInterface(ctrl),
		Estimator:   routing.Disabled{},
		AuditPool:   audit.NewMockWorkerPoolI(ctrl),
		TokenTTL:    time.Hour,
		NearbyMaxKm: 5,
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.CompanyService)
	assert.NotNil(t, services.TripService)
	assert.NotNil(t, services.OfferService)
	assert.NotNil(t, services.DriverService)
	assert.NotNil(t, services.Audit)
}
