package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/audit"
	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/internal/repo"
	"github.com/GlebRadaev/ridehail/internal/routing"
	"github.com/GlebRadaev/ridehail/internal/service"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

type captureRecorder struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func (c *captureRecorder) Record(entry domain.AuditLog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	services := service.New(repo.New(mockDB, pg.NewMockTXManager(ctrl)), service.Deps{
		JWT:       auth.NewMockJWTServiceInterface(ctrl),
		Estimator: routing.Disabled{},
		AuditPool: audit.NewMockWorkerPoolI(ctrl),
	})

	h := New(services, auth.NewMockJWTServiceInterface(ctrl), 10)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.TripHandler)
	assert.NotNil(t, h.DriverHandler)
	assert.NotNil(t, h.LedgerHandler)
	assert.NotNil(t, h.AdminHandler)
}

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockTripHandler := NewMockTripHandler(ctrl)
	mockDriverHandler := NewMockDriverHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockTripHandler.EXPECT().Create(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockTripHandler.EXPECT().Get(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockTripHandler.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockTripHandler.EXPECT().Pay(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockDriverHandler.EXPECT().Nearby(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockDriverHandler.EXPECT().PendingRequest(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockDriverHandler.EXPECT().AcceptPending(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockLedgerHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAdminHandler.EXPECT().ApproveDriver(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	jwtService := auth.NewJWTService("test-secret")
	recorder := &captureRecorder{}
	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		TripHandler:   mockTripHandler,
		DriverHandler: mockDriverHandler,
		LedgerHandler: mockLedgerHandler,
		AdminHandler:  mockAdminHandler,
		jwt:           jwtService,
		audit:         recorder,
		publicRPS:     100,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token := func(id int, role string) string {
		tok, err := jwtService.GenerateJWT(id, role, time.Now().Add(time.Hour))
		require.NoError(t, err)
		return tok
	}
	clientToken := token(3, domain.RoleClient)
	driverToken := token(5, domain.RoleDriver)
	adminToken := token(1, domain.RoleAdmin)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"POST", "/client-requests", "", http.StatusUnauthorized},
		{"POST", "/client-requests", "garbage", http.StatusUnauthorized},
		{"POST", "/client-requests", clientToken, http.StatusOK},
		{"POST", "/client-requests", driverToken, http.StatusForbidden},
		{"GET", "/client-requests/10", driverToken, http.StatusOK},
		{"POST", "/client-requests/10/offers", driverToken, http.StatusOK},
		{"POST", "/client-requests/10/offers", clientToken, http.StatusForbidden},
		{"POST", "/client-requests/10/pay", clientToken, http.StatusOK},
		{"GET", "/drivers/nearby", clientToken, http.StatusOK},
		{"GET", "/drivers/pending-request", driverToken, http.StatusOK},
		{"POST", "/drivers/pending-request/accept", driverToken, http.StatusOK},
		{"POST", "/drivers/pending-request/accept", clientToken, http.StatusForbidden},
		{"GET", "/transactions/balance/me", clientToken, http.StatusOK},
		{"GET", "/transactions/balance/me", "", http.StatusUnauthorized},
		{"POST", "/admin/drivers/5/approve", clientToken, http.StatusForbidden},
		{"POST", "/admin/drivers/5/approve", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	require.Len(t, recorder.entries, 1, "only the admin call that passed the role check is audited")
	assert.Equal(t, 1, recorder.entries[0].AdminID)
	assert.Equal(t, "/admin/drivers/{id}/approve", recorder.entries[0].Path)
}
