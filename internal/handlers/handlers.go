package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/ridehail/docs"
	"github.com/GlebRadaev/ridehail/internal/domain"
	adminhandlers "github.com/GlebRadaev/ridehail/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/ridehail/internal/handlers/auth"
	drivershandlers "github.com/GlebRadaev/ridehail/internal/handlers/drivers"
	ledgerhandlers "github.com/GlebRadaev/ridehail/internal/handlers/ledger"
	"github.com/GlebRadaev/ridehail/internal/handlers/middleware"
	tripshandlers "github.com/GlebRadaev/ridehail/internal/handlers/trips"
	"github.com/GlebRadaev/ridehail/internal/service"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type TripHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListOffers(w http.ResponseWriter, r *http.Request)
	NearbyDrivers(w http.ResponseWriter, r *http.Request)
	CreateOffer(w http.ResponseWriter, r *http.Request)
	AcceptOffer(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Rate(w http.ResponseWriter, r *http.Request)
}

type DriverHandler interface {
	Nearby(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	OpenRequests(w http.ResponseWriter, r *http.Request)
	PendingRequest(w http.ResponseWriter, r *http.Request)
	AcceptPending(w http.ResponseWriter, r *http.Request)
	CompletePending(w http.ResponseWriter, r *http.Request)
	CancelPending(w http.ResponseWriter, r *http.Request)
	OfferOnPending(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	Recharge(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ApproveDriver(w http.ResponseWriter, r *http.Request)
	SuspendDriver(w http.ResponseWriter, r *http.Request)
	ApproveRecharge(w http.ResponseWriter, r *http.Request)
	RejectRecharge(w http.ResponseWriter, r *http.Request)
	Grant(w http.ResponseWriter, r *http.Request)
	CompanySummary(w http.ResponseWriter, r *http.Request)
	AuditLogs(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	TripHandler   TripHandler
	DriverHandler DriverHandler
	LedgerHandler LedgerHandler
	AdminHandler  AdminHandler

	jwt       auth.JWTServiceInterface
	audit     middleware.AuditRecorder
	publicRPS int
}

func New(s *service.Services, jwt auth.JWTServiceInterface, publicRPS int) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		TripHandler:   tripshandlers.New(s.TripService, s.OfferService, s.DriverService),
		DriverHandler: drivershandlers.New(s.DriverService, s.TripService, s.OfferService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
		AdminHandler:  adminhandlers.New(s.DriverService, s.LedgerService, s.CompanyService, s.Audit),
		jwt:           jwt,
		audit:         s.Audit,
		publicRPS:     publicRPS,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		chimiddleware.Logger,
		middleware.Metrics,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/user", func(r chi.Router) {
		r.Use(middleware.PublicRateLimiter(h.publicRPS))
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.jwt))

		r.Route("/client-requests", func(r chi.Router) {
			r.With(auth.RequireRole(domain.RoleClient)).Post("/", h.TripHandler.Create)
			r.With(auth.RequireRole(domain.RoleClient)).Get("/me", h.TripHandler.ListMine)
			r.Get("/{id}", h.TripHandler.Get)
			r.Get("/{id}/offers", h.TripHandler.ListOffers)
			r.Get("/{id}/drivers", h.TripHandler.NearbyDrivers)
			r.With(auth.RequireRole(domain.RoleDriver)).Post("/{id}/offers", h.TripHandler.CreateOffer)
			r.With(auth.RequireRole(domain.RoleClient)).Post("/{id}/offers/{offerID}/accept", h.TripHandler.AcceptOffer)
			r.With(auth.RequireRole(domain.RoleDriver)).Put("/{id}/status", h.TripHandler.UpdateStatus)
			r.Post("/{id}/cancel", h.TripHandler.Cancel)
			r.With(auth.RequireRole(domain.RoleClient)).Post("/{id}/pay", h.TripHandler.Pay)
			r.Post("/{id}/rating", h.TripHandler.Rate)
		})

		r.Route("/drivers", func(r chi.Router) {
			r.Get("/nearby", h.DriverHandler.Nearby)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleDriver))
				r.Post("/position", h.DriverHandler.UpdatePosition)
				r.Put("/profile", h.DriverHandler.UpdateProfile)
				r.Get("/status", h.DriverHandler.Status)
				r.Get("/open-requests", h.DriverHandler.OpenRequests)
				r.Route("/pending-request", func(r chi.Router) {
					r.Get("/", h.DriverHandler.PendingRequest)
					r.Post("/accept", h.DriverHandler.AcceptPending)
					r.Post("/complete", h.DriverHandler.CompletePending)
					r.Post("/cancel", h.DriverHandler.CancelPending)
					r.Post("/offer", h.DriverHandler.OfferOnPending)
				})
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/balance/me", h.LedgerHandler.GetBalance)
			r.Get("/list/me", h.LedgerHandler.ListTransactions)
			r.Post("/recharge", h.LedgerHandler.Recharge)
			r.Post("/withdraw", h.LedgerHandler.Withdraw)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleAdmin), middleware.Audit(h.audit))
			r.Post("/drivers/{id}/approve", h.AdminHandler.ApproveDriver)
			r.Post("/drivers/{id}/suspend", h.AdminHandler.SuspendDriver)
			r.Post("/transactions/approve", h.AdminHandler.ApproveRecharge)
			r.Post("/transactions/reject", h.AdminHandler.RejectRecharge)
			r.Post("/transactions/grant", h.AdminHandler.Grant)
			r.Get("/company/summary", h.AdminHandler.CompanySummary)
			r.Get("/audit-logs", h.AdminHandler.AuditLogs)
		})
	})

	return r
}
