package offerservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/policy"
)

//go:generate mockgen -source=offerservice.go -destination=mock_offerservice.go -package=offerservice

type OfferRepo interface {
	Create(ctx context.Context, offer *domain.DriverTripOffer) (*domain.DriverTripOffer, error)
	ListByRequest(ctx context.Context, requestID int, onlyDriverID *int) ([]domain.OfferDetail, error)
}

type RequestRepo interface {
	FindByID(ctx context.Context, id int) (*domain.ClientRequest, error)
}

type DriverRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.DriverInfo, error)
}

type Estimator interface {
	Estimate(ctx context.Context, from, to domain.Point) (*domain.RouteEstimate, error)
}

type Service struct {
	offerRepo   OfferRepo
	requestRepo RequestRepo
	driverRepo  DriverRepo
	estimator   Estimator
}

func New(offerRepo OfferRepo, requestRepo RequestRepo, driverRepo DriverRepo, estimator Estimator) *Service {
	return &Service{
		offerRepo:   offerRepo,
		requestRepo: requestRepo,
		driverRepo:  driverRepo,
		estimator:   estimator,
	}
}

var (
	ErrRequestNotFound   = fmt.Errorf("%w: client request", domain.ErrNotFound)
	ErrDriverNotFound    = fmt.Errorf("%w: driver", domain.ErrNotFound)
	ErrDriverNotEligible = fmt.Errorf("%w: driver is not approved", domain.ErrForbidden)
	ErrRequestNotOpen    = fmt.Errorf("%w: request is not open for offers", domain.ErrValidation)
	ErrNoBaseFare        = fmt.Errorf("%w: request has no base fare", domain.ErrValidation)
	ErrFareBelowBase     = fmt.Errorf("%w: offer is below the base fare", domain.ErrValidation)
	ErrInvalidFare       = fmt.Errorf("%w: fare must be a positive amount in whole cents", domain.ErrValidation)
	ErrNoPendingRequest  = fmt.Errorf("%w: driver has no pending request", domain.ErrConflict)
)

// CreateOffer records a driver's bid. Bids go to open requests, or to the
// request the driver has reserved.
func (s *Service) CreateOffer(ctx context.Context, driverID, requestID int, fare float64) (*domain.DriverTripOffer, error) {
	if !domain.ValidAmount(fare) {
		return nil, ErrInvalidFare
	}
	driver, err := s.driverRepo.FindByUserID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	if !driver.Eligible() {
		return nil, ErrDriverNotEligible
	}

	cr, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, ErrRequestNotFound
	}
	if !openFor(cr, driverID) {
		return nil, fmt.Errorf("%w: status %s", ErrRequestNotOpen, cr.Status)
	}
	if cr.FareOffered == nil {
		return nil, ErrNoBaseFare
	}
	if fare < *cr.FareOffered {
		zap.L().Info("offer below base fare",
			zap.Int("driver_id", driverID), zap.Int("request_id", requestID),
			zap.Float64("fare", fare), zap.Float64("base", *cr.FareOffered))
		return nil, ErrFareBelowBase
	}

	offer, err := s.offerRepo.Create(ctx, &domain.DriverTripOffer{
		DriverID:        driverID,
		ClientRequestID: requestID,
		FareOffer:       fare,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("offer created", zap.Int("offer_id", offer.ID), zap.Int("driver_id", driverID), zap.Int("request_id", requestID))
	return offer, nil
}

func openFor(cr *domain.ClientRequest, driverID int) bool {
	if cr.DriverAssignedID != nil {
		return false
	}
	switch cr.Status {
	case domain.StatusCreated:
		return true
	case domain.StatusPending:
		return cr.AssignedBusyDriverID != nil && *cr.AssignedBusyDriverID == driverID
	}
	return false
}

// OfferOnPending bids on the request the driver currently holds.
func (s *Service) OfferOnPending(ctx context.Context, driverID int, fare float64) (*domain.DriverTripOffer, error) {
	driver, err := s.driverRepo.FindByUserID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	if driver.PendingRequestID == nil {
		return nil, ErrNoPendingRequest
	}
	return s.CreateOffer(ctx, driverID, *driver.PendingRequestID, fare)
}

// ListOffers returns the offers the caller may see. Missing travel figures
// are looked up once from the driver's last position to the pickup; a
// failed lookup leaves them at zero.
func (s *Service) ListOffers(ctx context.Context, caller policy.Caller, requestID int) ([]domain.OfferDetail, error) {
	cr, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, ErrRequestNotFound
	}
	scope, err := policy.RequestScope(caller, cr)
	if err != nil {
		return nil, err
	}

	offers, err := s.offerRepo.ListByRequest(ctx, requestID, scope.OnlyDriverID)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].Time != nil && offers[i].Distance != nil {
			continue
		}
		est := s.estimate(ctx, offers[i].Position, cr.Pickup)
		duration, distance := est.DurationMin, est.DistanceKm
		offers[i].Time = &duration
		offers[i].Distance = &distance
	}
	return offers, nil
}

func (s *Service) estimate(ctx context.Context, from *domain.Point, to domain.Point) domain.RouteEstimate {
	if from == nil {
		return domain.RouteEstimate{}
	}
	est, err := s.estimator.Estimate(ctx, *from, to)
	if err != nil {
		zap.L().Warn("route estimate unavailable, using zero",
			zap.Error(fmt.Errorf("%w: %w", domain.ErrExternalDegraded, err)))
		return domain.RouteEstimate{}
	}
	return *est
}
