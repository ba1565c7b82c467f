package tripservice

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/observability"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/internal/policy"
)

//go:generate mockgen -source=tripservice.go -destination=mock_tripservice.go -package=tripservice

type RequestRepo interface {
	Create(ctx context.Context, cr *domain.ClientRequest) (*domain.ClientRequest, error)
	FindByID(ctx context.Context, id int) (*domain.ClientRequest, error)
	LockByID(ctx context.Context, id int) (*domain.ClientRequest, error)
	ListByClient(ctx context.Context, clientID int) ([]domain.ClientRequest, error)
	ListOpenNear(ctx context.Context, lat, lng, maxKm float64, vehicleTypeID int) ([]domain.ClientRequest, error)
	VehicleTypeForService(ctx context.Context, serviceTypeID int) (*int, error)
	Reserve(ctx context.Context, requestID, driverID int) (bool, error)
	Assign(ctx context.Context, requestID, driverID int, fare float64) (bool, error)
	ReleaseBusy(ctx context.Context, requestID, driverID int) error
	Transition(ctx context.Context, requestID int, from, to string) (bool, error)
	Cancel(ctx context.Context, requestID int, allowed []string) (bool, error)
	RateDriver(ctx context.Context, requestID int, score float64) (bool, error)
	RateClient(ctx context.Context, requestID int, score float64) (bool, error)
	HasActiveForDriver(ctx context.Context, driverID int) (bool, error)
}

type DriverRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.DriverInfo, error)
	LockByUserID(ctx context.Context, userID int) (*domain.DriverInfo, error)
	LockByPendingRequest(ctx context.Context, requestID int) (*domain.DriverInfo, error)
	SetPending(ctx context.Context, userID, requestID int) (bool, error)
	ClearPending(ctx context.Context, userID int) error
	ReleaseRequest(ctx context.Context, requestID int) error
	ListExpiredPending(ctx context.Context, before time.Time) ([]int, error)
}

type OfferRepo interface {
	FindByID(ctx context.Context, id int) (*domain.DriverTripOffer, error)
	FindByDriverAndRequest(ctx context.Context, driverID, requestID int) (*domain.DriverTripOffer, error)
}

type PositionRepo interface {
	Get(ctx context.Context, driverID int) (*domain.DriverPosition, error)
}

type Settler interface {
	Settle(ctx context.Context, cr *domain.ClientRequest, fare float64) error
}

type Service struct {
	requestRepo  RequestRepo
	driverRepo   DriverRepo
	offerRepo    OfferRepo
	positionRepo PositionRepo
	settler      Settler
	txManager    pg.TXManager
	nearbyMaxKm  float64
}

func New(
	requestRepo RequestRepo,
	driverRepo DriverRepo,
	offerRepo OfferRepo,
	positionRepo PositionRepo,
	settler Settler,
	txManager pg.TXManager,
	nearbyMaxKm float64,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		driverRepo:   driverRepo,
		offerRepo:    offerRepo,
		positionRepo: positionRepo,
		settler:      settler,
		txManager:    txManager,
		nearbyMaxKm:  nearbyMaxKm,
	}
}

var (
	ErrRequestNotFound   = fmt.Errorf("%w: client request", domain.ErrNotFound)
	ErrDriverNotFound    = fmt.Errorf("%w: driver", domain.ErrNotFound)
	ErrOfferNotFound     = fmt.Errorf("%w: offer", domain.ErrNotFound)
	ErrNotOwner          = fmt.Errorf("%w: request belongs to another client", domain.ErrForbidden)
	ErrNotAssigned       = fmt.Errorf("%w: driver is not assigned to the request", domain.ErrForbidden)
	ErrNotParticipant    = fmt.Errorf("%w: caller does not take part in the trip", domain.ErrForbidden)
	ErrDriverNotEligible = fmt.Errorf("%w: driver is not approved", domain.ErrForbidden)
	ErrInvalidFare       = fmt.Errorf("%w: fare must be a positive amount in whole cents", domain.ErrValidation)
	ErrInvalidPoint      = fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	ErrInvalidRadius     = fmt.Errorf("%w: radius must be a finite number", domain.ErrValidation)
	ErrUnknownService    = fmt.Errorf("%w: unknown service type", domain.ErrValidation)
	ErrInvalidTransition = fmt.Errorf("%w: status change not allowed", domain.ErrValidation)
	ErrInvalidScore      = fmt.Errorf("%w: score must be between 1 and 5", domain.ErrValidation)
	ErrNoVehicleType     = fmt.Errorf("%w: driver has no vehicle type", domain.ErrValidation)
	ErrNoPosition        = fmt.Errorf("%w: driver has no recorded position", domain.ErrValidation)
	ErrNoFare            = fmt.Errorf("%w: request has no fare to settle", domain.ErrValidation)
	ErrRequestTaken      = fmt.Errorf("%w: request is assigned or reserved by another driver", domain.ErrConflict)
	ErrStatusChanged     = fmt.Errorf("%w: request status changed concurrently", domain.ErrConflict)
	ErrPendingExists     = fmt.Errorf("%w: driver already holds a pending request", domain.ErrConflict)
	ErrNoPendingRequest  = fmt.Errorf("%w: driver has no pending request", domain.ErrConflict)
	ErrPendingNotExpired = fmt.Errorf("%w: pending request is not expired", domain.ErrConflict)
	ErrAlreadyRated      = fmt.Errorf("%w: trip already rated", domain.ErrConflict)
)

// NewRequest is what a client submits to open a trip.
type NewRequest struct {
	Pickup                 domain.Point
	Destination            domain.Point
	PickupDescription      string
	DestinationDescription string
	FareOffered            float64
	ServiceTypeID          int
}

func validPoint(p domain.Point) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (s *Service) Create(ctx context.Context, clientID int, in NewRequest) (*domain.ClientRequest, error) {
	if !domain.ValidAmount(in.FareOffered) {
		return nil, ErrInvalidFare
	}
	if !validPoint(in.Pickup) || !validPoint(in.Destination) {
		return nil, ErrInvalidPoint
	}
	vehicleTypeID, err := s.requestRepo.VehicleTypeForService(ctx, in.ServiceTypeID)
	if err != nil {
		return nil, err
	}
	if vehicleTypeID == nil {
		return nil, ErrUnknownService
	}

	fare := in.FareOffered
	created, err := s.requestRepo.Create(ctx, &domain.ClientRequest{
		ClientID:               clientID,
		FareOffered:            &fare,
		PickupDescription:      in.PickupDescription,
		DestinationDescription: in.DestinationDescription,
		Pickup:                 in.Pickup,
		Destination:            in.Destination,
		ServiceTypeID:          in.ServiceTypeID,
	})
	if err != nil {
		return nil, err
	}
	observability.IncrementTripTransition(domain.StatusCreated)
	zap.L().Info("client request created", zap.Int("request_id", created.ID), zap.Int("client_id", clientID))
	return created, nil
}

func (s *Service) Get(ctx context.Context, caller policy.Caller, requestID int) (*domain.ClientRequest, error) {
	cr, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewRequest(caller, cr) {
		return nil, fmt.Errorf("%w: request %d", domain.ErrForbidden, requestID)
	}
	return cr, nil
}

func (s *Service) ListMine(ctx context.Context, clientID int) ([]domain.ClientRequest, error) {
	return s.requestRepo.ListByClient(ctx, clientID)
}

// OpenNear lists open requests around the driver's last position that the
// driver's vehicle can serve.
func (s *Service) OpenNear(ctx context.Context, driverID int, maxKm float64) ([]domain.ClientRequest, error) {
	if math.IsNaN(maxKm) || math.IsInf(maxKm, 0) {
		return nil, ErrInvalidRadius
	}
	if maxKm <= 0 {
		maxKm = s.nearbyMaxKm
	}
	driver, err := s.findDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.Eligible() {
		return nil, ErrDriverNotEligible
	}
	if driver.VehicleTypeID == nil {
		return nil, ErrNoVehicleType
	}
	pos, err := s.positionRepo.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, ErrNoPosition
	}
	return s.requestRepo.ListOpenNear(ctx, pos.Lat, pos.Lng, maxKm, *driver.VehicleTypeID)
}

// AcceptOffer lets the owning client pick a driver's offer.
func (s *Service) AcceptOffer(ctx context.Context, clientID, requestID, offerID int) (*domain.ClientRequest, error) {
	var accepted *domain.ClientRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cr, err := s.lockHolderAndRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if cr.ClientID != clientID {
			return ErrNotOwner
		}
		offer, err := s.offerRepo.FindByID(ctx, offerID)
		if err != nil {
			return err
		}
		if offer == nil || offer.ClientRequestID != requestID {
			return ErrOfferNotFound
		}
		ok, err := s.requestRepo.Assign(ctx, requestID, offer.DriverID, offer.FareOffer)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRequestTaken
		}
		if err := s.driverRepo.ReleaseRequest(ctx, requestID); err != nil {
			return err
		}
		accepted = assigned(cr, offer.DriverID, offer.FareOffer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	observability.IncrementTripTransition(domain.StatusAccepted)
	zap.L().Info("offer accepted",
		zap.Int("request_id", requestID), zap.Int("offer_id", offerID), zap.Int("driver_id", *accepted.DriverAssignedID))
	return accepted, nil
}

func assigned(cr *domain.ClientRequest, driverID int, fare float64) *domain.ClientRequest {
	out := *cr
	out.Status = domain.StatusAccepted
	out.DriverAssignedID = &driverID
	out.FareAssigned = &fare
	out.AssignedBusyDriverID = nil
	out.TimeToPickup = nil
	out.DistanceToPickup = nil
	return &out
}

// Advance moves the trip one step along the driver's path.
func (s *Service) Advance(ctx context.Context, driverID, requestID int, next string) (*domain.ClientRequest, error) {
	cr, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if cr.DriverAssignedID == nil || *cr.DriverAssignedID != driverID {
		return nil, ErrNotAssigned
	}
	expected, ok := domain.NextDriverStatus(cr.Status)
	if !ok || expected != next {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, cr.Status, next)
	}
	moved, err := s.requestRepo.Transition(ctx, requestID, cr.Status, next)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrStatusChanged
	}
	observability.IncrementTripTransition(next)
	zap.L().Info("trip advanced", zap.Int("request_id", requestID), zap.String("from", cr.Status), zap.String("to", next))
	cr.Status = next
	return cr, nil
}

// Cancel is open to the owning client and to the driver holding the trip.
func (s *Service) Cancel(ctx context.Context, caller policy.Caller, requestID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cr, err := s.lockHolderAndRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if !policy.IsParticipant(caller, cr) {
			return ErrNotParticipant
		}
		if !domain.IsCancellable(cr.Status) {
			return fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, cr.Status)
		}
		ok, err := s.requestRepo.Cancel(ctx, requestID, domain.CancellableStatuses)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusChanged
		}
		return s.driverRepo.ReleaseRequest(ctx, requestID)
	})
	if err != nil {
		return err
	}
	observability.IncrementTripTransition(domain.StatusCancelled)
	zap.L().Info("trip cancelled", zap.Int("request_id", requestID), zap.Int("caller_id", caller.ID), zap.String("role", caller.Role))
	return nil
}

// Pay closes a finished trip and settles the fare in the same transaction.
func (s *Service) Pay(ctx context.Context, clientID, requestID int) (*domain.ClientRequest, error) {
	var paid *domain.ClientRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cr, err := s.lockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if cr.ClientID != clientID {
			return ErrNotOwner
		}
		if cr.Status != domain.StatusFinished {
			return fmt.Errorf("%w: cannot pay from %s", ErrInvalidTransition, cr.Status)
		}
		fare := cr.FareAssigned
		if fare == nil {
			fare = cr.FareOffered
		}
		if fare == nil {
			return ErrNoFare
		}
		ok, err := s.requestRepo.Transition(ctx, requestID, domain.StatusFinished, domain.StatusPaid)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusChanged
		}
		if err := s.settler.Settle(ctx, cr, *fare); err != nil {
			return err
		}
		cr.Status = domain.StatusPaid
		paid = cr
		return nil
	})
	if err != nil {
		return nil, err
	}
	observability.IncrementTripTransition(domain.StatusPaid)
	return paid, nil
}

// Rate records one score per side once the trip is paid.
func (s *Service) Rate(ctx context.Context, caller policy.Caller, requestID, score int) error {
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}
	cr, err := s.findRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !policy.IsParticipant(caller, cr) {
		return ErrNotParticipant
	}
	if cr.Status != domain.StatusPaid {
		return fmt.Errorf("%w: trip is not paid", ErrInvalidTransition)
	}

	var ok bool
	if caller.IsClient() {
		ok, err = s.requestRepo.RateDriver(ctx, requestID, float64(score))
	} else {
		ok, err = s.requestRepo.RateClient(ctx, requestID, float64(score))
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyRated
	}
	return nil
}

// AcceptPending reserves the request for a driver who is still busy. Both
// writes are conditional, so of two drivers racing for one request only
// one gets rows back.
func (s *Service) AcceptPending(ctx context.Context, driverID, requestID int) error {
	var held bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		driver, err := s.lockDriver(ctx, driverID)
		if err != nil {
			return err
		}
		if !driver.Eligible() {
			return ErrDriverNotEligible
		}
		if driver.PendingRequestID != nil {
			if *driver.PendingRequestID == requestID {
				held = true
				return nil
			}
			return ErrPendingExists
		}
		if _, err := s.findRequest(ctx, requestID); err != nil {
			return err
		}
		reserved, err := s.requestRepo.Reserve(ctx, requestID, driverID)
		if err != nil {
			return err
		}
		if !reserved {
			return ErrRequestTaken
		}
		claimed, err := s.driverRepo.SetPending(ctx, driverID, requestID)
		if err != nil {
			return err
		}
		if !claimed {
			return ErrPendingExists
		}
		return nil
	})
	if err != nil {
		zap.L().Info("pending reservation refused", zap.Int("driver_id", driverID), zap.Int("request_id", requestID), zap.Error(err))
		return err
	}
	if held {
		return nil
	}
	observability.IncrementTripTransition(domain.StatusPending)
	zap.L().Info("request reserved", zap.Int("driver_id", driverID), zap.Int("request_id", requestID))
	return nil
}

// CompletePending turns the reservation into an assignment. The fare is the
// driver's own offer on the request, or the client's asking price.
func (s *Service) CompletePending(ctx context.Context, driverID int) (*domain.ClientRequest, error) {
	var accepted *domain.ClientRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		driver, err := s.lockDriver(ctx, driverID)
		if err != nil {
			return err
		}
		if driver.PendingRequestID == nil {
			return ErrNoPendingRequest
		}
		requestID := *driver.PendingRequestID
		cr, err := s.lockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		offer, err := s.offerRepo.FindByDriverAndRequest(ctx, driverID, requestID)
		if err != nil {
			return err
		}
		var fare float64
		switch {
		case offer != nil:
			fare = offer.FareOffer
		case cr.FareOffered != nil:
			fare = *cr.FareOffered
		default:
			return ErrNoFare
		}
		ok, err := s.requestRepo.Assign(ctx, requestID, driverID, fare)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRequestTaken
		}
		if err := s.driverRepo.ClearPending(ctx, driverID); err != nil {
			return err
		}
		accepted = assigned(cr, driverID, fare)
		return nil
	})
	if err != nil {
		return nil, err
	}
	observability.IncrementTripTransition(domain.StatusAccepted)
	zap.L().Info("pending request completed",
		zap.Int("driver_id", driverID), zap.Int("request_id", accepted.ID), zap.Float64("fare", *accepted.FareAssigned))
	return accepted, nil
}

// CancelPending drops the reservation without assigning anyone.
func (s *Service) CancelPending(ctx context.Context, driverID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		driver, err := s.lockDriver(ctx, driverID)
		if err != nil {
			return err
		}
		if driver.PendingRequestID == nil {
			return ErrNoPendingRequest
		}
		return s.releasePending(ctx, driver)
	})
}

// ExpirePending drops the reservation only if it was taken before the
// cutoff. A reservation renewed since the driver was listed stays.
func (s *Service) ExpirePending(ctx context.Context, driverID int, before time.Time) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		driver, err := s.lockDriver(ctx, driverID)
		if err != nil {
			return err
		}
		if driver.PendingRequestID == nil {
			return ErrNoPendingRequest
		}
		if driver.PendingRequestAcceptedAt == nil || !driver.PendingRequestAcceptedAt.Before(before) {
			return ErrPendingNotExpired
		}
		return s.releasePending(ctx, driver)
	})
}

// releasePending runs with the driver row locked.
func (s *Service) releasePending(ctx context.Context, driver *domain.DriverInfo) error {
	requestID := *driver.PendingRequestID
	if err := s.requestRepo.ReleaseBusy(ctx, requestID, driver.UserID); err != nil {
		return err
	}
	if err := s.driverRepo.ClearPending(ctx, driver.UserID); err != nil {
		return err
	}
	zap.L().Info("pending request released", zap.Int("driver_id", driver.UserID), zap.Int("request_id", requestID))
	return nil
}

func (s *Service) Status(ctx context.Context, driverID int) (string, error) {
	driver, err := s.findDriver(ctx, driverID)
	if err != nil {
		return "", err
	}
	active, err := s.requestRepo.HasActiveForDriver(ctx, driverID)
	if err != nil {
		return "", err
	}
	return domain.ComposeDriverStatus(active, driver.PendingRequestID != nil), nil
}

// PendingRequest returns nil when the driver holds no reservation.
func (s *Service) PendingRequest(ctx context.Context, driverID int) (*domain.ClientRequest, error) {
	driver, err := s.findDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.PendingRequestID == nil {
		return nil, nil
	}
	return s.requestRepo.FindByID(ctx, *driver.PendingRequestID)
}

// ExpiredPending lists drivers whose reservation is older than before.
func (s *Service) ExpiredPending(ctx context.Context, before time.Time) ([]int, error) {
	return s.driverRepo.ListExpiredPending(ctx, before)
}

func (s *Service) findRequest(ctx context.Context, id int) (*domain.ClientRequest, error) {
	cr, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, ErrRequestNotFound
	}
	return cr, nil
}

// lockHolderAndRequest locks the driver reserving the request before the
// request itself. Pending-slot operations lock the driver first too, so
// both paths take the rows in the same order.
func (s *Service) lockHolderAndRequest(ctx context.Context, id int) (*domain.ClientRequest, error) {
	if _, err := s.driverRepo.LockByPendingRequest(ctx, id); err != nil {
		return nil, err
	}
	return s.lockRequest(ctx, id)
}

func (s *Service) lockRequest(ctx context.Context, id int) (*domain.ClientRequest, error) {
	cr, err := s.requestRepo.LockByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, ErrRequestNotFound
	}
	return cr, nil
}

func (s *Service) findDriver(ctx context.Context, driverID int) (*domain.DriverInfo, error) {
	driver, err := s.driverRepo.FindByUserID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

func (s *Service) lockDriver(ctx context.Context, driverID int) (*domain.DriverInfo, error) {
	driver, err := s.driverRepo.LockByUserID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}
