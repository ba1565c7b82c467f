package driverservice

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mmcloughlin/geohash"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/policy"
)

//go:generate mockgen -source=driverservice.go -destination=mock_driverservice.go -package=driverservice

type DriverRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.DriverInfo, error)
	Approve(ctx context.Context, userID int) (bool, error)
	Suspend(ctx context.Context, userID int) (bool, error)
	UpdateProfile(ctx context.Context, driver *domain.DriverInfo) (bool, error)
}

type PositionRepo interface {
	Upsert(ctx context.Context, pos *domain.DriverPosition) (*domain.DriverPosition, error)
	Nearby(ctx context.Context, lat, lng, maxKm float64) ([]domain.NearbyDriver, error)
	ForVehicleType(ctx context.Context, vehicleTypeID int, lat, lng float64, onlyDriverID *int) ([]domain.NearbyDriver, error)
}

type RequestRepo interface {
	FindByID(ctx context.Context, id int) (*domain.ClientRequest, error)
	VehicleTypeForService(ctx context.Context, serviceTypeID int) (*int, error)
}

// geohashPrecision gives cells of roughly 150 m.
const geohashPrecision = 7

type Service struct {
	driverRepo   DriverRepo
	positionRepo PositionRepo
	requestRepo  RequestRepo
	nearbyMaxKm  float64
}

func New(driverRepo DriverRepo, positionRepo PositionRepo, requestRepo RequestRepo, nearbyMaxKm float64) *Service {
	return &Service{
		driverRepo:   driverRepo,
		positionRepo: positionRepo,
		requestRepo:  requestRepo,
		nearbyMaxKm:  nearbyMaxKm,
	}
}

var (
	ErrDriverNotFound    = fmt.Errorf("%w: driver", domain.ErrNotFound)
	ErrRequestNotFound   = fmt.Errorf("%w: client request", domain.ErrNotFound)
	ErrDriverNotEligible = fmt.Errorf("%w: driver is not approved, verified and active", domain.ErrForbidden)
	ErrInvalidPoint      = fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	ErrInvalidRadius     = fmt.Errorf("%w: radius must be a finite non-negative number", domain.ErrValidation)
	ErrInvalidProfile    = fmt.Errorf("%w: vehicle type and plate are required", domain.ErrValidation)
	ErrUnknownService    = fmt.Errorf("%w: request has an unknown service type", domain.ErrValidation)
)

type Profile struct {
	VehicleTypeID int
	Plate         string
	Brand         string
	Model         string
	Color         string
}

func validPoint(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Nearby lists eligible drivers around a point. A zero radius uses the
// configured default.
func (s *Service) Nearby(ctx context.Context, lat, lng, maxKm float64) ([]domain.NearbyDriver, error) {
	if !validPoint(lat, lng) {
		return nil, ErrInvalidPoint
	}
	if maxKm < 0 || math.IsNaN(maxKm) || math.IsInf(maxKm, 0) {
		return nil, ErrInvalidRadius
	}
	if maxKm == 0 {
		maxKm = s.nearbyMaxKm
	}
	return s.positionRepo.Nearby(ctx, lat, lng, maxKm)
}

// NearbyForRequest lists drivers whose vehicle can serve the request, seen
// through the same visibility rule as offers.
func (s *Service) NearbyForRequest(ctx context.Context, caller policy.Caller, requestID int) ([]domain.NearbyDriver, error) {
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
	vehicleTypeID, err := s.requestRepo.VehicleTypeForService(ctx, cr.ServiceTypeID)
	if err != nil {
		return nil, err
	}
	if vehicleTypeID == nil {
		return nil, ErrUnknownService
	}
	return s.positionRepo.ForVehicleType(ctx, *vehicleTypeID, cr.Pickup.Lat, cr.Pickup.Lng, scope.OnlyDriverID)
}

// UpdatePosition stores the driver's location. Only eligible drivers may
// publish one.
func (s *Service) UpdatePosition(ctx context.Context, driverID int, lat, lng float64) (*domain.DriverPosition, error) {
	if !validPoint(lat, lng) {
		return nil, ErrInvalidPoint
	}
	driver, err := s.findDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.Eligible() {
		zap.L().Info("position rejected", zap.Int("driver_id", driverID), zap.String("status", driver.Status),
			zap.Bool("verified", driver.Verified), zap.Bool("suspended", driver.Suspended))
		return nil, ErrDriverNotEligible
	}
	return s.positionRepo.Upsert(ctx, &domain.DriverPosition{
		DriverID: driverID,
		Lat:      lat,
		Lng:      lng,
		Geohash:  geohash.EncodeWithPrecision(lat, lng, geohashPrecision),
	})
}

func (s *Service) UpdateProfile(ctx context.Context, driverID int, p Profile) (*domain.DriverInfo, error) {
	if p.VehicleTypeID <= 0 || strings.TrimSpace(p.Plate) == "" {
		return nil, ErrInvalidProfile
	}
	driver, err := s.findDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	vehicleTypeID := p.VehicleTypeID
	driver.VehicleTypeID = &vehicleTypeID
	driver.VehiclePlate = strings.ToUpper(strings.TrimSpace(p.Plate))
	driver.VehicleBrand = p.Brand
	driver.VehicleModel = p.Model
	driver.VehicleColor = p.Color

	ok, err := s.driverRepo.UpdateProfile(ctx, driver)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

func (s *Service) Approve(ctx context.Context, driverID int) error {
	ok, err := s.driverRepo.Approve(ctx, driverID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDriverNotFound
	}
	zap.L().Info("driver approved", zap.Int("driver_id", driverID))
	return nil
}

func (s *Service) Suspend(ctx context.Context, driverID int) error {
	ok, err := s.driverRepo.Suspend(ctx, driverID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDriverNotFound
	}
	zap.L().Info("driver suspended", zap.Int("driver_id", driverID))
	return nil
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
