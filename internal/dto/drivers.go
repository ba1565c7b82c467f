package dto

import (
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

type NearbyDriverDTO struct {
	DriverID      int     `json:"driver_id" example:"5"`
	Login         string  `json:"login" example:"carlos"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	DistanceKm    float64 `json:"distance_km" example:"1.2"`
	VehicleTypeID *int    `json:"vehicle_type_id"`
	VehiclePlate  string  `json:"vehicle_plate"`
}

func NewNearbyDriverDTOs(list []domain.NearbyDriver) []NearbyDriverDTO {
	out := make([]NearbyDriverDTO, 0, len(list))
	for _, d := range list {
		out = append(out, NearbyDriverDTO{
			DriverID:      d.DriverID,
			Login:         d.Login,
			Lat:           d.Lat,
			Lng:           d.Lng,
			DistanceKm:    d.DistanceKm,
			VehicleTypeID: d.VehicleTypeID,
			VehiclePlate:  d.VehiclePlate,
		})
	}
	return out
}

type PositionDTO struct {
	Lat       float64   `json:"lat" example:"-12.0464"`
	Lng       float64   `json:"lng" example:"-77.0428"`
	Geohash   string    `json:"geohash,omitempty" example:"6mc5k2e"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type ProfileDTO struct {
	VehicleTypeID int    `json:"vehicle_type_id" example:"1"`
	Plate         string `json:"vehicle_plate" example:"ABC-123"`
	Brand         string `json:"vehicle_brand" example:"Toyota"`
	Model         string `json:"vehicle_model" example:"Yaris"`
	Color         string `json:"vehicle_color" example:"white"`
}

type DriverInfoDTO struct {
	UserID           int    `json:"user_id" example:"5"`
	Status           string `json:"status" example:"APPROVED"`
	Verified         bool   `json:"verified"`
	Suspended        bool   `json:"suspended"`
	VehicleTypeID    *int   `json:"vehicle_type_id"`
	VehiclePlate     string `json:"vehicle_plate"`
	VehicleBrand     string `json:"vehicle_brand"`
	VehicleModel     string `json:"vehicle_model"`
	VehicleColor     string `json:"vehicle_color"`
	PendingRequestID *int   `json:"pending_request_id"`
}

func NewDriverInfoDTO(d *domain.DriverInfo) DriverInfoDTO {
	return DriverInfoDTO{
		UserID:           d.UserID,
		Status:           d.Status,
		Verified:         d.Verified,
		Suspended:        d.Suspended,
		VehicleTypeID:    d.VehicleTypeID,
		VehiclePlate:     d.VehiclePlate,
		VehicleBrand:     d.VehicleBrand,
		VehicleModel:     d.VehicleModel,
		VehicleColor:     d.VehicleColor,
		PendingRequestID: d.PendingRequestID,
	}
}

type DriverStatusDTO struct {
	Status string `json:"status" example:"AVAILABLE"`
}

type AcceptPendingDTO struct {
	ClientRequestID int `json:"client_request_id" example:"10"`
}

type OfferCreatedDTO struct {
	OfferID int `json:"offer_id" example:"7"`
}
