package dto

import (
	"time"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

type PointDTO struct {
	Lat float64 `json:"lat" example:"-12.0464"`
	Lng float64 `json:"lng" example:"-77.0428"`
}

type CreateRequestDTO struct {
	Pickup                 PointDTO `json:"pickup"`
	Destination            PointDTO `json:"destination"`
	PickupDescription      string   `json:"pickup_description" example:"Av. Arequipa 1200"`
	DestinationDescription string   `json:"destination_description" example:"Jockey Plaza"`
	FareOffered            float64  `json:"fare_offered" example:"25"`
	ServiceTypeID          int      `json:"service_type_id" example:"1"`
}

type ClientRequestDTO struct {
	ID                     int       `json:"id" example:"10"`
	ClientID               int       `json:"client_id" example:"3"`
	DriverAssignedID       *int      `json:"driver_assigned_id"`
	AssignedBusyDriverID   *int      `json:"assigned_busy_driver_id"`
	Status                 string    `json:"status" example:"CREATED"`
	FareOffered            *float64  `json:"fare_offered" example:"25"`
	FareAssigned           *float64  `json:"fare_assigned"`
	Pickup                 PointDTO  `json:"pickup"`
	Destination            PointDTO  `json:"destination"`
	PickupDescription      string    `json:"pickup_description"`
	DestinationDescription string    `json:"destination_description"`
	ServiceTypeID          int       `json:"service_type_id" example:"1"`
	TimeToPickup           *float64  `json:"time_to_pickup"`
	DistanceToPickup       *float64  `json:"distance_to_pickup"`
	ClientRating           *float64  `json:"client_rating"`
	DriverRating           *float64  `json:"driver_rating"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func NewClientRequestDTO(cr *domain.ClientRequest) *ClientRequestDTO {
	if cr == nil {
		return nil
	}
	return &ClientRequestDTO{
		ID:                     cr.ID,
		ClientID:               cr.ClientID,
		DriverAssignedID:       cr.DriverAssignedID,
		AssignedBusyDriverID:   cr.AssignedBusyDriverID,
		Status:                 cr.Status,
		FareOffered:            cr.FareOffered,
		FareAssigned:           cr.FareAssigned,
		Pickup:                 PointDTO(cr.Pickup),
		Destination:            PointDTO(cr.Destination),
		PickupDescription:      cr.PickupDescription,
		DestinationDescription: cr.DestinationDescription,
		ServiceTypeID:          cr.ServiceTypeID,
		TimeToPickup:           cr.TimeToPickup,
		DistanceToPickup:       cr.DistanceToPickup,
		ClientRating:           cr.ClientRating,
		DriverRating:           cr.DriverRating,
		CreatedAt:              cr.CreatedAt,
		UpdatedAt:              cr.UpdatedAt,
	}
}

func NewClientRequestDTOs(list []domain.ClientRequest) []ClientRequestDTO {
	out := make([]ClientRequestDTO, 0, len(list))
	for i := range list {
		out = append(out, *NewClientRequestDTO(&list[i]))
	}
	return out
}

type CreateOfferDTO struct {
	FareOffer float64 `json:"fare_offer" example:"22"`
}

type OfferDTO struct {
	ID              int       `json:"id" example:"7"`
	DriverID        int       `json:"driver_id" example:"5"`
	ClientRequestID int       `json:"client_request_id" example:"10"`
	FareOffer       float64   `json:"fare_offer" example:"22"`
	Time            *float64  `json:"time" example:"6.5"`
	Distance        *float64  `json:"distance" example:"2.1"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewOfferDTO(o *domain.DriverTripOffer) OfferDTO {
	return OfferDTO{
		ID:              o.ID,
		DriverID:        o.DriverID,
		ClientRequestID: o.ClientRequestID,
		FareOffer:       o.FareOffer,
		Time:            o.Time,
		Distance:        o.Distance,
		CreatedAt:       o.CreatedAt,
	}
}

type OfferDetailDTO struct {
	OfferDTO
	DriverLogin   string    `json:"driver_login" example:"carlos"`
	VehiclePlate  string    `json:"vehicle_plate" example:"ABC-123"`
	VehicleBrand  string    `json:"vehicle_brand" example:"Toyota"`
	VehicleModel  string    `json:"vehicle_model" example:"Yaris"`
	VehicleColor  string    `json:"vehicle_color" example:"white"`
	AverageRating *float64  `json:"average_rating" example:"4.8"`
	Position      *PointDTO `json:"position"`
}

func NewOfferDetailDTOs(list []domain.OfferDetail) []OfferDetailDTO {
	out := make([]OfferDetailDTO, 0, len(list))
	for i := range list {
		o := list[i]
		item := OfferDetailDTO{
			OfferDTO:      NewOfferDTO(&o.DriverTripOffer),
			DriverLogin:   o.DriverLogin,
			VehiclePlate:  o.VehiclePlate,
			VehicleBrand:  o.VehicleBrand,
			VehicleModel:  o.VehicleModel,
			VehicleColor:  o.VehicleColor,
			AverageRating: o.AverageRating,
		}
		if o.Position != nil {
			p := PointDTO(*o.Position)
			item.Position = &p
		}
		out = append(out, item)
	}
	return out
}

type UpdateStatusDTO struct {
	Status string `json:"status" example:"ON_THE_WAY"`
}

type RatingDTO struct {
	Score int `json:"score" example:"5"`
}
