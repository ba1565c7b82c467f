package drivers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/dto"
	"github.com/GlebRadaev/ridehail/internal/handlers/httperr"
	"github.com/GlebRadaev/ridehail/internal/service/driverservice"
	"github.com/GlebRadaev/ridehail/pkg/auth"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

//go:generate mockgen -source=drivers.go -destination=mock_drivers.go -package=drivers

type DriverService interface {
	Nearby(ctx context.Context, lat, lng, maxKm float64) ([]domain.NearbyDriver, error)
	UpdatePosition(ctx context.Context, driverID int, lat, lng float64) (*domain.DriverPosition, error)
	UpdateProfile(ctx context.Context, driverID int, p driverservice.Profile) (*domain.DriverInfo, error)
}

type TripService interface {
	OpenNear(ctx context.Context, driverID int, maxKm float64) ([]domain.ClientRequest, error)
	Status(ctx context.Context, driverID int) (string, error)
	PendingRequest(ctx context.Context, driverID int) (*domain.ClientRequest, error)
	AcceptPending(ctx context.Context, driverID, requestID int) error
	CompletePending(ctx context.Context, driverID int) (*domain.ClientRequest, error)
	CancelPending(ctx context.Context, driverID int) error
}

type OfferService interface {
	OfferOnPending(ctx context.Context, driverID int, fare float64) (*domain.DriverTripOffer, error)
}

type DriverHandler struct {
	drivers DriverService
	trips   TripService
	offers  OfferService
}

func New(drivers DriverService, trips TripService, offers OfferService) *DriverHandler {
	return &DriverHandler{
		drivers: drivers,
		trips:   trips,
		offers:  offers,
	}
}

func driverID(r *http.Request) int {
	id, _, _ := auth.CallerFrom(r.Context())
	return id
}

// Nearby godoc
//
//	@Summary	Eligible drivers around a point
//	@Tags		Drivers
//	@Security	BearerAuth
//	@Produce	json
//	@Param		lat		query		number	true	"Latitude"
//	@Param		lng		query		number	true	"Longitude"
//	@Param		max_km	query		number	false	"Radius in km"
//	@Success	200		{array}		dto.NearbyDriverDTO
//	@Failure	400		{object}	utils.Response
//	@Router		/drivers/nearby [get]
func (h *DriverHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lng") == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}
	lat, err := utils.QueryFloat(r, "lat", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	lng, err := utils.QueryFloat(r, "lng", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	maxKm, err := utils.QueryFloat(r, "max_km", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	drivers, err := h.drivers.Nearby(r.Context(), lat, lng, maxKm)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewNearbyDriverDTOs(drivers))
}

// UpdatePosition godoc
//
//	@Summary	Publish the driver's position
//	@Tags		Drivers
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.PositionDTO	true	"Coordinates"
//	@Success	200		{object}	dto.PositionDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	403		{object}	utils.Response	"Driver not approved"
//	@Router		/drivers/position [post]
func (h *DriverHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req dto.PositionDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	pos, err := h.drivers.UpdatePosition(r.Context(), driverID(r), req.Lat, req.Lng)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PositionDTO{
		Lat:       pos.Lat,
		Lng:       pos.Lng,
		Geohash:   pos.Geohash,
		UpdatedAt: pos.UpdatedAt,
	})
}

// UpdateProfile godoc
//
//	@Summary	Set the driver's vehicle
//	@Tags		Drivers
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ProfileDTO	true	"Vehicle"
//	@Success	200		{object}	dto.DriverInfoDTO
//	@Failure	400		{object}	utils.Response
//	@Router		/drivers/profile [put]
func (h *DriverHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	info, err := h.drivers.UpdateProfile(r.Context(), driverID(r), driverservice.Profile{
		VehicleTypeID: req.VehicleTypeID,
		Plate:         req.Plate,
		Brand:         req.Brand,
		Model:         req.Model,
		Color:         req.Color,
	})
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDriverInfoDTO(info))
}

// Status godoc
//
//	@Summary		Composite driver status
//	@Description	One of available, busy_available, busy_with_pending, pending_only.
//	@Tags			Drivers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DriverStatusDTO
//	@Failure		404	{object}	utils.Response
//	@Router			/drivers/status [get]
func (h *DriverHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.trips.Status(r.Context(), driverID(r))
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DriverStatusDTO{Status: status})
}

// OpenRequests godoc
//
//	@Summary	Open requests near the driver
//	@Tags		Drivers
//	@Security	BearerAuth
//	@Produce	json
//	@Param		max_km	query		number	false	"Radius in km"
//	@Success	200		{array}		dto.ClientRequestDTO
//	@Failure	400		{object}	utils.Response
//	@Router		/drivers/open-requests [get]
func (h *DriverHandler) OpenRequests(w http.ResponseWriter, r *http.Request) {
	maxKm, err := utils.QueryFloat(r, "max_km", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.trips.OpenNear(r.Context(), driverID(r), maxKm)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClientRequestDTOs(list))
}

// PendingRequest godoc
//
//	@Summary	The driver's reserved next trip
//	@Tags		Pending
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.ClientRequestDTO	"null when nothing is reserved"
//	@Router		/drivers/pending-request [get]
func (h *DriverHandler) PendingRequest(w http.ResponseWriter, r *http.Request) {
	cr, err := h.trips.PendingRequest(r.Context(), driverID(r))
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClientRequestDTO(cr))
}

// AcceptPending godoc
//
//	@Summary	Reserve a request as the driver's next trip
//	@Tags		Pending
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AcceptPendingDTO	true	"Request to reserve"
//	@Success	200		{object}	dto.MessageDTO
//	@Failure	400		{object}	utils.Response
//	@Router		/drivers/pending-request/accept [post]
func (h *DriverHandler) AcceptPending(w http.ResponseWriter, r *http.Request) {
	var req dto.AcceptPendingDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ClientRequestID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "client_request_id is required")
		return
	}
	if err := h.trips.AcceptPending(r.Context(), driverID(r), req.ClientRequestID); err != nil {
		httperr.RespondPrecondition(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageDTO{Message: "Request reserved"})
}

// CompletePending godoc
//
//	@Summary	Take the reserved trip
//	@Tags		Pending
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.ClientRequestDTO
//	@Failure	400	{object}	utils.Response
//	@Router		/drivers/pending-request/complete [post]
func (h *DriverHandler) CompletePending(w http.ResponseWriter, r *http.Request) {
	cr, err := h.trips.CompletePending(r.Context(), driverID(r))
	if err != nil {
		httperr.RespondPrecondition(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClientRequestDTO(cr))
}

// CancelPending godoc
//
//	@Summary	Release the reserved trip
//	@Tags		Pending
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.MessageDTO
//	@Failure	400	{object}	utils.Response
//	@Router		/drivers/pending-request/cancel [post]
func (h *DriverHandler) CancelPending(w http.ResponseWriter, r *http.Request) {
	if err := h.trips.CancelPending(r.Context(), driverID(r)); err != nil {
		httperr.RespondPrecondition(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageDTO{Message: "Reservation released"})
}

// OfferOnPending godoc
//
//	@Summary	Bid on the reserved trip
//	@Tags		Pending
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateOfferDTO	true	"Offer"
//	@Success	200		{object}	dto.OfferCreatedDTO
//	@Failure	400		{object}	utils.Response
//	@Router		/drivers/pending-request/offer [post]
func (h *DriverHandler) OfferOnPending(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOfferDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	offer, err := h.offers.OfferOnPending(r.Context(), driverID(r), req.FareOffer)
	if err != nil {
		httperr.RespondPrecondition(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OfferCreatedDTO{OfferID: offer.ID})
}
