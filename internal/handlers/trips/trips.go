package trips

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/dto"
	"github.com/GlebRadaev/ridehail/internal/handlers/httperr"
	"github.com/GlebRadaev/ridehail/internal/policy"
	"github.com/GlebRadaev/ridehail/internal/service/tripservice"
	"github.com/GlebRadaev/ridehail/pkg/auth"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

//go:generate mockgen -source=trips.go -destination=mock_trips.go -package=trips

type TripService interface {
	Create(ctx context.Context, clientID int, in tripservice.NewRequest) (*domain.ClientRequest, error)
	Get(ctx context.Context, caller policy.Caller, requestID int) (*domain.ClientRequest, error)
	ListMine(ctx context.Context, clientID int) ([]domain.ClientRequest, error)
	AcceptOffer(ctx context.Context, clientID, requestID, offerID int) (*domain.ClientRequest, error)
	Advance(ctx context.Context, driverID, requestID int, next string) (*domain.ClientRequest, error)
	Cancel(ctx context.Context, caller policy.Caller, requestID int) error
	Pay(ctx context.Context, clientID, requestID int) (*domain.ClientRequest, error)
	Rate(ctx context.Context, caller policy.Caller, requestID, score int) error
}

type OfferService interface {
	CreateOffer(ctx context.Context, driverID, requestID int, fare float64) (*domain.DriverTripOffer, error)
	ListOffers(ctx context.Context, caller policy.Caller, requestID int) ([]domain.OfferDetail, error)
}

type DriverService interface {
	NearbyForRequest(ctx context.Context, caller policy.Caller, requestID int) ([]domain.NearbyDriver, error)
}

type TripHandler struct {
	trips   TripService
	offers  OfferService
	drivers DriverService
}

func New(trips TripService, offers OfferService, drivers DriverService) *TripHandler {
	return &TripHandler{
		trips:   trips,
		offers:  offers,
		drivers: drivers,
	}
}

func callerFrom(r *http.Request) policy.Caller {
	id, role, _ := auth.CallerFrom(r.Context())
	return policy.Caller{ID: id, Role: role}
}

// Create godoc
//
//	@Summary		Create a trip request
//	@Tags			Trips
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRequestDTO	true	"Trip request"
//	@Success		201		{object}	dto.ClientRequestDTO
//	@Failure		400		{object}	utils.Response
//	@Failure		401		{object}	utils.Response
//	@Failure		500		{object}	utils.Response
//	@Router			/client-requests [post]
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cr, err := h.trips.Create(r.Context(), callerFrom(r).ID, tripservice.NewRequest{
		Pickup:                 domain.Point(req.Pickup),
		Destination:            domain.Point(req.Destination),
		PickupDescription:      req.PickupDescription,
		DestinationDescription: req.DestinationDescription,
		FareOffered:            req.FareOffered,
		ServiceTypeID:          req.ServiceTypeID,
	})
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewClientRequestDTO(cr))
}

// ListMine godoc
//
//	@Summary	List the caller's trip requests
//	@Tags		Trips
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.ClientRequestDTO
//	@Failure	401	{object}	utils.Response
//	@Router		/client-requests/me [get]
func (h *TripHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.trips.ListMine(r.Context(), callerFrom(r).ID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClientRequestDTOs(list))
}

// Get godoc
//
//	@Summary	Get a trip request
//	@Tags		Trips
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Request id"
//	@Success	200	{object}	dto.ClientRequestDTO
//	@Failure	403	{object}	utils.Response
//	@Failure	404	{object}	utils.Response
//	@Router		/client-requests/{id} [get]
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	cr, err := h.trips.Get(r.Context(), callerFrom(r), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClientRequestDTO(cr))
}

// ListOffers godoc
//
//	@Summary		List offers on a request
//	@Description	The owning client sees every offer with driver details; a driver sees only their own.
//	@Tags			Offers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request id"
//	@Success		200	{array}		dto.OfferDetailDTO
//	@Failure		403	{object}	utils.Response
//	@Failure		404	{object}	utils.Response
//	@Router			/client-requests/{id}/offers [get]
func (h *TripHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	offers, err := h.offers.ListOffers(r.Context(), callerFrom(r), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOfferDetailDTOs(offers))
}

// NearbyDrivers godoc
//
//	@Summary	Eligible drivers near a request's pickup
//	@Tags		Trips
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Request id"
//	@Success	200	{array}		dto.NearbyDriverDTO
//	@Failure	403	{object}	utils.Response
//	@Failure	404	{object}	utils.Response
//	@Router		/client-requests/{id}/drivers [get]
func (h *TripHandler) NearbyDrivers(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	drivers, err := h.drivers.NearbyForRequest(r.Context(), callerFrom(r), id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewNearbyDriverDTOs(drivers))
}

// CreateOffer godoc
//
//	@Summary	Bid on a request
//	@Tags		Offers
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Request id"
//	@Param		request	body		dto.CreateOfferDTO	true	"Offer"
//	@Success	201		{object}	dto.OfferDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	403		{object}	utils.Response
//	@Failure	409		{object}	utils.Response
//	@Router		/client-requests/{id}/offers [post]
func (h *TripHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.CreateOfferDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	offer, err := h.offers.CreateOffer(r.Context(), callerFrom(r).ID, id, req.FareOffer)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOfferDTO(offer))
}

// AcceptOffer godoc
//
//	@Summary	Accept a driver's offer
//	@Tags		Offers
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id		path		int	true	"Request id"
//	@Param		offerID	path		int	true	"Offer id"
//	@Success	200		{object}	dto.ClientRequestDTO
//	@Failure	403		{object}	utils.Response
//	@Failure	404		{object}	utils.Response
//	@Failure	409		{object}	utils.Response
//	@Router		/client-requests/{id}/offers/{offerID}/accept [post]
func (h *TripHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	offerID, err := utils.PathInt(r, "offerID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	cr, err := h.trips.AcceptOffer(r.Context(), callerFrom(r).ID, id, offerID)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClientRequestDTO(cr))
}

// UpdateStatus godoc
//
//	@Summary	Advance the trip to its next status
//	@Tags		Trips
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Request id"
//	@Param		request	body		dto.UpdateStatusDTO	true	"Next status"
//	@Success	200		{object}	dto.ClientRequestDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	403		{object}	utils.Response
//	@Failure	409		{object}	utils.Response
//	@Router		/client-requests/{id}/status [put]
func (h *TripHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cr, err := h.trips.Advance(r.Context(), callerFrom(r).ID, id, req.Status)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClientRequestDTO(cr))
}

// Cancel godoc
//
//	@Summary	Cancel a trip
//	@Tags		Trips
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Request id"
//	@Success	200	{object}	dto.MessageDTO
//	@Failure	400	{object}	utils.Response
//	@Failure	403	{object}	utils.Response
//	@Router		/client-requests/{id}/cancel [post]
func (h *TripHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.trips.Cancel(r.Context(), callerFrom(r), id); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageDTO{Message: "Trip cancelled"})
}

// Pay godoc
//
//	@Summary	Pay a finished trip
//	@Tags		Trips
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Request id"
//	@Success	200	{object}	dto.ClientRequestDTO
//	@Failure	400	{object}	utils.Response
//	@Failure	402	{object}	utils.Response	"Insufficient balance"
//	@Failure	403	{object}	utils.Response
//	@Router		/client-requests/{id}/pay [post]
func (h *TripHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	cr, err := h.trips.Pay(r.Context(), callerFrom(r).ID, id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewClientRequestDTO(cr))
}

// Rate godoc
//
//	@Summary	Rate the other party of a paid trip
//	@Tags		Trips
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Request id"
//	@Param		request	body		dto.RatingDTO	true	"Score 1..5"
//	@Success	200		{object}	dto.MessageDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	409		{object}	utils.Response
//	@Router		/client-requests/{id}/rating [post]
func (h *TripHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.RatingDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.trips.Rate(r.Context(), callerFrom(r), id, req.Score); err != nil {
		httperr.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageDTO{Message: "Rating saved"})
}
