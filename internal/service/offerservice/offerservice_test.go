package offerservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/policy"
)

func NewMock(t *testing.T) (*Service, *MockOfferRepo, *MockRequestRepo, *MockDriverRepo, *MockEstimator) {
	ctrl := gomock.NewController(t)
	offerRepo := NewMockOfferRepo(ctrl)
	requestRepo := NewMockRequestRepo(ctrl)
	driverRepo := NewMockDriverRepo(ctrl)
	estimator := NewMockEstimator(ctrl)

	service := New(offerRepo, requestRepo, driverRepo, estimator)
	defer ctrl.Finish()
	return service, offerRepo, requestRepo, driverRepo, estimator
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func approved(id int) *domain.DriverInfo {
	return &domain.DriverInfo{UserID: id, Status: domain.DriverStatusApproved, Verified: true}
}

func TestCreateOffer(t *testing.T) {
	service, offerRepo, requestRepo, driverRepo, _ := NewMock(t)
	ctx := context.Background()
	open := &domain.ClientRequest{ID: 1, ClientID: 9, Status: domain.StatusCreated, FareOffered: floatPtr(20000)}

	tests := []struct {
		name        string
		fare        float64
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Above base fare",
			fare: 22000,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(approved(7), nil)
				requestRepo.EXPECT().FindByID(ctx, 1).Return(open, nil)
				offerRepo.EXPECT().Create(ctx, &domain.DriverTripOffer{DriverID: 7, ClientRequestID: 1, FareOffer: 22000}).
					Return(&domain.DriverTripOffer{ID: 3, DriverID: 7, ClientRequestID: 1, FareOffer: 22000}, nil)
			},
		},
		{
			name: "Equal to base fare",
			fare: 20000,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(approved(7), nil)
				requestRepo.EXPECT().FindByID(ctx, 1).Return(open, nil)
				offerRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.DriverTripOffer{ID: 3}, nil)
			},
		},
		{
			name:        "Fare beyond the money column",
			fare:        1e13,
			prepareMock: func() {},
			expectedErr: ErrInvalidFare,
		},
		{
			name:        "Fare with a fraction of a cent",
			fare:        20000.005,
			prepareMock: func() {},
			expectedErr: ErrInvalidFare,
		},
		{
			name: "Below base fare",
			fare: 19999.99,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(approved(7), nil)
				requestRepo.EXPECT().FindByID(ctx, 1).Return(open, nil)
			},
			expectedErr: ErrFareBelowBase,
		},
		{
			name: "Second offer from the same driver",
			fare: 21000,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(approved(7), nil)
				requestRepo.EXPECT().FindByID(ctx, 1).Return(open, nil)
				offerRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, fmt.Errorf("%w: duplicate", domain.ErrConflict))
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Request already accepted",
			fare: 21000,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(approved(7), nil)
				requestRepo.EXPECT().FindByID(ctx, 1).Return(&domain.ClientRequest{ID: 1, Status: domain.StatusAccepted, DriverAssignedID: intPtr(8), FareOffered: floatPtr(20000)}, nil)
			},
			expectedErr: ErrRequestNotOpen,
		},
		{
			name: "Reserved by another driver",
			fare: 21000,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(approved(7), nil)
				requestRepo.EXPECT().FindByID(ctx, 1).Return(&domain.ClientRequest{ID: 1, Status: domain.StatusPending, AssignedBusyDriverID: intPtr(8), FareOffered: floatPtr(20000)}, nil)
			},
			expectedErr: ErrRequestNotOpen,
		},
		{
			name: "No base fare",
			fare: 21000,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(approved(7), nil)
				requestRepo.EXPECT().FindByID(ctx, 1).Return(&domain.ClientRequest{ID: 1, Status: domain.StatusCreated}, nil)
			},
			expectedErr: ErrNoBaseFare,
		},
		{
			name: "Unknown driver",
			fare: 21000,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Missing request",
			fare: 21000,
			prepareMock: func() {
				driverRepo.EXPECT().FindByUserID(ctx, 7).Return(approved(7), nil)
				requestRepo.EXPECT().FindByID(ctx, 1).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			offer, err := service.CreateOffer(ctx, 7, 1, tt.fare)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, offer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, offer.ID)
		})
	}
}

func TestOfferOnPending(t *testing.T) {
	service, offerRepo, requestRepo, driverRepo, _ := NewMock(t)
	ctx := context.Background()

	holding := approved(7)
	holding.PendingRequestID = intPtr(1)
	driverRepo.EXPECT().FindByUserID(ctx, 7).Return(holding, nil).Times(2)
	requestRepo.EXPECT().FindByID(ctx, 1).Return(&domain.ClientRequest{
		ID: 1, Status: domain.StatusPending, AssignedBusyDriverID: intPtr(7), FareOffered: floatPtr(20000),
	}, nil)
	offerRepo.EXPECT().Create(ctx, &domain.DriverTripOffer{DriverID: 7, ClientRequestID: 1, FareOffer: 21000}).
		Return(&domain.DriverTripOffer{ID: 5}, nil)

	offer, err := service.OfferOnPending(ctx, 7, 21000)
	require.NoError(t, err)
	assert.Equal(t, 5, offer.ID)

	driverRepo.EXPECT().FindByUserID(ctx, 8).Return(approved(8), nil)
	_, err = service.OfferOnPending(ctx, 8, 21000)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestListOffersVisibility(t *testing.T) {
	service, offerRepo, requestRepo, _, _ := NewMock(t)
	ctx := context.Background()
	request := &domain.ClientRequest{ID: 1, ClientID: 9, Status: domain.StatusCreated, FareOffered: floatPtr(20000)}
	stored := []domain.OfferDetail{
		{DriverTripOffer: domain.DriverTripOffer{ID: 1, DriverID: 7, ClientRequestID: 1, FareOffer: 22000, Time: floatPtr(4), Distance: floatPtr(1.2)}},
		{DriverTripOffer: domain.DriverTripOffer{ID: 2, DriverID: 8, ClientRequestID: 1, FareOffer: 25000, Time: floatPtr(9), Distance: floatPtr(3)}},
	}
	list := func(_ context.Context, _ int, onlyDriverID *int) ([]domain.OfferDetail, error) {
		out := make([]domain.OfferDetail, 0)
		for _, o := range stored {
			if onlyDriverID == nil || *onlyDriverID == o.DriverID {
				out = append(out, o)
			}
		}
		return out, nil
	}

	tests := []struct {
		name        string
		caller      policy.Caller
		expectedIDs []int
		expectedErr error
	}{
		{name: "Owning client sees all", caller: policy.Caller{ID: 9, Role: domain.RoleClient}, expectedIDs: []int{1, 2}},
		{name: "Driver sees own offer", caller: policy.Caller{ID: 7, Role: domain.RoleDriver}, expectedIDs: []int{1}},
		{name: "Driver without an offer", caller: policy.Caller{ID: 11, Role: domain.RoleDriver}, expectedIDs: []int{}},
		{name: "Other client", caller: policy.Caller{ID: 10, Role: domain.RoleClient}, expectedErr: domain.ErrForbidden},
		{name: "Admin", caller: policy.Caller{ID: 1, Role: domain.RoleAdmin}, expectedErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo.EXPECT().FindByID(ctx, 1).Return(request, nil)
			if tt.expectedErr == nil {
				offerRepo.EXPECT().ListByRequest(ctx, 1, gomock.Any()).DoAndReturn(list)
			}

			offers, err := service.ListOffers(ctx, tt.caller, 1)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			ids := make([]int, 0, len(offers))
			for _, o := range offers {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestListOffersEstimates(t *testing.T) {
	service, offerRepo, requestRepo, _, estimator := NewMock(t)
	ctx := context.Background()
	pickup := domain.Point{Lat: 4.65, Lng: -74.05}
	request := &domain.ClientRequest{ID: 1, ClientID: 9, Status: domain.StatusCreated, Pickup: pickup}
	client := policy.Caller{ID: 9, Role: domain.RoleClient}
	near := domain.Point{Lat: 4.66, Lng: -74.06}
	far := domain.Point{Lat: 4.80, Lng: -74.20}

	requestRepo.EXPECT().FindByID(ctx, 1).Return(request, nil)
	offerRepo.EXPECT().ListByRequest(ctx, 1, nil).Return([]domain.OfferDetail{
		{DriverTripOffer: domain.DriverTripOffer{ID: 1, DriverID: 7}, Position: &near},
		{DriverTripOffer: domain.DriverTripOffer{ID: 2, DriverID: 8}, Position: &far},
		{DriverTripOffer: domain.DriverTripOffer{ID: 3, DriverID: 12}},
		{DriverTripOffer: domain.DriverTripOffer{ID: 4, DriverID: 13, Time: floatPtr(2), Distance: floatPtr(0.5)}, Position: &near},
	}, nil)
	estimator.EXPECT().Estimate(ctx, near, pickup).Return(&domain.RouteEstimate{DurationMin: 3, DistanceKm: 1.4}, nil)
	estimator.EXPECT().Estimate(ctx, far, pickup).Return(nil, errors.New("quota exceeded"))

	offers, err := service.ListOffers(ctx, client, 1)
	require.NoError(t, err)
	require.Len(t, offers, 4)

	assert.Equal(t, 3.0, *offers[0].Time)
	assert.Equal(t, 1.4, *offers[0].Distance)
	assert.Equal(t, 0.0, *offers[1].Time, "failed lookup falls back to zero")
	assert.Equal(t, 0.0, *offers[1].Distance)
	assert.Equal(t, 0.0, *offers[2].Time, "no position falls back to zero")
	assert.Equal(t, 2.0, *offers[3].Time, "stored figures are kept")
}
