package domain

import "time"

const (
	RoleClient = "CLIENT"
	RoleDriver = "DRIVER"
	RoleAdmin  = "ADMIN"
)

const (
	DriverStatusPendingReview = "PENDING_REVIEW"
	DriverStatusApproved      = "APPROVED"
	DriverStatusRejected      = "REJECTED"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DriverInfo struct {
	ID                       int        `db:"id"`
	UserID                   int        `db:"user_id"`
	Status                   string     `db:"status"`
	Verified                 bool       `db:"verified"`
	Suspended                bool       `db:"suspended"`
	VehicleTypeID            *int       `db:"vehicle_type_id"`
	VehiclePlate             string     `db:"vehicle_plate"`
	VehicleBrand             string     `db:"vehicle_brand"`
	VehicleModel             string     `db:"vehicle_model"`
	VehicleColor             string     `db:"vehicle_color"`
	PendingRequestID         *int       `db:"pending_request_id"`
	PendingRequestAcceptedAt *time.Time `db:"pending_request_accepted_at"`
}

// Eligible reports whether the driver may publish a position and be matched.
func (d *DriverInfo) Eligible() bool {
	return d.Status == DriverStatusApproved && d.Verified && !d.Suspended
}

type ClientRequest struct {
	ID                     int       `db:"id"`
	ClientID               int       `db:"id_client"`
	DriverAssignedID       *int      `db:"id_driver_assigned"`
	AssignedBusyDriverID   *int      `db:"assigned_busy_driver_id"`
	Status                 string    `db:"status"`
	FareOffered            *float64  `db:"fare_offered"`
	FareAssigned           *float64  `db:"fare_assigned"`
	PickupDescription      string    `db:"pickup_description"`
	DestinationDescription string    `db:"destination_description"`
	Pickup                 Point     `db:"-"`
	Destination            Point     `db:"-"`
	ServiceTypeID          int       `db:"id_service_type"`
	TimeToPickup           *float64  `db:"time_to_pickup"`
	DistanceToPickup       *float64  `db:"distance_to_pickup"`
	ClientRating           *float64  `db:"client_rating"`
	DriverRating           *float64  `db:"driver_rating"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}

type DriverTripOffer struct {
	ID              int       `db:"id"`
	DriverID        int       `db:"id_driver"`
	ClientRequestID int       `db:"id_client_request"`
	FareOffer       float64   `db:"fare_offer"`
	Time            *float64  `db:"time"`
	Distance        *float64  `db:"distance"`
	CreatedAt       time.Time `db:"created_at"`
}

// OfferDetail is an offer enriched with the bidding driver's public profile.
type OfferDetail struct {
	DriverTripOffer
	DriverLogin   string
	VehiclePlate  string
	VehicleBrand  string
	VehicleModel  string
	VehicleColor  string
	AverageRating *float64
	Position      *Point
}

type DriverPosition struct {
	DriverID  int       `db:"driver_id"`
	Lat       float64   `db:"lat"`
	Lng       float64   `db:"lng"`
	Geohash   string    `db:"geohash"`
	UpdatedAt time.Time `db:"updated_at"`
}

type NearbyDriver struct {
	DriverID      int
	Login         string
	Lat           float64
	Lng           float64
	DistanceKm    float64
	VehicleTypeID *int
	VehiclePlate  string
}

type VerifyMount struct {
	UserID    int       `db:"user_id"`
	Mount     float64   `db:"mount"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Transaction struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	Income          float64   `db:"income"`
	Expense         float64   `db:"expense"`
	Type            string    `db:"type"`
	ClientRequestID *int      `db:"id_client_request"`
	IsConfirmed     bool      `db:"is_confirmed"`
	Description     string    `db:"description"`
	Date            time.Time `db:"date"`
}

// LedgerTotals are confirmed sums for one user.
type LedgerTotals struct {
	Income      float64
	Expense     float64
	BonusIncome float64
}

type Balance struct {
	Available    float64
	Withdrawable float64
	Mount        float64
}

type CompanyAccount struct {
	ID              int       `db:"id"`
	Income          float64   `db:"income"`
	Expense         float64   `db:"expense"`
	CashflowType    string    `db:"cashflow_type"`
	ClientRequestID *int      `db:"id_client_request"`
	Date            time.Time `db:"date"`
}

type CashflowTotal struct {
	CashflowType string
	Income       float64
	Expense      float64
}

type AuditLog struct {
	ID         string    `db:"id"`
	AdminID    int       `db:"admin_id"`
	Method     string    `db:"method"`
	Path       string    `db:"path"`
	Status     int       `db:"status"`
	DurationMs int64     `db:"duration_ms"`
	CreatedAt  time.Time `db:"created_at"`
}

// RouteEstimate is the travel time and distance between two points.
type RouteEstimate struct {
	DurationMin float64
	DistanceKm  float64
}
