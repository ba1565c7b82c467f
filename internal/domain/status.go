package domain

import "slices"

const (
	StatusCreated    = "CREATED"
	StatusPending    = "PENDING"
	StatusAccepted   = "ACCEPTED"
	StatusOnTheWay   = "ON_THE_WAY"
	StatusArrived    = "ARRIVED"
	StatusTravelling = "TRAVELLING"
	StatusFinished   = "FINISHED"
	StatusPaid       = "PAID"
	StatusCancelled  = "CANCELLED"
)

// Composite driver states derived from the active trip and the pending slot.
const (
	DriverAvailable       = "available"
	DriverBusyAvailable   = "busy_available"
	DriverBusyWithPending = "busy_with_pending"
	DriverPendingOnly     = "pending_only"
)

// ActiveStatuses are the states in which the assigned driver is on a trip.
var ActiveStatuses = []string{StatusOnTheWay, StatusArrived, StatusTravelling}

// driverProgression is the strict order the assigned driver walks through.
var driverProgression = map[string]string{
	StatusAccepted:   StatusOnTheWay,
	StatusOnTheWay:   StatusArrived,
	StatusArrived:    StatusTravelling,
	StatusTravelling: StatusFinished,
}

// CancellableStatuses are the states a participant may still cancel from.
var CancellableStatuses = []string{StatusCreated, StatusPending, StatusAccepted, StatusOnTheWay, StatusArrived}

// NextDriverStatus returns the successor of from on the driver's path.
func NextDriverStatus(from string) (string, bool) {
	next, ok := driverProgression[from]
	return next, ok
}

func IsCancellable(status string) bool {
	return slices.Contains(CancellableStatuses, status)
}

func IsTerminal(status string) bool {
	return status == StatusPaid || status == StatusCancelled
}

// ComposeDriverStatus folds the two driver flags into one label.
func ComposeDriverStatus(hasActiveTrip, hasPending bool) string {
	switch {
	case hasActiveTrip && hasPending:
		return DriverBusyWithPending
	case hasActiveTrip:
		return DriverBusyAvailable
	case hasPending:
		return DriverPendingOnly
	default:
		return DriverAvailable
	}
}
