// Package policy holds the single visibility rule shared by offers and matching.
package policy

import (
	"fmt"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

// Caller is the authenticated identity acting on a resource.
type Caller struct {
	ID   int
	Role string
}

func (c Caller) IsDriver() bool { return c.Role == domain.RoleDriver }
func (c Caller) IsClient() bool { return c.Role == domain.RoleClient }
func (c Caller) IsAdmin() bool  { return c.Role == domain.RoleAdmin }

// Scope describes what part of a request-bound listing the caller may see.
type Scope struct {
	// OnlyDriverID restricts the listing to one driver's rows when set.
	OnlyDriverID *int
}

// RequestScope applies the rule to a request: a driver sees only their own
// rows, a client must own the request and sees everything, anyone else is
// rejected.
func RequestScope(caller Caller, req *domain.ClientRequest) (Scope, error) {
	switch caller.Role {
	case domain.RoleDriver:
		id := caller.ID
		return Scope{OnlyDriverID: &id}, nil
	case domain.RoleClient:
		if req.ClientID != caller.ID {
			return Scope{}, fmt.Errorf("%w: request %d belongs to another client", domain.ErrForbidden, req.ID)
		}
		return Scope{}, nil
	default:
		return Scope{}, fmt.Errorf("%w: role %q cannot view request resources", domain.ErrForbidden, caller.Role)
	}
}

// CanViewRequest reports whether caller may read the request itself.
func CanViewRequest(caller Caller, req *domain.ClientRequest) bool {
	switch caller.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleClient:
		return req.ClientID == caller.ID
	case domain.RoleDriver:
		if req.Status == domain.StatusCreated || req.Status == domain.StatusPending {
			return true
		}
		return isDriverOf(caller.ID, req)
	}
	return false
}

// IsParticipant reports whether caller is the owner or the assigned driver.
func IsParticipant(caller Caller, req *domain.ClientRequest) bool {
	if caller.IsClient() {
		return req.ClientID == caller.ID
	}
	if caller.IsDriver() {
		return isDriverOf(caller.ID, req)
	}
	return false
}

func isDriverOf(driverID int, req *domain.ClientRequest) bool {
	if req.DriverAssignedID != nil && *req.DriverAssignedID == driverID {
		return true
	}
	return req.AssignedBusyDriverID != nil && *req.AssignedBusyDriverID == driverID
}
