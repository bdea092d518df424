package model

import (
	"strings"
	"time"
)

// RideStatus enumerates the lifecycle of a ride request.
type RideStatus string

const (
	RideRequested RideStatus = "REQUESTED" // initial status on creation
	RideAccepted  RideStatus = "ACCEPTED"
	RideCompleted RideStatus = "COMPLETED"
	RideCancelled RideStatus = "CANCELLED"
)

// ParseRideStatus normalizes raw input into a RideStatus and reports whether
// it named a known status.
func ParseRideStatus(raw string) (RideStatus, bool) {
	switch RideStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case RideRequested:
		return RideRequested, true
	case RideAccepted:
		return RideAccepted, true
	case RideCompleted:
		return RideCompleted, true
	case RideCancelled:
		return RideCancelled, true
	}
	return "", false
}

// Ride mirrors the 'rides' table. DriverID is zero until a driver accepts
// the ride.
type Ride struct {
	ID          uint64     // rides.id
	CustomerID  uint64     // rides.customer_id (references users.id)
	DriverID    uint64     // rides.driver_id (references drivers.id, 0 if unassigned)
	Pickup      string     // rides.pickup
	Destination string     // rides.destination
	Status      RideStatus // rides.status
	RequestedAt time.Time  // rides.requested_at
}
