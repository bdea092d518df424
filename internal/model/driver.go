package model

import "time"

// Driver mirrors the 'drivers' table. A driver profile is operational data
// (vehicle, availability, rating) and is separate from any DRIVER-role user
// account that may manage it.
type Driver struct {
	ID          uint64    // drivers.id
	Name        string    // drivers.name
	VehicleType string    // drivers.vehicle_type (e.g. "Sedan", "SUV", "Truck")
	IsAvailable bool      // drivers.is_available
	Rating      float64   // drivers.rating
	CreatedAt   time.Time // drivers.created_at
}

// DriverPatch carries the optional fields of a driver update. Nil pointers
// mean "leave unchanged".
type DriverPatch struct {
	Name        *string  `json:"name"`
	VehicleType *string  `json:"vehicle_type"`
	IsAvailable *bool    `json:"is_available"`
	Rating      *float64 `json:"rating"`
}
