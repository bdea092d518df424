// Package queue defines message payloads exchanged over the message broker.
package queue

// RideRequestedEvent is published when a customer creates a ride request.
// It carries enough for downstream consumers (dispatch, analytics, audit)
// to act without querying the primary database.
type RideRequestedEvent struct {
	RideID      uint64 `json:"ride_id"`
	CustomerID  uint64 `json:"customer_id"`
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
	RequestedAt string `json:"requested_at"`
}
