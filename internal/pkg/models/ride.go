package models

import (
	"time"
)

// RideStatus represents the status of a ride. There is no persisted
// "pending" state: a ride record only exists once a driver accepts.
type RideStatus string

const (
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Ride represents a ride record, created at acceptance time
type Ride struct {
	RideID    string         `json:"ride_id" db:"ride_id"`
	RiderID   string         `json:"rider_id" db:"rider_id"`
	DriverID  string         `json:"driver_id" db:"driver_id"`
	StandID   string         `json:"stand_id" db:"stand_id"`
	Status    RideStatus     `json:"status" db:"status"`
	Pickup    Location       `json:"pickup"`
	Dropoff   Location       `json:"dropoff"`
	Fare      float64        `json:"fare" db:"fare"`
	StartedAt *TimedLocation `json:"started_at,omitempty"`
	EndedAt   *TimedLocation `json:"ended_at,omitempty"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// RideRequest asks the coordinator to dispatch a new ride
type RideRequest struct {
	RiderID   string   `json:"rider_id" validate:"required"`
	RiderName string   `json:"rider_name"`
	Pickup    Location `json:"pickup"`
	Dropoff   Location `json:"dropoff"`
	Fare      float64  `json:"fare"`
}

// VerifyRequest carries the OTP presented by the driver at pickup
type VerifyRequest struct {
	DriverID string   `json:"driver_id" validate:"required"`
	Code     string   `json:"code" validate:"required"`
	Location Location `json:"location"`
}

// CompleteRequest finalizes a ride at the dropoff point
type CompleteRequest struct {
	DriverID string   `json:"driver_id" validate:"required"`
	Location Location `json:"location"`
}

// QuoteRequest asks for a fare estimate between two points
type QuoteRequest struct {
	Pickup  Location `json:"pickup"`
	Dropoff Location `json:"dropoff"`
}

// Quote is a fare estimate derived from route distance
type Quote struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	Fare        float64 `json:"fare"`
}
