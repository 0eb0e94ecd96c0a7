package models

import "time"

// Location represents a geographical point
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// IsZero reports whether the location carries no coordinates
func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0
}

// TimedLocation is a location snapshot taken at a known instant,
// recorded when a ride starts and when it ends
type TimedLocation struct {
	Location Location  `json:"location"`
	Time     time.Time `json:"time"`
}

// LocationUpdate represents a ride-scoped location ping from either party
type LocationUpdate struct {
	RideID   string   `json:"ride_id"`
	Location Location `json:"location"`
}
