package models

import (
	"time"

	"github.com/google/uuid"
)

// Stand represents a physical pickup stand with its own driver queue
type Stand struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  Location  `json:"location"`
	Geohash   string    `json:"geohash" db:"geohash"`
	CreatorID uuid.UUID `json:"creator_id" db:"creator_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StandMember represents a driver's membership at a stand
type StandMember struct {
	StandID  uuid.UUID `json:"stand_id" db:"stand_id"`
	DriverID uuid.UUID `json:"driver_id" db:"driver_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// NearbyStand is a stand returned by a proximity lookup, nearest first
type NearbyStand struct {
	Stand
	DistanceM float64 `json:"distance_m"`
}

// QueueEntry is one driver waiting in a stand's queue, in join order
type QueueEntry struct {
	DriverID string    `json:"driver_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// QueueState is a point-in-time snapshot of a stand's queue
type QueueState struct {
	StandID string       `json:"stand_id"`
	Entries []QueueEntry `json:"entries"`
}

// StandSearchRequest searches stands by name around the caller's position
type StandSearchRequest struct {
	Name     string   `json:"name" validate:"required"`
	Location Location `json:"location"`
}

// ToggleRequest asks to join or leave a stand's queue
type ToggleRequest struct {
	DriverID string   `json:"driver_id" validate:"required"`
	Join     bool     `json:"join"`
	Location Location `json:"location"`
}
