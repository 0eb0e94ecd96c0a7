package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// RideRepo persists ride records in Postgres
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

// rideRow is the flat scan target for the rides table
type rideRow struct {
	RideID     string            `db:"ride_id"`
	RiderID    string            `db:"rider_id"`
	DriverID   string            `db:"driver_id"`
	StandID    string            `db:"stand_id"`
	Status     models.RideStatus `db:"status"`
	PickupLat  float64           `db:"pickup_latitude"`
	PickupLng  float64           `db:"pickup_longitude"`
	DropoffLat float64           `db:"dropoff_latitude"`
	DropoffLng float64           `db:"dropoff_longitude"`
	Fare       float64           `db:"fare"`
	StartedAt  sql.NullTime      `db:"started_at"`
	StartedLat sql.NullFloat64   `db:"started_latitude"`
	StartedLng sql.NullFloat64   `db:"started_longitude"`
	EndedAt    sql.NullTime      `db:"ended_at"`
	EndedLat   sql.NullFloat64   `db:"ended_latitude"`
	EndedLng   sql.NullFloat64   `db:"ended_longitude"`
	CreatedAt  time.Time         `db:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at"`
}

func (row *rideRow) toModel() *models.Ride {
	ride := &models.Ride{
		RideID:   row.RideID,
		RiderID:  row.RiderID,
		DriverID: row.DriverID,
		StandID:  row.StandID,
		Status:   row.Status,
		Pickup: models.Location{
			Latitude:  row.PickupLat,
			Longitude: row.PickupLng,
		},
		Dropoff: models.Location{
			Latitude:  row.DropoffLat,
			Longitude: row.DropoffLng,
		},
		Fare:      row.Fare,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.StartedAt.Valid {
		ride.StartedAt = &models.TimedLocation{
			Location: models.Location{
				Latitude:  row.StartedLat.Float64,
				Longitude: row.StartedLng.Float64,
			},
			Time: row.StartedAt.Time,
		}
	}
	if row.EndedAt.Valid {
		ride.EndedAt = &models.TimedLocation{
			Location: models.Location{
				Latitude:  row.EndedLat.Float64,
				Longitude: row.EndedLng.Float64,
			},
			Time: row.EndedAt.Time,
		}
	}
	return ride
}

const rideColumns = `
	ride_id, rider_id, driver_id, stand_id, status,
	pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	fare, started_at, started_latitude, started_longitude,
	ended_at, ended_latitude, ended_longitude, created_at, updated_at
`

// CreateRide inserts a ride record at acceptance time
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (ride_id, rider_id, driver_id, stand_id, status,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			fare, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	now := time.Now()
	ride.CreatedAt = now
	ride.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		ride.RideID,
		ride.RiderID,
		ride.DriverID,
		ride.StandID,
		ride.Status,
		ride.Pickup.Latitude,
		ride.Pickup.Longitude,
		ride.Dropoff.Latitude,
		ride.Dropoff.Longitude,
		ride.Fare,
		ride.CreatedAt,
		ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	var row rideRow
	query := `SELECT ` + rideColumns + ` FROM rides WHERE ride_id = $1`
	if err := r.db.GetContext(ctx, &row, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return row.toModel(), nil
}

// StartRide moves an accepted ride to in_progress, recording where and
// when the pickup happened. Compare-and-set on the current status.
func (r *RideRepo) StartRide(ctx context.Context, rideID string, at models.TimedLocation) error {
	query := `
		UPDATE rides
		SET status = $2, started_at = $3, started_latitude = $4, started_longitude = $5, updated_at = $6
		WHERE ride_id = $1 AND status = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		rideID,
		models.RideStatusInProgress,
		at.Time,
		at.Location.Latitude,
		at.Location.Longitude,
		time.Now(),
		models.RideStatusAccepted,
	)
	if err != nil {
		return fmt.Errorf("failed to start ride: %w", err)
	}
	return r.checkTransition(ctx, result, rideID)
}

// CompleteRide moves an in_progress ride to completed with the final
// fare and the dropoff snapshot
func (r *RideRepo) CompleteRide(ctx context.Context, rideID string, at models.TimedLocation, fare float64) error {
	query := `
		UPDATE rides
		SET status = $2, ended_at = $3, ended_latitude = $4, ended_longitude = $5, fare = $6, updated_at = $7
		WHERE ride_id = $1 AND status = $8
	`
	result, err := r.db.ExecContext(ctx, query,
		rideID,
		models.RideStatusCompleted,
		at.Time,
		at.Location.Latitude,
		at.Location.Longitude,
		fare,
		time.Now(),
		models.RideStatusInProgress,
	)
	if err != nil {
		return fmt.Errorf("failed to complete ride: %w", err)
	}
	return r.checkTransition(ctx, result, rideID)
}

// CancelRide aborts a ride that has not reached a terminal state
func (r *RideRepo) CancelRide(ctx context.Context, rideID string) error {
	query := `
		UPDATE rides
		SET status = $2, updated_at = $3
		WHERE ride_id = $1 AND status IN ($4, $5)
	`
	result, err := r.db.ExecContext(ctx, query,
		rideID,
		models.RideStatusCancelled,
		time.Now(),
		models.RideStatusAccepted,
		models.RideStatusInProgress,
	)
	if err != nil {
		return fmt.Errorf("failed to cancel ride: %w", err)
	}
	return r.checkTransition(ctx, result, rideID)
}

// ListByRider returns a rider's rides, newest first
func (r *RideRepo) ListByRider(ctx context.Context, riderID string, limit int) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE rider_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(ctx, query, riderID, limit)
}

// ListByDriver returns a driver's rides, newest first
func (r *RideRepo) ListByDriver(ctx context.Context, driverID string, limit int) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(ctx, query, driverID, limit)
}

func (r *RideRepo) list(ctx context.Context, query, id string, limit int) ([]*models.Ride, error) {
	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, id, limit); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	rides := make([]*models.Ride, 0, len(rows))
	for i := range rows {
		rides = append(rides, rows[i].toModel())
	}
	return rides, nil
}

// checkTransition distinguishes a missing ride from an illegal state
// change when a compare-and-set update touched no rows
func (r *RideRepo) checkTransition(ctx context.Context, result sql.Result, rideID string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows > 0 {
		return nil
	}
	if _, err := r.GetRide(ctx, rideID); err != nil {
		return err
	}
	return fmt.Errorf("%w: ride %s is not in the required status", apperr.ErrInvalidState, rideID)
}
