package rides

import (
	"context"
	"time"

	"github.com/helloauto/dispatch/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations.
// Status-changing methods are compare-and-set: they only apply when the
// ride is currently in the expected state and report ErrInvalidState
// otherwise.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/helloauto/dispatch/services/rides RideRepo,OTPRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	StartRide(ctx context.Context, rideID string, at models.TimedLocation) error
	CompleteRide(ctx context.Context, rideID string, at models.TimedLocation, fare float64) error
	CancelRide(ctx context.Context, rideID string) error
	ListByRider(ctx context.Context, riderID string, limit int) ([]*models.Ride, error)
	ListByDriver(ctx context.Context, driverID string, limit int) ([]*models.Ride, error)
}

// OTPRepo stores ride verification codes with a bounded lifetime. A
// code that cannot be found is indistinguishable from one that expired.
type OTPRepo interface {
	StoreOTP(ctx context.Context, rideID, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, rideID string) (string, error)
	DeleteOTP(ctx context.Context, rideID string) error
}
