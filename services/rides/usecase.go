package rides

import (
	"context"

	"github.com/helloauto/dispatch/internal/pkg/models"
)

// RideUC defines the interface for the dispatch coordinator, the ride
// lifecycle and the location relay.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/helloauto/dispatch/services/rides RideUC
type RideUC interface {
	// Dispatch walks nearby stands offering the ride to one queued
	// driver at a time. matched reports whether a driver accepted;
	// exhausting every candidate is a valid outcome, not an error.
	Dispatch(ctx context.Context, req models.RideRequest) (ride *models.Ride, matched bool, err error)

	// HandleRideResponse resolves a driver's pending offer. Answers
	// that arrive late or from the wrong driver are dropped.
	HandleRideResponse(resp models.RideResponse)

	// VerifyOTP checks the code the rider read out to the driver and,
	// on a match, moves the ride to in_progress.
	VerifyOTP(ctx context.Context, rideID, driverID string, req models.VerifyRequest) (*models.Ride, error)

	// CompleteRide finalizes the ride at the dropoff point and tears
	// the relay down.
	CompleteRide(ctx context.Context, rideID, driverID string, req models.CompleteRequest) (*models.Ride, error)

	// CancelRide aborts a non-terminal ride and tears the relay down.
	CancelRide(ctx context.Context, rideID string) (*models.Ride, error)

	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	RiderHistory(ctx context.Context, riderID string) ([]*models.Ride, error)
	DriverHistory(ctx context.Context, driverID string) ([]*models.Ride, error)

	// Quote estimates the fare between two points from route distance.
	Quote(req models.QuoteRequest) (*models.Quote, error)

	// HandleLocationUpdate forwards a ride-scoped position from one
	// party to the other. Pings for unknown or torn-down rides are
	// answered with a ride_not_found event and otherwise dropped.
	HandleLocationUpdate(senderID string, update models.LocationUpdate)
}
