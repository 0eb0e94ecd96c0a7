package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/utils"
)

const historyLimit = 50

// VerifyOTP checks the code the rider read out to the driver. On a
// match the ride moves to in_progress, the code is burned and the relay
// keeps running for the trip itself.
func (uc *rideUC) VerifyOTP(ctx context.Context, rideID, driverID string, req models.VerifyRequest) (*models.Ride, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("%w: verification code is required", apperr.ErrValidation)
	}
	if req.Location.IsZero() {
		return nil, fmt.Errorf("%w: current location is required", apperr.ErrInvalidLocation)
	}

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, fmt.Errorf("%w: ride belongs to a different driver", apperr.ErrValidation)
	}
	if ride.Status != models.RideStatusAccepted {
		return nil, fmt.Errorf("%w: ride is %s", apperr.ErrInvalidState, ride.Status)
	}

	if dist := utils.DistanceMeters(req.Location, ride.Pickup); dist > uc.cfg.GeofenceM {
		return nil, fmt.Errorf("%w: %.0fm from pickup point", apperr.ErrOutOfRange, dist)
	}

	stored, err := uc.otpRepo.GetOTP(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != req.Code {
		// Expired and never-issued codes fail identically
		return nil, fmt.Errorf("%w: code does not match", apperr.ErrInvalidVerification)
	}

	at := models.TimedLocation{Location: req.Location, Time: time.Now()}
	if err := uc.repo.StartRide(ctx, rideID, at); err != nil {
		return nil, err
	}
	if err := uc.otpRepo.DeleteOTP(ctx, rideID); err != nil {
		logger.Warn("Failed to burn verification code",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	ride.Status = models.RideStatusInProgress
	ride.StartedAt = &at

	if err := uc.gw.PublishRideStarted(ctx, uc.rideEvent(ride)); err != nil {
		logger.Warn("Failed to publish ride started event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	logger.Info("Ride verified and started",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID))
	return ride, nil
}

// CompleteRide finalizes an in_progress ride at the dropoff point,
// tears the relay down and frees the driver
func (uc *rideUC) CompleteRide(ctx context.Context, rideID, driverID string, req models.CompleteRequest) (*models.Ride, error) {
	if req.Location.IsZero() {
		return nil, fmt.Errorf("%w: dropoff location is required", apperr.ErrInvalidLocation)
	}

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, fmt.Errorf("%w: ride belongs to a different driver", apperr.ErrValidation)
	}
	if ride.Status != models.RideStatusInProgress {
		return nil, fmt.Errorf("%w: ride is %s", apperr.ErrInvalidState, ride.Status)
	}

	at := models.TimedLocation{Location: req.Location, Time: time.Now()}
	if err := uc.repo.CompleteRide(ctx, rideID, at, ride.Fare); err != nil {
		return nil, err
	}

	ride.Status = models.RideStatusCompleted
	ride.EndedAt = &at

	uc.terminateRelay(rideID)
	uc.queue.Release(driverID)

	if err := uc.gw.PublishRideCompleted(ctx, uc.rideEvent(ride)); err != nil {
		logger.Warn("Failed to publish ride completed event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	logger.Info("Ride completed",
		logger.String("ride_id", rideID),
		logger.Float64("fare", ride.Fare))
	return ride, nil
}

// CancelRide aborts a ride that has not reached a terminal state
func (uc *rideUC) CancelRide(ctx context.Context, rideID string) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: ride is already %s", apperr.ErrInvalidState, ride.Status)
	}

	if err := uc.repo.CancelRide(ctx, rideID); err != nil {
		return nil, err
	}
	ride.Status = models.RideStatusCancelled

	if err := uc.otpRepo.DeleteOTP(ctx, rideID); err != nil {
		logger.Warn("Failed to discard verification code",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	uc.terminateRelay(rideID)
	uc.queue.Release(ride.DriverID)

	if err := uc.gw.PublishRideCancelled(ctx, uc.rideEvent(ride)); err != nil {
		logger.Warn("Failed to publish ride cancelled event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	logger.Info("Ride cancelled", logger.String("ride_id", rideID))
	return ride, nil
}

// GetRide retrieves a ride by ID
func (uc *rideUC) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return uc.repo.GetRide(ctx, rideID)
}

// RiderHistory returns a rider's rides, newest first
func (uc *rideUC) RiderHistory(ctx context.Context, riderID string) ([]*models.Ride, error) {
	return uc.repo.ListByRider(ctx, riderID, historyLimit)
}

// DriverHistory returns a driver's rides, newest first
func (uc *rideUC) DriverHistory(ctx context.Context, driverID string) ([]*models.Ride, error) {
	return uc.repo.ListByDriver(ctx, driverID, historyLimit)
}

// Quote estimates the fare from route distance. Duration assumes city
// traffic at roughly 30 km/h.
func (uc *rideUC) Quote(req models.QuoteRequest) (*models.Quote, error) {
	if req.Pickup.IsZero() || req.Dropoff.IsZero() {
		return nil, fmt.Errorf("%w: pickup and dropoff are required", apperr.ErrInvalidLocation)
	}

	km := utils.DistanceKm(req.Pickup, req.Dropoff)
	return &models.Quote{
		DistanceKm:  km,
		DurationMin: km * 2,
		Fare:        uc.cfg.BaseFare + uc.cfg.FarePerKm*km,
	}, nil
}

func (uc *rideUC) rideEvent(ride *models.Ride) models.RideEvent {
	return models.RideEvent{
		RideID:   ride.RideID,
		RiderID:  ride.RiderID,
		DriverID: ride.DriverID,
		Status:   ride.Status,
		Fare:     ride.Fare,
	}
}
