package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/pkg/observability"
	"github.com/helloauto/dispatch/internal/utils"
)

const otpDigits = 4

// Dispatch walks nearby stands offering the ride to one queued driver
// at a time, in queue order. The first driver to accept gets the ride
// and leaves the queue; a declined, timed out or disconnected driver
// keeps their place and the walk moves on. Exhausting every candidate
// is a valid outcome.
func (uc *rideUC) Dispatch(ctx context.Context, req models.RideRequest) (*models.Ride, bool, error) {
	if req.RiderID == "" {
		return nil, false, fmt.Errorf("%w: rider id is required", apperr.ErrValidation)
	}
	if req.Pickup.IsZero() || req.Dropoff.IsZero() {
		return nil, false, fmt.Errorf("%w: pickup and dropoff are required", apperr.ErrInvalidLocation)
	}

	start := time.Now()
	defer func() {
		observability.DispatchLatency.Observe(time.Since(start).Seconds())
	}()

	fare := req.Fare
	if fare == 0 {
		quote, err := uc.Quote(models.QuoteRequest{Pickup: req.Pickup, Dropoff: req.Dropoff})
		if err != nil {
			return nil, false, err
		}
		fare = quote.Fare
	}

	nearby, err := uc.stands.FindNearest(ctx, req.Pickup)
	if err != nil {
		return nil, false, err
	}

	for _, stand := range nearby {
		state := uc.queue.Queue(stand.ID.String())
		for _, entry := range state.Entries {
			if err := ctx.Err(); err != nil {
				return nil, false, err
			}
			if !uc.hub.IsOnline(entry.DriverID) {
				continue
			}

			// Each offer carries its own ride identity and code, so a
			// driver who saw an earlier offer holds nothing usable.
			rideID := uuid.New().String()
			code, err := utils.GenerateOTP(otpDigits)
			if err != nil {
				return nil, false, err
			}
			offer := models.RideOffer{
				RideID:  rideID,
				Rider:   models.RiderSummary{ID: req.RiderID, Name: req.RiderName},
				Pickup:  req.Pickup,
				Dropoff: req.Dropoff,
				Fare:    fare,
			}

			if !uc.offerTo(ctx, entry.DriverID, offer) {
				continue
			}

			// The queue entry is consumed on acceptance only; a driver
			// who did not accept keeps their place. Losing the claim to
			// a concurrent dispatch counts as a timeout.
			if err := uc.queue.Allocate(entry.DriverID); err != nil {
				logger.Debug("Driver claimed by a concurrent dispatch",
					logger.String("driver_id", entry.DriverID))
				continue
			}

			ride, err := uc.acceptRide(ctx, req, rideID, code, entry.DriverID, stand.ID.String(), fare)
			if err != nil {
				uc.queue.Release(entry.DriverID)
				return nil, false, err
			}
			observability.DispatchTotal.WithLabelValues("matched").Inc()
			return ride, true, nil
		}
	}

	observability.DispatchTotal.WithLabelValues("no_match").Inc()
	uc.notifyRider(req.RiderID, constants.EventRideNotFound, models.RideNotFound{
		Message: "no driver available right now",
	})
	return nil, false, nil
}

// offerTo sends the offer to a single driver and waits for the first of
// an answer, the offer timeout or the driver's channel going away
func (uc *rideUC) offerTo(ctx context.Context, driverID string, offer models.RideOffer) bool {
	pending := &pendingOffer{
		rideID: offer.RideID,
		resp:   make(chan models.RideResponse, 1),
	}
	uc.mu.Lock()
	uc.offers[driverID] = pending
	uc.mu.Unlock()
	defer func() {
		uc.mu.Lock()
		delete(uc.offers, driverID)
		uc.mu.Unlock()
	}()

	if err := uc.hub.SendToUser(driverID, constants.EventRideRequest, offer); err != nil {
		logger.Debug("Driver unreachable for offer",
			logger.String("driver_id", driverID),
			logger.Err(err))
		observability.OffersTotal.WithLabelValues("disconnect").Inc()
		return false
	}

	disconnected, release := uc.hub.WatchDisconnect(driverID)
	defer release()

	timer := time.NewTimer(uc.cfg.OfferTimeout)
	defer timer.Stop()

	select {
	case resp := <-pending.resp:
		if resp.Accepted {
			observability.OffersTotal.WithLabelValues("accepted").Inc()
			return true
		}
		observability.OffersTotal.WithLabelValues("declined").Inc()
		return false
	case <-timer.C:
		observability.OffersTotal.WithLabelValues("timeout").Inc()
		return false
	case <-disconnected:
		observability.OffersTotal.WithLabelValues("disconnect").Inc()
		return false
	case <-ctx.Done():
		return false
	}
}

// HandleRideResponse resolves a driver's pending offer. Late answers
// and answers for a different ride are dropped.
func (uc *rideUC) HandleRideResponse(resp models.RideResponse) {
	uc.mu.Lock()
	pending, ok := uc.offers[resp.DriverID]
	uc.mu.Unlock()

	if !ok || pending.rideID != resp.RideID {
		logger.Debug("Dropping stale ride response",
			logger.String("driver_id", resp.DriverID),
			logger.String("ride_id", resp.RideID))
		return
	}

	select {
	case pending.resp <- resp:
	default:
		// Already resolved
	}
}

// acceptRide persists the ride, stores the offer's code, arms the
// relay and tells both parties what happens next
func (uc *rideUC) acceptRide(ctx context.Context, req models.RideRequest, rideID, code, driverID, standID string, fare float64) (*models.Ride, error) {
	ride := &models.Ride{
		RideID:   rideID,
		RiderID:  req.RiderID,
		DriverID: driverID,
		StandID:  standID,
		Status:   models.RideStatusAccepted,
		Pickup:   req.Pickup,
		Dropoff:  req.Dropoff,
		Fare:     fare,
	}
	if err := uc.repo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	if err := uc.otpRepo.StoreOTP(ctx, rideID, code, uc.cfg.OTPTTL); err != nil {
		return nil, err
	}

	uc.armRelay(ride)

	uc.notifyRider(req.RiderID, constants.EventRideAccepted, models.RideAccepted{
		RideID: rideID,
		Driver: models.RiderSummary{ID: driverID},
	})
	uc.notifyRider(req.RiderID, constants.EventOTPGenerated, models.OTPGenerated{Code: code})

	if err := uc.hub.SendToUser(driverID, constants.EventStartLocationSharing, models.StartLocationSharing{
		RideID: rideID,
		Rider:  models.RiderSummary{ID: req.RiderID, Name: req.RiderName},
	}); err != nil {
		logger.Warn("Failed to instruct driver to share location",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	if err := uc.gw.PublishRideAccepted(ctx, models.RideEvent{
		RideID:   rideID,
		RiderID:  req.RiderID,
		DriverID: driverID,
		Status:   models.RideStatusAccepted,
		Fare:     fare,
	}); err != nil {
		logger.Warn("Failed to publish ride accepted event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	logger.Info("Ride accepted",
		logger.String("ride_id", rideID),
		logger.String("rider_id", req.RiderID),
		logger.String("driver_id", driverID),
		logger.String("stand_id", standID))
	return ride, nil
}

// notifyRider is best-effort delivery to the rider, buffered when the
// rider is offline
func (uc *rideUC) notifyRider(riderID, event string, data interface{}) {
	if err := uc.hub.Notify(riderID, event, data); err != nil {
		logger.Warn("Failed to notify rider",
			logger.String("rider_id", riderID),
			logger.String("event", event),
			logger.Err(err))
	}
}
