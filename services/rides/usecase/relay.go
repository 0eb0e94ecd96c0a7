package usecase

import (
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/pkg/observability"
)

// armRelay binds the ride's parties for location forwarding. The relay
// lives from acceptance until the ride reaches a terminal state.
func (uc *rideUC) armRelay(ride *models.Ride) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.relays[ride.RideID] = &relaySession{
		riderID:  ride.RiderID,
		driverID: ride.DriverID,
		dropoff:  ride.Dropoff,
	}
}

// terminateRelay tears a ride's relay down and tells both parties to
// release their listeners. Safe to call for rides never armed.
func (uc *rideUC) terminateRelay(rideID string) {
	uc.mu.Lock()
	session, ok := uc.relays[rideID]
	delete(uc.relays, rideID)
	uc.mu.Unlock()
	if !ok {
		return
	}

	terminated := models.RelayTerminated{RideID: rideID}
	for _, userID := range []string{session.riderID, session.driverID} {
		if err := uc.hub.SendToUser(userID, constants.EventRelayTerminated, terminated); err != nil {
			logger.Debug("Relay party unreachable at teardown",
				logger.String("user_id", userID),
				logger.String("ride_id", rideID))
		}
	}
}

// HandleLocationUpdate forwards a ride-scoped position from one party
// to the other. Pings for unknown or torn-down rides get a
// ride_not_found event back; pings from strangers are dropped.
func (uc *rideUC) HandleLocationUpdate(senderID string, update models.LocationUpdate) {
	if update.Location.IsZero() {
		observability.RelayDropsTotal.Inc()
		return
	}

	uc.mu.Lock()
	session, ok := uc.relays[update.RideID]
	uc.mu.Unlock()

	if !ok {
		observability.RelayDropsTotal.Inc()
		if err := uc.hub.SendToUser(senderID, constants.EventRideNotFound, models.RideNotFound{
			Message: "no active ride with that id",
		}); err != nil {
			logger.Debug("Failed to answer unknown-ride ping",
				logger.String("user_id", senderID))
		}
		return
	}

	var peer string
	switch senderID {
	case session.driverID:
		peer = session.riderID
	case session.riderID:
		peer = session.driverID
	default:
		// Not a party to this ride
		observability.RelayDropsTotal.Inc()
		return
	}

	forwarded := models.RideLocationUpdate{
		RideID:      update.RideID,
		Location:    update.Location,
		Destination: session.dropoff,
	}
	if err := uc.hub.SendToUser(peer, constants.EventRideLocationUpdate, forwarded); err != nil {
		observability.RelayDropsTotal.Inc()
		return
	}
	observability.RelayForwardsTotal.Inc()
}
