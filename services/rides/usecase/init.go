package usecase

import (
	"sync"

	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/services/rides"
)

// pendingOffer is the single outstanding offer a driver can hold. The
// response channel is buffered so the websocket loop never blocks on a
// coordinator that already moved on.
type pendingOffer struct {
	rideID string
	resp   chan models.RideResponse
}

// relaySession binds a ride's two parties for location forwarding
type relaySession struct {
	riderID  string
	driverID string
	dropoff  models.Location
}

// rideUC implements the dispatch coordinator, the ride lifecycle and
// the location relay
type rideUC struct {
	cfg     models.DispatchConfig
	repo    rides.RideRepo
	otpRepo rides.OTPRepo
	gw      rides.RideGW
	hub     rides.Hub
	stands  rides.StandFinder
	queue   rides.DriverQueue

	mu     sync.Mutex
	offers map[string]*pendingOffer // driverID -> outstanding offer
	relays map[string]*relaySession // rideID -> armed relay
}

// NewRideUC creates a new ride usecase
func NewRideUC(
	cfg models.DispatchConfig,
	repo rides.RideRepo,
	otpRepo rides.OTPRepo,
	gw rides.RideGW,
	hub rides.Hub,
	stands rides.StandFinder,
	queue rides.DriverQueue,
) rides.RideUC {
	return &rideUC{
		cfg:     cfg,
		repo:    repo,
		otpRepo: otpRepo,
		gw:      gw,
		hub:     hub,
		stands:  stands,
		queue:   queue,
		offers:  make(map[string]*pendingOffer),
		relays:  make(map[string]*relaySession),
	}
}
