package rides

import (
	"context"

	"github.com/helloauto/dispatch/internal/pkg/models"
)

// Hub is the presence surface the coordinator and the relay talk to.
// Implemented by the websocket manager.
//
//go:generate mockgen -destination=mocks/mock_hub.go -package=mocks github.com/helloauto/dispatch/services/rides Hub,StandFinder,DriverQueue
type Hub interface {
	// SendToUser delivers only to a live connection; nothing is
	// buffered. Offers and relay traffic must not outlive their moment.
	SendToUser(userID string, event string, data interface{}) error

	// Notify delivers to a live connection or buffers for the
	// participant's next connect.
	Notify(userID string, event string, data interface{}) error

	IsOnline(userID string) bool

	// WatchDisconnect reports the participant going away. The returned
	// channel is closed on disconnect (immediately when already
	// offline); the release function must be called when the watch is
	// done.
	WatchDisconnect(userID string) (<-chan struct{}, func())
}

// StandFinder resolves candidate stands for a pickup point,
// nearest first
type StandFinder interface {
	FindNearest(ctx context.Context, point models.Location) ([]*models.NearbyStand, error)
}

// DriverQueue is the queue surface the coordinator consumes: snapshot,
// atomic claim and release
type DriverQueue interface {
	Queue(standID string) *models.QueueState
	Allocate(driverID string) error
	Release(driverID string)
}
