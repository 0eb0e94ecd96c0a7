package stands

import (
	"context"

	"github.com/helloauto/dispatch/internal/pkg/models"
)

// StandUC defines the interface for stand business logic, including the
// queue-membership state machine and the nearest-stand lookup consumed
// by the dispatch coordinator.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/helloauto/dispatch/services/stands StandUC,Notifier
type StandUC interface {
	CreateStand(ctx context.Context, stand *models.Stand) (*models.Stand, error)
	UpdateStand(ctx context.Context, stand *models.Stand) (*models.Stand, error)
	DeleteStand(ctx context.Context, standID string) error
	GetStand(ctx context.Context, standID string) (*models.Stand, error)
	Search(ctx context.Context, req models.StandSearchRequest) ([]*models.NearbyStand, error)

	Join(ctx context.Context, standID, driverID string) error
	Leave(ctx context.Context, standID, driverID string) error
	Members(ctx context.Context, standID string) ([]*models.StandMember, error)

	// Toggle joins or leaves a stand's queue, enforcing the allocated
	// guard and the geofence. A geofence violation force-evicts the
	// driver regardless of the requested direction.
	Toggle(ctx context.Context, standID string, req models.ToggleRequest) (*models.QueueState, error)

	// FindNearest returns candidate stands ordered by proximity. An
	// empty result is a valid outcome, not an error.
	FindNearest(ctx context.Context, point models.Location) ([]*models.NearbyStand, error)

	// Queue returns a snapshot of a stand's queue in join order.
	Queue(standID string) *models.QueueState

	// Allocate atomically marks a driver as holding a ride and removes
	// them from their queue. At most one concurrent caller succeeds per
	// driver.
	Allocate(driverID string) error

	// Release clears a driver's allocated flag when their ride reaches
	// a terminal state.
	Release(driverID string)
}

// Notifier delivers roster events to stand members. Implemented by the
// websocket manager; offline members get the hub's buffered queue.
type Notifier interface {
	Notify(userID string, event string, data interface{}) error
}
