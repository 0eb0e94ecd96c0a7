package rides

import (
	"context"

	"github.com/helloauto/dispatch/internal/pkg/models"
)

// RideGW publishes ride lifecycle events for downstream consumers
// (billing, analytics). Publishing is best effort with retries; a
// failed publish never blocks the ride itself.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/helloauto/dispatch/services/rides RideGW
type RideGW interface {
	PublishRideAccepted(ctx context.Context, event models.RideEvent) error
	PublishRideStarted(ctx context.Context, event models.RideEvent) error
	PublishRideCompleted(ctx context.Context, event models.RideEvent) error
	PublishRideCancelled(ctx context.Context, event models.RideEvent) error
}
