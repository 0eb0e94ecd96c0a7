package gateway

import (
	"context"

	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/pkg/retry"
)

// publisher is the slice of the NSQ producer the gateway needs
type publisher interface {
	Publish(topic string, message interface{}) error
}

// RideGW publishes ride lifecycle events to NSQ with retries
type RideGW struct {
	producer publisher
	retrier  *retry.Retrier
}

// NewRideGW creates a new ride gateway
func NewRideGW(producer publisher) *RideGW {
	return &RideGW{
		producer: producer,
		retrier:  retry.NewWithDefaults(),
	}
}

// PublishRideAccepted announces a driver taking a ride
func (g *RideGW) PublishRideAccepted(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.TopicRideAccepted, event)
}

// PublishRideStarted announces a verified pickup
func (g *RideGW) PublishRideStarted(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.TopicRideStarted, event)
}

// PublishRideCompleted announces a finished ride with its final fare
func (g *RideGW) PublishRideCompleted(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.TopicRideCompleted, event)
}

// PublishRideCancelled announces an aborted ride
func (g *RideGW) PublishRideCancelled(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.TopicRideCancelled, event)
}

func (g *RideGW) publish(ctx context.Context, topic string, event models.RideEvent) error {
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(topic, event)
	})
	if err != nil {
		logger.Error("Failed to publish ride event",
			logger.String("topic", topic),
			logger.String("ride_id", event.RideID),
			logger.Err(err))
		return err
	}
	return nil
}
