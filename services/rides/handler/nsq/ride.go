package nsq

import (
	"context"
	"errors"

	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	nsqpkg "github.com/helloauto/dispatch/internal/pkg/nsq"
	"github.com/helloauto/dispatch/services/rides"
)

// RideHandler consumes ride requests arriving over NSQ, for riders
// submitting through channels other than the HTTP API
type RideHandler struct {
	rideUC   rides.RideUC
	cfg      models.NSQConfig
	consumer *nsqpkg.Consumer
}

// NewRideHandler creates a new NSQ ride handler
func NewRideHandler(rideUC rides.RideUC, cfg models.NSQConfig) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
		cfg:    cfg,
	}
}

// Start subscribes to the ride request topic
func (h *RideHandler) Start() error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicRideRequested,
		h.cfg.Channel,
		h.cfg.Address,
		h.handleRideRequested,
	)
	if err != nil {
		return err
	}
	if len(h.cfg.LookupAddresses) > 0 {
		if err := consumer.ConnectToLookupd(h.cfg.LookupAddresses); err != nil {
			return err
		}
	}
	h.consumer = consumer
	return nil
}

// Stop disconnects the consumer
func (h *RideHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

// handleRideRequested runs a dispatch attempt for a queued ride
// request. A no-match outcome finishes the message; only real failures
// requeue it.
func (h *RideHandler) handleRideRequested(body []byte) error {
	var req models.RideRequest
	if err := nsqpkg.UnmarshalMessage(body, &req); err != nil {
		logger.Error("Dropping malformed ride request", logger.Err(err))
		return nil
	}

	ride, matched, err := h.rideUC.Dispatch(context.Background(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) || errors.Is(err, apperr.ErrInvalidLocation) {
			// Requeueing a bad request cannot fix it
			logger.Error("Dropping invalid ride request", logger.Err(err))
			return nil
		}
		return err
	}
	if !matched {
		logger.Info("No driver available for queued ride request",
			logger.String("rider_id", req.RiderID))
		return nil
	}

	logger.Info("Queued ride request matched",
		logger.String("ride_id", ride.RideID),
		logger.String("driver_id", ride.DriverID))
	return nil
}
