package http

import (
	"net/http"

	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/utils"
	"github.com/helloauto/dispatch/services/rides"
	"github.com/labstack/echo/v4"
)

// RideHandler handles HTTP requests for ride operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// dispatchResult is the response body for a dispatch attempt
type dispatchResult struct {
	Matched bool         `json:"matched"`
	Ride    *models.Ride `json:"ride,omitempty"`
}

// RequestRide runs a dispatch attempt for a rider. The call blocks
// while drivers are offered the ride; a no-match outcome is still a
// successful response.
func (h *RideHandler) RequestRide(c echo.Context) error {
	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	logger.Info("Received ride request",
		logger.String("rider_id", req.RiderID),
		logger.Any("pickup", req.Pickup))

	ride, matched, err := h.rideUC.Dispatch(c.Request().Context(), req)
	if err != nil {
		logger.Error("Dispatch attempt failed",
			logger.String("rider_id", req.RiderID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	message := "Ride matched"
	if !matched {
		message = "No driver available"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, dispatchResult{
		Matched: matched,
		Ride:    ride,
	})
}

// GetRide retrieves a ride by ID
func (h *RideHandler) GetRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride found", ride)
}

// VerifyRide checks the pickup OTP and starts the trip
func (h *RideHandler) VerifyRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	ride, err := h.rideUC.VerifyOTP(c.Request().Context(), rideID, req.DriverID, req)
	if err != nil {
		logger.Error("Failed to verify ride",
			logger.String("ride_id", rideID),
			logger.String("driver_id", req.DriverID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride verified", ride)
}

// CompleteRide finalizes a trip at the dropoff point
func (h *RideHandler) CompleteRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	var req models.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	ride, err := h.rideUC.CompleteRide(c.Request().Context(), rideID, req.DriverID, req)
	if err != nil {
		logger.Error("Failed to complete ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", ride)
}

// CancelRide aborts a non-terminal ride
func (h *RideHandler) CancelRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	ride, err := h.rideUC.CancelRide(c.Request().Context(), rideID)
	if err != nil {
		logger.Error("Failed to cancel ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// QuoteFare estimates the fare between two points
func (h *RideHandler) QuoteFare(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	quote, err := h.rideUC.Quote(req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fare quote", quote)
}

// RiderHistory lists a rider's rides, newest first
func (h *RideHandler) RiderHistory(c echo.Context) error {
	riderID := c.Param("riderID")
	if riderID == "" {
		return utils.BadRequestResponse(c, "Rider ID is required")
	}

	history, err := h.rideUC.RiderHistory(c.Request().Context(), riderID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride history", history)
}

// DriverHistory lists a driver's rides, newest first
func (h *RideHandler) DriverHistory(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	history, err := h.rideUC.DriverHistory(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride history", history)
}
