package handler

import (
	"github.com/helloauto/dispatch/internal/pkg/models"
	wsmanager "github.com/helloauto/dispatch/internal/pkg/websocket"
	"github.com/helloauto/dispatch/services/rides"
	httpHandler "github.com/helloauto/dispatch/services/rides/handler/http"
	nsqHandler "github.com/helloauto/dispatch/services/rides/handler/nsq"
	wsHandler "github.com/helloauto/dispatch/services/rides/handler/websocket"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RideHandler
	ridesWS   *wsHandler.WSHandler
	ridesNSQ  *nsqHandler.RideHandler
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, manager *wsmanager.Manager, nsqCfg models.NSQConfig) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRideHandler(rideUC),
		ridesWS:   wsHandler.NewWSHandler(manager, rideUC),
		ridesNSQ:  nsqHandler.NewRideHandler(rideUC, nsqCfg),
	}
}

// RegisterRoutes registers all HTTP and websocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	rideGroup := e.Group("/rides")
	rideGroup.POST("", h.ridesHTTP.RequestRide)
	rideGroup.POST("/quote", h.ridesHTTP.QuoteFare)
	rideGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	rideGroup.POST("/:rideID/verify", h.ridesHTTP.VerifyRide)
	rideGroup.POST("/:rideID/complete", h.ridesHTTP.CompleteRide)
	rideGroup.POST("/:rideID/cancel", h.ridesHTTP.CancelRide)
	rideGroup.GET("/rider/:riderID", h.ridesHTTP.RiderHistory)
	rideGroup.GET("/driver/:driverID", h.ridesHTTP.DriverHistory)

	e.GET("/ws", h.ridesWS.HandleWebSocket)
}

// StartConsumers begins consuming queued ride requests from NSQ
func (h *Handler) StartConsumers() error {
	return h.ridesNSQ.Start()
}

// StopConsumers disconnects the NSQ consumers
func (h *Handler) StopConsumers() {
	h.ridesNSQ.Stop()
}
