package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	wsmanager "github.com/helloauto/dispatch/internal/pkg/websocket"
	"github.com/helloauto/dispatch/services/rides"
	"github.com/labstack/echo/v4"
)

// WSHandler routes websocket traffic from riders and drivers into the
// dispatch coordinator and the relay
type WSHandler struct {
	manager *wsmanager.Manager
	rideUC  rides.RideUC
}

// NewWSHandler creates a new websocket handler
func NewWSHandler(manager *wsmanager.Manager, rideUC rides.RideUC) *WSHandler {
	return &WSHandler{
		manager: manager,
		rideUC:  rideUC,
	}
}

// HandleWebSocket upgrades the connection and runs the message loop
// until the participant goes away
func (h *WSHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WSHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			logger.Info("WebSocket client disconnected",
				logger.String("user_id", client.UserID))
			return nil
		}

		if err := h.routeMessage(client, conn, msg); err != nil {
			logger.Error("Error handling websocket message",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *WSHandler) routeMessage(client *models.WebSocketClient, conn *websocket.Conn, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventRideResponse:
		return h.handleRideResponse(client, conn, msg.Data)
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, conn, msg.Data)
	case constants.EventPing:
		return h.manager.SendMessage(conn, constants.EventPong, nil)
	default:
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}
}

// handleRideResponse passes a driver's answer to the coordinator. The
// sender's identity always wins over whatever the payload claims.
func (h *WSHandler) handleRideResponse(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	if client.Role != constants.RoleDriver {
		return h.manager.SendErrorMessage(conn, constants.ErrorUnauthorized, "Only drivers answer ride offers")
	}

	var resp models.RideResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid ride response format")
	}
	resp.DriverID = client.UserID

	h.rideUC.HandleRideResponse(resp)
	return nil
}

// handleLocationUpdate feeds a ride-scoped position into the relay
func (h *WSHandler) handleLocationUpdate(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid location update format")
	}
	if update.RideID == "" {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidLocation, "Ride ID is required")
	}

	h.rideUC.HandleLocationUpdate(client.UserID, update)
	return nil
}
