package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/database"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// clientEntry pairs a connected client with its write lock. Writes to a
// gorilla connection must not interleave, and the relay and the
// coordinator may target the same connection concurrently.
type clientEntry struct {
	client *models.WebSocketClient
	mu     sync.Mutex
}

// Manager manages WebSocket connections and participant presence. It is
// passed explicitly to every component that needs to address a
// participant; there is no process-wide instance.
type Manager struct {
	sync.RWMutex
	clients  map[string]*clientEntry
	watchers map[string][]chan struct{}
	cfg      models.JWTConfig
	redis    *database.RedisClient
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager. The Redis client backs
// the offline notification buffer; it may be nil in tests.
func NewManager(jwtConfig models.JWTConfig, redisClient *database.RedisClient) *Manager {
	return &Manager{
		clients:  make(map[string]*clientEntry),
		watchers: make(map[string][]chan struct{}),
		cfg:      jwtConfig,
		redis:    redisClient,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddClient registers a connected client and flushes any notifications
// buffered while the participant was offline
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	m.clients[client.UserID] = &clientEntry{client: client}
	m.Unlock()

	m.flushOffline(client)
}

// RemoveClient removes a client and signals every disconnect watcher
// registered for that participant
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	delete(m.clients, userID)
	watchers := m.watchers[userID]
	delete(m.watchers, userID)
	m.Unlock()

	for _, ch := range watchers {
		close(ch)
	}
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	entry, exists := m.clients[userID]
	if !exists {
		return nil, false
	}
	return entry.client, true
}

// IsOnline reports whether the participant has a live channel
func (m *Manager) IsOnline(userID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, exists := m.clients[userID]
	return exists
}

// WatchDisconnect returns a channel closed when the participant's
// connection goes away, plus a release function the caller must invoke
// once the watch is no longer needed. If the participant is already
// offline the channel is closed immediately.
func (m *Manager) WatchDisconnect(userID string) (<-chan struct{}, func()) {
	ch := make(chan struct{})

	m.Lock()
	if _, online := m.clients[userID]; !online {
		m.Unlock()
		close(ch)
		return ch, func() {}
	}
	m.watchers[userID] = append(m.watchers[userID], ch)
	m.Unlock()

	release := func() {
		m.Lock()
		defer m.Unlock()
		watchers := m.watchers[userID]
		for i, w := range watchers {
			if w == ch {
				m.watchers[userID] = append(watchers[:i], watchers[i+1:]...)
				break
			}
		}
	}
	return ch, release
}

// SendMessage sends an event to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return fmt.Errorf("%w: no connection attached", apperr.ErrPresenceUnavailable)
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendToUser delivers an event only if the participant is online right
// now. Unlike Notify nothing is buffered for later; time-sensitive
// messages such as ride offers must not outlive their moment.
func (m *Manager) SendToUser(userID string, event string, data interface{}) error {
	m.RLock()
	entry, online := m.clients[userID]
	m.RUnlock()

	if !online {
		return fmt.Errorf("%w: %s has no live channel", apperr.ErrPresenceUnavailable, userID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return m.SendMessage(entry.client.Conn, event, data)
}

// Notify delivers an event to a participant. Online participants get it
// over their live channel; offline participants get it buffered in
// Redis and flushed on their next connect.
func (m *Manager) Notify(userID string, event string, data interface{}) error {
	m.RLock()
	entry, online := m.clients[userID]
	m.RUnlock()

	if !online {
		return m.bufferOffline(userID, event, data)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := m.SendMessage(entry.client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
		return err
	}
	return nil
}

// bufferOffline queues a notification for later delivery
func (m *Manager) bufferOffline(userID string, event string, data interface{}) error {
	if m.redis == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling offline message: %v", err)
	}
	msg, err := json.Marshal(models.WSMessage{Event: event, Data: rawData})
	if err != nil {
		return err
	}

	key := fmt.Sprintf(constants.KeyOfflineNotifications, userID)
	if err := m.redis.PushList(context.Background(), key, msg); err != nil {
		logger.Error("Failed to buffer offline notification",
			logger.String("user_id", userID),
			logger.Err(err))
		return err
	}

	logger.Debug("Buffered offline notification",
		logger.String("user_id", userID),
		logger.String("event", event))
	return nil
}

// flushOffline delivers buffered notifications on reconnect
func (m *Manager) flushOffline(client *models.WebSocketClient) {
	if m.redis == nil {
		return
	}

	key := fmt.Sprintf(constants.KeyOfflineNotifications, client.UserID)
	entries, err := m.redis.DrainList(context.Background(), key)
	if err != nil {
		logger.Warn("Failed to drain offline notifications",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return
	}

	for _, entry := range entries {
		var msg models.WSMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			logger.Warn("Dropping malformed offline notification",
				logger.String("user_id", client.UserID))
			continue
		}
		if err := m.Notify(client.UserID, msg.Event, msg.Data); err != nil {
			return
		}
	}
}
