package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/models"
	wsmanager "github.com/helloauto/dispatch/internal/pkg/websocket"
	"github.com/helloauto/dispatch/services/rides/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "ws-test-secret"

func signToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := models.WebSocketClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func dialWS(t *testing.T, srv *httptest.Server, userID, role string) *websocket.Conn {
	t.Helper()
	header := http.Header{}
	header.Set("Authorization", "Bearer "+signToken(t, userID, role))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHandleWebSocket_DeliversToConnectedClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := wsmanager.NewManager(models.JWTConfig{Secret: testSecret}, nil)
	handler := NewWSHandler(manager, mocks.NewMockRideUC(ctrl))

	e := echo.New()
	e.GET("/ws", handler.HandleWebSocket)
	srv := httptest.NewServer(e)
	defer srv.Close()

	conn := dialWS(t, srv, "d1", constants.RoleDriver)

	require.Eventually(t, func() bool { return manager.IsOnline("d1") },
		time.Second, 10*time.Millisecond)

	offer := models.RideOffer{RideID: "ride-1", Fare: 80}
	require.NoError(t, manager.SendToUser("d1", constants.EventRideRequest, offer))

	// The event must actually arrive on the wire, not just be accepted
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventRideRequest, msg.Event)

	var received models.RideOffer
	require.NoError(t, json.Unmarshal(msg.Data, &received))
	assert.Equal(t, "ride-1", received.RideID)
}

func TestHandleWebSocket_DriverAnswerUsesConnectionIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rideUC := mocks.NewMockRideUC(ctrl)
	answered := make(chan models.RideResponse, 1)
	rideUC.EXPECT().HandleRideResponse(gomock.Any()).
		Do(func(resp models.RideResponse) { answered <- resp })

	manager := wsmanager.NewManager(models.JWTConfig{Secret: testSecret}, nil)
	handler := NewWSHandler(manager, rideUC)

	e := echo.New()
	e.GET("/ws", handler.HandleWebSocket)
	srv := httptest.NewServer(e)
	defer srv.Close()

	conn := dialWS(t, srv, "d1", constants.RoleDriver)

	payload, err := json.Marshal(models.RideResponse{
		RideID: "ride-1", DriverID: "someone-else", Accepted: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(models.WSMessage{
		Event: constants.EventRideResponse,
		Data:  payload,
	}))

	select {
	case resp := <-answered:
		assert.Equal(t, "d1", resp.DriverID)
		assert.True(t, resp.Accepted)
	case <-time.After(time.Second):
		t.Fatal("ride response never reached the coordinator")
	}
}

func TestHandleWebSocket_RejectsMissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := wsmanager.NewManager(models.JWTConfig{Secret: testSecret}, nil)
	handler := NewWSHandler(manager, mocks.NewMockRideUC(ctrl))

	e := echo.New()
	e.GET("/ws", handler.HandleWebSocket)
	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
	if conn != nil {
		conn.Close()
	}
}
