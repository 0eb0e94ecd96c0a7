package handler

import (
	"github.com/helloauto/dispatch/services/stands"
	httpHandler "github.com/helloauto/dispatch/services/stands/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the stands service
type Handler struct {
	standsHTTP *httpHandler.StandHandler
}

// NewHandler creates a new combined handler
func NewHandler(standUC stands.StandUC) *Handler {
	return &Handler{
		standsHTTP: httpHandler.NewStandHandler(standUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	standGroup := e.Group("/stands")
	standGroup.POST("", h.standsHTTP.CreateStand)
	standGroup.POST("/search", h.standsHTTP.SearchStands)
	standGroup.POST("/nearest", h.standsHTTP.NearestStands)
	standGroup.GET("/:standID", h.standsHTTP.GetStand)
	standGroup.PUT("/:standID", h.standsHTTP.UpdateStand)
	standGroup.DELETE("/:standID", h.standsHTTP.DeleteStand)

	standGroup.GET("/:standID/members", h.standsHTTP.ListMembers)
	standGroup.POST("/:standID/members/:driverID", h.standsHTTP.JoinStand)
	standGroup.DELETE("/:standID/members/:driverID", h.standsHTTP.LeaveStand)

	standGroup.GET("/:standID/queue", h.standsHTTP.GetQueue)
	standGroup.POST("/:standID/queue/toggle", h.standsHTTP.ToggleQueue)
}
