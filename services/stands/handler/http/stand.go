package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/utils"
	"github.com/helloauto/dispatch/services/stands"
	"github.com/labstack/echo/v4"
)

// StandHandler handles HTTP requests for stand operations
type StandHandler struct {
	standUC stands.StandUC
}

// NewStandHandler creates a new stand HTTP handler
func NewStandHandler(standUC stands.StandUC) *StandHandler {
	return &StandHandler{
		standUC: standUC,
	}
}

// CreateStand handles stand creation
func (h *StandHandler) CreateStand(c echo.Context) error {
	var stand models.Stand
	if err := c.Bind(&stand); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.standUC.CreateStand(c.Request().Context(), &stand)
	if err != nil {
		logger.Error("Failed to create stand", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Stand created", created)
}

// UpdateStand handles stand updates
func (h *StandHandler) UpdateStand(c echo.Context) error {
	var stand models.Stand
	if err := c.Bind(&stand); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	standID := c.Param("standID")
	parsed, err := uuid.Parse(standID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid stand ID")
	}
	stand.ID = parsed

	updated, err := h.standUC.UpdateStand(c.Request().Context(), &stand)
	if err != nil {
		logger.Error("Failed to update stand",
			logger.String("stand_id", standID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stand updated", updated)
}

// DeleteStand handles stand deletion
func (h *StandHandler) DeleteStand(c echo.Context) error {
	standID := c.Param("standID")
	if standID == "" {
		return utils.BadRequestResponse(c, "Stand ID is required")
	}

	if err := h.standUC.DeleteStand(c.Request().Context(), standID); err != nil {
		logger.Error("Failed to delete stand",
			logger.String("stand_id", standID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stand deleted", nil)
}

// GetStand retrieves a single stand
func (h *StandHandler) GetStand(c echo.Context) error {
	standID := c.Param("standID")
	if standID == "" {
		return utils.BadRequestResponse(c, "Stand ID is required")
	}

	stand, err := h.standUC.GetStand(c.Request().Context(), standID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stand found", stand)
}

// SearchStands finds stands by name around the caller's position
func (h *StandHandler) SearchStands(c echo.Context) error {
	var req models.StandSearchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	results, err := h.standUC.Search(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stands found", results)
}

// NearestStands returns stands ordered by distance from a point
func (h *StandHandler) NearestStands(c echo.Context) error {
	var point models.Location
	if err := c.Bind(&point); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	results, err := h.standUC.FindNearest(c.Request().Context(), point)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearest stands", results)
}

// JoinStand adds a driver to a stand's roster
func (h *StandHandler) JoinStand(c echo.Context) error {
	standID := c.Param("standID")
	driverID := c.Param("driverID")
	if standID == "" || driverID == "" {
		return utils.BadRequestResponse(c, "Stand ID and driver ID are required")
	}

	if err := h.standUC.Join(c.Request().Context(), standID, driverID); err != nil {
		logger.Error("Failed to join stand",
			logger.String("stand_id", standID),
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Joined stand", nil)
}

// LeaveStand removes a driver from a stand's roster
func (h *StandHandler) LeaveStand(c echo.Context) error {
	standID := c.Param("standID")
	driverID := c.Param("driverID")
	if standID == "" || driverID == "" {
		return utils.BadRequestResponse(c, "Stand ID and driver ID are required")
	}

	if err := h.standUC.Leave(c.Request().Context(), standID, driverID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Left stand", nil)
}

// ListMembers lists a stand's roster
func (h *StandHandler) ListMembers(c echo.Context) error {
	standID := c.Param("standID")
	if standID == "" {
		return utils.BadRequestResponse(c, "Stand ID is required")
	}

	members, err := h.standUC.Members(c.Request().Context(), standID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stand members", members)
}

// ToggleQueue joins or leaves a stand's driver queue
func (h *StandHandler) ToggleQueue(c echo.Context) error {
	standID := c.Param("standID")
	if standID == "" {
		return utils.BadRequestResponse(c, "Stand ID is required")
	}

	var req models.ToggleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	state, err := h.standUC.Toggle(c.Request().Context(), standID, req)
	if err != nil {
		logger.Error("Failed to toggle queue",
			logger.String("stand_id", standID),
			logger.String("driver_id", req.DriverID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Queue updated", state)
}

// GetQueue returns a snapshot of a stand's queue
func (h *StandHandler) GetQueue(c echo.Context) error {
	standID := c.Param("standID")
	if standID == "" {
		return utils.BadRequestResponse(c, "Stand ID is required")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stand queue", h.standUC.Queue(standID))
}
