package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcharging "github.com/chargehub/backend/internal/application/charging"
	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/chargehub/backend/internal/interfaces/http/dto"
)

// ChargeSessionHandler handles charge session API endpoints
type ChargeSessionHandler struct {
	BaseHandler
	sessionService *appcharging.ChargeSessionService
}

// NewChargeSessionHandler creates a new ChargeSessionHandler
func NewChargeSessionHandler(sessionService *appcharging.ChargeSessionService) *ChargeSessionHandler {
	return &ChargeSessionHandler{
		sessionService: sessionService,
	}
}

// OpenSessionRequest represents a request to start a charging session.
// The ids are bound loosely so that a missing or malformed id reports the
// incomplete-session error instead of a generic validation failure.
type OpenSessionRequest struct {
	VehicleID     string `json:"vehicleId"`
	ChargePointID string `json:"chargePointId"`
}

// ListSessionsRequest represents the query parameters for listing sessions
type ListSessionsRequest struct {
	VehicleID string `form:"vehicleId" binding:"required,uuid"`
	Sort      string `form:"sort"`
}

// Open starts a new charging session for a vehicle
func (h *ChargeSessionHandler) Open(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, charging.ErrSaveSessionIncomplete)
		return
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		h.HandleError(c, charging.ErrSaveSessionIncomplete)
		return
	}
	chargePointID, err := uuid.Parse(req.ChargePointID)
	if err != nil {
		h.HandleError(c, charging.ErrSaveSessionIncomplete)
		return
	}

	view, err := h.sessionService.OpenSession(c.Request.Context(), vehicleID, chargePointID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, c.Request.URL.Path+"/"+view.ID.String(), view)
}

// Close ends a charging session, computing its final cost
func (h *ChargeSessionHandler) Close(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	id := uuid.MustParse(req.ID)
	if err := h.sessionService.CloseSession(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Get returns a single charge session by its id
func (h *ChargeSessionHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	view, err := h.sessionService.GetSession(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// List returns all sessions for a vehicle, sorted by the requested key
func (h *ChargeSessionHandler) List(c *gin.Context) {
	var req ListSessionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "A vehicleId query parameter is required")
		return
	}

	views, err := h.sessionService.ListSessionsForVehicle(c.Request.Context(), uuid.MustParse(req.VehicleID), req.Sort)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}

// ListActive returns every session that is currently open
func (h *ChargeSessionHandler) ListActive(c *gin.Context) {
	views, err := h.sessionService.ListOpenSessions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}
