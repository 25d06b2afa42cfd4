package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcharging "github.com/chargehub/backend/internal/application/charging"
	"github.com/chargehub/backend/internal/interfaces/http/dto"
	"github.com/chargehub/backend/internal/interfaces/http/middleware"
)

// ChargePointHandler handles charge point API endpoints
type ChargePointHandler struct {
	BaseHandler
	chargePointService *appcharging.ChargePointService
}

// NewChargePointHandler creates a new ChargePointHandler
func NewChargePointHandler(chargePointService *appcharging.ChargePointService) *ChargePointHandler {
	return &ChargePointHandler{
		chargePointService: chargePointService,
	}
}

// Create registers a new charge point
func (h *ChargePointHandler) Create(c *gin.Context) {
	var req appcharging.CreateChargePointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	view, err := h.chargePointService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, c.Request.URL.Path+"/"+view.ID.String(), view)
}

// Get returns a single charge point by its id
func (h *ChargePointHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid charge point ID")
		return
	}

	view, err := h.chargePointService.Get(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// List returns all registered charge points
func (h *ChargePointHandler) List(c *gin.Context) {
	views, err := h.chargePointService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}
