package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcharging "github.com/chargehub/backend/internal/application/charging"
	"github.com/chargehub/backend/internal/interfaces/http/dto"
	"github.com/chargehub/backend/internal/interfaces/http/middleware"
)

// VehicleHandler handles vehicle API endpoints
type VehicleHandler struct {
	BaseHandler
	vehicleService *appcharging.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(vehicleService *appcharging.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// Create registers a new vehicle
func (h *VehicleHandler) Create(c *gin.Context) {
	var req appcharging.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	view, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, c.Request.URL.Path+"/"+view.ID.String(), view)
}

// Get returns a single vehicle by its id
func (h *VehicleHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	view, err := h.vehicleService.Get(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// List returns all registered vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	views, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}
