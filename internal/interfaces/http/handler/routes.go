package handler

import (
	"github.com/chargehub/backend/internal/interfaces/http/router"
)

// ChargeSessionRoutes creates the route group for charge session endpoints
func ChargeSessionRoutes(h *ChargeSessionHandler) *router.DomainGroup {
	group := router.NewDomainGroup("charge-sessions", "/charge-sessions")

	group.GET("", h.List)
	group.GET("/active", h.ListActive)
	group.GET("/:id", h.Get)
	group.POST("", h.Open)
	group.PUT("/:id", h.Close)

	return group
}

// VehicleRoutes creates the route group for vehicle endpoints
func VehicleRoutes(h *VehicleHandler) *router.DomainGroup {
	group := router.NewDomainGroup("vehicles", "/vehicles")

	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)

	return group
}

// ChargePointRoutes creates the route group for charge point endpoints
func ChargePointRoutes(h *ChargePointHandler) *router.DomainGroup {
	group := router.NewDomainGroup("charge-points", "/charge-points")

	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)

	return group
}

// SystemRoutes creates the route group for system endpoints
func SystemRoutes(h *SystemHandler) *router.DomainGroup {
	group := router.NewDomainGroup("system", "/system")

	group.GET("/info", h.GetSystemInfo)
	group.GET("/health", h.Health)

	return group
}
