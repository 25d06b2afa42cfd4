package charging

import (
	"context"

	"github.com/google/uuid"
)

// VehicleRepository defines the interface for vehicle persistence
type VehicleRepository interface {
	// FindByID finds a vehicle by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)

	// FindAll returns all registered vehicles
	FindAll(ctx context.Context) ([]*Vehicle, error)

	// Save persists a vehicle (insert or update)
	Save(ctx context.Context, vehicle *Vehicle) error
}

// ChargePointRepository defines the interface for charge point persistence
type ChargePointRepository interface {
	// FindByID finds a charge point by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ChargePoint, error)

	// FindAll returns all charge points on the network
	FindAll(ctx context.Context) ([]*ChargePoint, error)

	// Save persists a charge point (insert or update)
	Save(ctx context.Context, point *ChargePoint) error
}

// ChargeSessionRepository defines the interface for charge session persistence
type ChargeSessionRepository interface {
	// FindByID finds a charge session by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ChargeSession, error)

	// FindByVehicleID returns all sessions recorded for a vehicle,
	// in insertion order
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*ChargeSession, error)

	// FindOpenByVehicleID returns the vehicle's open sessions, oldest first
	FindOpenByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*ChargeSession, error)

	// FindAllOpen returns every open session on the network, oldest first
	FindAllOpen(ctx context.Context) ([]*ChargeSession, error)

	// Save persists a charge session (insert or update)
	Save(ctx context.Context, session *ChargeSession) error
}
