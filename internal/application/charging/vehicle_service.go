package charging

import (
	"context"

	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/google/uuid"
)

// VehicleService handles vehicle registration and lookups
type VehicleService struct {
	vehicles charging.VehicleRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicles charging.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// Create registers a new vehicle
func (s *VehicleService) Create(ctx context.Context, req CreateVehicleRequest) (*VehicleView, error) {
	vehicle, err := charging.NewVehicle(req.LicensePlate, req.BatteryCapacityKwh, req.BatteryLevelPercent)
	if err != nil {
		return nil, err
	}
	if err := s.vehicles.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	return NewVehicleView(vehicle), nil
}

// Get returns a vehicle by its ID
func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, charging.NewVehicleNotFound(id)
	}
	return NewVehicleView(vehicle), nil
}

// List returns all registered vehicles
func (s *VehicleService) List(ctx context.Context) ([]*VehicleView, error) {
	vehicles, err := s.vehicles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*VehicleView, 0, len(vehicles))
	for _, vehicle := range vehicles {
		views = append(views, NewVehicleView(vehicle))
	}
	return views, nil
}
