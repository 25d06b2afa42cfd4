package persistence

import (
	"context"
	"errors"

	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/chargehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByID finds a vehicle by its ID, returning nil when no row matches
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*charging.Vehicle, error) {
	var model models.VehicleModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists all vehicles ordered by license plate
func (r *GormVehicleRepository) FindAll(ctx context.Context) ([]*charging.Vehicle, error) {
	var vehicleModels []models.VehicleModel
	if err := dbFromContext(ctx, r.db).
		Order("license_plate ASC").
		Find(&vehicleModels).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*charging.Vehicle, len(vehicleModels))
	for i, model := range vehicleModels {
		vehicles[i] = model.ToDomain()
	}
	return vehicles, nil
}

// Save creates or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *charging.Vehicle) error {
	model := models.VehicleModelFromDomain(vehicle)
	return dbFromContext(ctx, r.db).Save(model).Error
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ charging.VehicleRepository = (*GormVehicleRepository)(nil)
