package persistence

import (
	"context"
	"errors"

	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/chargehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormChargePointRepository implements ChargePointRepository using GORM
type GormChargePointRepository struct {
	db *gorm.DB
}

// NewGormChargePointRepository creates a new GormChargePointRepository
func NewGormChargePointRepository(db *gorm.DB) *GormChargePointRepository {
	return &GormChargePointRepository{db: db}
}

// FindByID finds a charge point by its ID, returning nil when no row matches
func (r *GormChargePointRepository) FindByID(ctx context.Context, id uuid.UUID) (*charging.ChargePoint, error) {
	var model models.ChargePointModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists all charge points ordered by creation time
func (r *GormChargePointRepository) FindAll(ctx context.Context) ([]*charging.ChargePoint, error) {
	var pointModels []models.ChargePointModel
	if err := dbFromContext(ctx, r.db).
		Order("created_at ASC").
		Find(&pointModels).Error; err != nil {
		return nil, err
	}

	points := make([]*charging.ChargePoint, len(pointModels))
	for i, model := range pointModels {
		points[i] = model.ToDomain()
	}
	return points, nil
}

// Save creates or updates a charge point
func (r *GormChargePointRepository) Save(ctx context.Context, point *charging.ChargePoint) error {
	model := models.ChargePointModelFromDomain(point)
	return dbFromContext(ctx, r.db).Save(model).Error
}

// Ensure GormChargePointRepository implements ChargePointRepository
var _ charging.ChargePointRepository = (*GormChargePointRepository)(nil)
