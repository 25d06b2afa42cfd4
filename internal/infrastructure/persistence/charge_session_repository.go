package persistence

import (
	"context"
	"errors"

	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/chargehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormChargeSessionRepository implements ChargeSessionRepository using GORM
type GormChargeSessionRepository struct {
	db *gorm.DB
}

// NewGormChargeSessionRepository creates a new GormChargeSessionRepository
func NewGormChargeSessionRepository(db *gorm.DB) *GormChargeSessionRepository {
	return &GormChargeSessionRepository{db: db}
}

// FindByID finds a charge session by its ID, returning nil when no row matches
func (r *GormChargeSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*charging.ChargeSession, error) {
	var model models.ChargeSessionModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByVehicleID lists all sessions recorded for a vehicle in insertion order
func (r *GormChargeSessionRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*charging.ChargeSession, error) {
	var sessionModels []models.ChargeSessionModel
	if err := dbFromContext(ctx, r.db).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at ASC").
		Find(&sessionModels).Error; err != nil {
		return nil, err
	}
	return toDomainSessions(sessionModels)
}

// FindOpenByVehicleID lists the vehicle's sessions that have no end time yet,
// oldest start first
func (r *GormChargeSessionRepository) FindOpenByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*charging.ChargeSession, error) {
	var sessionModels []models.ChargeSessionModel
	if err := dbFromContext(ctx, r.db).
		Where("vehicle_id = ? AND end_time IS NULL", vehicleID).
		Order("start_time ASC").
		Find(&sessionModels).Error; err != nil {
		return nil, err
	}
	return toDomainSessions(sessionModels)
}

// FindAllOpen lists every session that has no end time yet, oldest start first
func (r *GormChargeSessionRepository) FindAllOpen(ctx context.Context) ([]*charging.ChargeSession, error) {
	var sessionModels []models.ChargeSessionModel
	if err := dbFromContext(ctx, r.db).
		Where("end_time IS NULL").
		Order("start_time ASC").
		Find(&sessionModels).Error; err != nil {
		return nil, err
	}
	return toDomainSessions(sessionModels)
}

// Save creates or updates a charge session
func (r *GormChargeSessionRepository) Save(ctx context.Context, session *charging.ChargeSession) error {
	model := models.ChargeSessionModelFromDomain(session)
	return dbFromContext(ctx, r.db).Save(model).Error
}

func toDomainSessions(sessionModels []models.ChargeSessionModel) ([]*charging.ChargeSession, error) {
	sessions := make([]*charging.ChargeSession, len(sessionModels))
	for i, model := range sessionModels {
		session, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		sessions[i] = session
	}
	return sessions, nil
}

// Ensure GormChargeSessionRepository implements ChargeSessionRepository
var _ charging.ChargeSessionRepository = (*GormChargeSessionRepository)(nil)
