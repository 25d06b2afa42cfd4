package charging

import (
	"context"

	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/google/uuid"
)

// ChargePointService handles charge point registration and lookups
type ChargePointService struct {
	chargePoints charging.ChargePointRepository
}

// NewChargePointService creates a new ChargePointService
func NewChargePointService(chargePoints charging.ChargePointRepository) *ChargePointService {
	return &ChargePointService{chargePoints: chargePoints}
}

// Create registers a new charge point on the network
func (s *ChargePointService) Create(ctx context.Context, req CreateChargePointRequest) (*ChargePointView, error) {
	point, err := charging.NewChargePoint(req.ManufacturerModel, req.ChargingPowerKw, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}
	if err := s.chargePoints.Save(ctx, point); err != nil {
		return nil, err
	}
	return NewChargePointView(point), nil
}

// Get returns a charge point by its ID
func (s *ChargePointService) Get(ctx context.Context, id uuid.UUID) (*ChargePointView, error) {
	point, err := s.chargePoints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, charging.NewChargePointNotFound(id)
	}
	return NewChargePointView(point), nil
}

// List returns all charge points on the network
func (s *ChargePointService) List(ctx context.Context) ([]*ChargePointView, error) {
	points, err := s.chargePoints.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*ChargePointView, 0, len(points))
	for _, point := range points {
		views = append(views, NewChargePointView(point))
	}
	return views, nil
}
