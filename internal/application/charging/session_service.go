package charging

import (
	"context"
	"time"

	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChargeSessionService handles the charge session lifecycle: opening sessions,
// closing them with a billed cost, and reading them back for a vehicle.
type ChargeSessionService struct {
	sessions     charging.ChargeSessionRepository
	vehicles     charging.VehicleRepository
	chargePoints charging.ChargePointRepository
	engine       *charging.BillingEngine
	tx           TransactionManager
	index        ActiveSessionIndex
	logger       *zap.Logger
	nowMillis    func() int64
}

// NewChargeSessionService creates a new ChargeSessionService.
// index may be nil when no active session index is configured.
func NewChargeSessionService(
	sessions charging.ChargeSessionRepository,
	vehicles charging.VehicleRepository,
	chargePoints charging.ChargePointRepository,
	engine *charging.BillingEngine,
	tx TransactionManager,
	index ActiveSessionIndex,
	logger *zap.Logger,
) *ChargeSessionService {
	return &ChargeSessionService{
		sessions:     sessions,
		vehicles:     vehicles,
		chargePoints: chargePoints,
		engine:       engine,
		tx:           tx,
		index:        index,
		logger:       logger,
		nowMillis:    func() int64 { return time.Now().UnixMilli() },
	}
}

// OpenSession starts a new charge session for a vehicle at a charge point.
//
// Any session still open for the vehicle is first closed at the connection
// fee: the customer presumably disconnected but the close request never
// reached us, and they should not be billed for the gap. The dangling close
// and the new session are committed atomically.
func (s *ChargeSessionService) OpenSession(ctx context.Context, vehicleID, chargePointID uuid.UUID) (*ChargeSessionView, error) {
	var created *charging.ChargeSession
	var reclaimed []*charging.ChargeSession

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		vehicle, err := s.vehicles.FindByID(ctx, vehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return charging.NewVehicleNotFound(vehicleID)
		}

		dangling, err := s.sessions.FindOpenByVehicleID(ctx, vehicleID)
		if err != nil {
			return err
		}
		if len(dangling) > 1 {
			// One dangling session is expected when a close request was
			// lost; more than one means sessions were opened without the
			// previous one being reclaimed and deserves investigation.
			s.logger.Warn("vehicle has multiple open charge sessions",
				zap.String("vehicle_id", vehicleID.String()),
				zap.Int("open_sessions", len(dangling)))
		}
		now := s.nowMillis()
		for _, session := range dangling {
			if err := session.Close(now, s.engine.ConnectionFee()); err != nil {
				return err
			}
			if err := s.sessions.Save(ctx, session); err != nil {
				return err
			}
			s.logger.Info("closed dangling charge session at connection fee",
				zap.String("session_id", session.ID.String()),
				zap.String("vehicle_id", vehicleID.String()))
		}
		reclaimed = dangling

		point, err := s.chargePoints.FindByID(ctx, chargePointID)
		if err != nil {
			return err
		}
		if point == nil {
			return charging.NewChargePointNotFound(chargePointID)
		}

		created, err = charging.NewChargeSession(vehicleID, chargePointID, s.nowMillis())
		if err != nil {
			return err
		}
		return s.sessions.Save(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	for _, session := range reclaimed {
		s.removeFromIndex(ctx, session.ID)
	}
	view := NewChargeSessionView(created)
	s.addToIndex(ctx, view)
	return view, nil
}

// CloseSession ends an open session and bills it under the tariff.
//
// Closing an already closed session recomputes the cost against the current
// time and overwrites the stored end time and cost.
func (s *ChargeSessionService) CloseSession(ctx context.Context, id uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		session, err := s.sessions.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if session == nil {
			return charging.NewChargeSessionNotFound(id)
		}

		vehicle, err := s.vehicles.FindByID(ctx, session.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return charging.NewVehicleNotFound(session.VehicleID)
		}
		point, err := s.chargePoints.FindByID(ctx, session.ChargePointID)
		if err != nil {
			return err
		}
		if point == nil {
			return charging.NewChargePointNotFound(session.ChargePointID)
		}

		now := s.nowMillis()
		cost := s.engine.SessionCost(vehicle, point, session.DurationMillis(now))
		if err := session.Close(now, cost); err != nil {
			return err
		}
		return s.sessions.Save(ctx, session)
	})
	if err != nil {
		return err
	}

	s.removeFromIndex(ctx, id)
	return nil
}

// GetSession returns a single session by its ID
func (s *ChargeSessionService) GetSession(ctx context.Context, id uuid.UUID) (*ChargeSessionView, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, charging.NewChargeSessionNotFound(id)
	}
	return NewChargeSessionView(session), nil
}

// ListSessionsForVehicle returns all sessions recorded for a vehicle, ordered
// by the given sort query parameter. An empty parameter sorts by ascending
// start time.
func (s *ChargeSessionService) ListSessionsForVehicle(ctx context.Context, vehicleID uuid.UUID, sortParam string) ([]*ChargeSessionView, error) {
	sortBy, err := charging.ParseSessionSort(sortParam)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, charging.NewVehicleNotFound(vehicleID)
	}

	sessions, err := s.sessions.FindByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	charging.SortSessions(sessions, sortBy)
	return NewChargeSessionViews(sessions), nil
}

// ListOpenSessions returns every session currently open on the network
func (s *ChargeSessionService) ListOpenSessions(ctx context.Context) ([]*ChargeSessionView, error) {
	sessions, err := s.sessions.FindAllOpen(ctx)
	if err != nil {
		return nil, err
	}
	return NewChargeSessionViews(sessions), nil
}

func (s *ChargeSessionService) addToIndex(ctx context.Context, view *ChargeSessionView) {
	if s.index == nil {
		return
	}
	if err := s.index.Add(ctx, view); err != nil {
		s.logger.Warn("failed to index open charge session",
			zap.String("session_id", view.ID.String()), zap.Error(err))
	}
}

func (s *ChargeSessionService) removeFromIndex(ctx context.Context, id uuid.UUID) {
	if s.index == nil {
		return
	}
	if err := s.index.Remove(ctx, id); err != nil {
		s.logger.Warn("failed to remove charge session from index",
			zap.String("session_id", id.String()), zap.Error(err))
	}
}
