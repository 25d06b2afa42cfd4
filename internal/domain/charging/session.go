package charging

import (
	"github.com/chargehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeSession records one charge event tying a vehicle to a charge point,
// from connection to disconnection.
//
// A session is either open or closed. An open session has only a start time;
// a closed session additionally carries its end time and total cost. The two
// closing fields are set together, never individually, so a cost can never be
// read from a session that has no end time.
type ChargeSession struct {
	shared.BaseEntity
	Token         string
	VehicleID     uuid.UUID
	ChargePointID uuid.UUID
	StartTime     int64 // UTC epoch milliseconds
	closure       *closure
}

type closure struct {
	endTime   int64 // UTC epoch milliseconds
	totalCost decimal.Decimal
}

// NewChargeSession opens a new charge session for a vehicle at a charge point
func NewChargeSession(vehicleID, chargePointID uuid.UUID, startTime int64) (*ChargeSession, error) {
	if vehicleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VEHICLE", "Vehicle ID cannot be empty")
	}
	if chargePointID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CHARGE_POINT", "Charge point ID cannot be empty")
	}

	return &ChargeSession{
		BaseEntity:    shared.NewBaseEntity(),
		Token:         uuid.NewString(),
		VehicleID:     vehicleID,
		ChargePointID: chargePointID,
		StartTime:     startTime,
	}, nil
}

// RestoreChargeSession rebuilds a session from its persisted representation.
// End time and total cost must be both present or both absent.
func RestoreChargeSession(
	base shared.BaseEntity,
	token string,
	vehicleID, chargePointID uuid.UUID,
	startTime int64,
	endTime *int64,
	totalCost *decimal.Decimal,
) (*ChargeSession, error) {
	if (endTime == nil) != (totalCost == nil) {
		return nil, shared.NewDomainError("INCONSISTENT_SESSION_STATE", "End time and total cost must be set together")
	}

	s := &ChargeSession{
		BaseEntity:    base,
		Token:         token,
		VehicleID:     vehicleID,
		ChargePointID: chargePointID,
		StartTime:     startTime,
	}
	if endTime != nil {
		s.closure = &closure{endTime: *endTime, totalCost: *totalCost}
	}
	return s, nil
}

// IsOpen reports whether the session has not yet been closed
func (s *ChargeSession) IsOpen() bool {
	return s.closure == nil
}

// Closure returns the end time and total cost of a closed session.
// ok is false while the session is still open.
func (s *ChargeSession) Closure() (endTime int64, totalCost decimal.Decimal, ok bool) {
	if s.closure == nil {
		return 0, decimal.Decimal{}, false
	}
	return s.closure.endTime, s.closure.totalCost, true
}

// Close ends the session at the given time with the given total cost.
// Closing an already closed session overwrites its end time and cost.
func (s *ChargeSession) Close(endTime int64, totalCost decimal.Decimal) error {
	if endTime < s.StartTime {
		return shared.NewDomainError("INVALID_END_TIME", "End time cannot be before start time")
	}
	s.closure = &closure{endTime: endTime, totalCost: totalCost}
	return nil
}

// DurationMillis returns the elapsed session time in milliseconds up to the
// given end time.
func (s *ChargeSession) DurationMillis(endTime int64) int64 {
	return endTime - s.StartTime
}
