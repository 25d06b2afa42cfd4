package charging

import (
	"github.com/chargehub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MillisecondsPerHour converts session durations from epoch milliseconds to hours
const MillisecondsPerHour int64 = 60 * 60 * 1000

// costScale is the number of decimal places a total cost is persisted with
const costScale = 8

// interimScale is the precision carried through intermediate energy and cost
// arithmetic before the final rounding to costScale.
const interimScale = 18

// Tariff holds the pricing applied to charge sessions.
//
// CostPerKwh is the price of energy in euros per kilowatt-hour.
// ConnectionFee is the minimum amount billed for any session, charged even
// when no measurable energy was delivered.
type Tariff struct {
	CostPerKwh    decimal.Decimal
	ConnectionFee decimal.Decimal
}

// NewTariff creates a tariff with validation
func NewTariff(costPerKwh, connectionFee decimal.Decimal) (Tariff, error) {
	if costPerKwh.IsNegative() {
		return Tariff{}, shared.NewDomainError("INVALID_TARIFF", "Cost per kWh cannot be negative")
	}
	if connectionFee.IsNegative() {
		return Tariff{}, shared.NewDomainError("INVALID_TARIFF", "Connection fee cannot be negative")
	}
	return Tariff{CostPerKwh: costPerKwh, ConnectionFee: connectionFee}, nil
}

// DefaultConnectionFee is the minimum connection fee applied when no other
// fee has been configured.
func DefaultConnectionFee() decimal.Decimal {
	return decimal.NewFromInt(1)
}

// BillingEngine computes the total cost of charge sessions under a tariff.
//
// Energy (kWh) = Power (kW) x Time (hours), capped by the energy the battery
// could still absorb at session start. Cost (euros) = Energy (kWh) x cost per
// kWh, plus the connection fee. Intermediate arithmetic uses banker's
// rounding at interimScale; the final cost is rounded to costScale.
type BillingEngine struct {
	tariff Tariff
}

// NewBillingEngine creates a billing engine for the given tariff
func NewBillingEngine(tariff Tariff) *BillingEngine {
	return &BillingEngine{tariff: tariff}
}

// Tariff returns the tariff the engine bills under
func (e *BillingEngine) Tariff() Tariff {
	return e.tariff
}

// ConnectionFee returns the minimum amount billed for any session, at the
// persisted cost scale.
func (e *BillingEngine) ConnectionFee() decimal.Decimal {
	return e.tariff.ConnectionFee.RoundBank(costScale)
}

// SessionCost computes the total cost of a session that ran for
// durationMillis on the given charge point, for the given vehicle.
//
// A vehicle whose battery was already full at session start is billed only
// the connection fee.
func (e *BillingEngine) SessionCost(vehicle *Vehicle, point *ChargePoint, durationMillis int64) decimal.Decimal {
	if vehicle.IsFullyCharged() {
		return e.ConnectionFee()
	}

	durationHours := decimal.NewFromInt(durationMillis).
		DivRound(decimal.NewFromInt(MillisecondsPerHour), interimScale+2).
		RoundBank(interimScale)

	theoreticalEnergyKwh := decimal.NewFromFloat(point.ChargingPowerKw).
		Mul(durationHours).
		RoundBank(interimScale)

	energyToFullKwh := decimal.NewFromFloat(vehicle.EnergyToFullKwh())

	// The battery cannot absorb more than the energy required to fully charge it
	energyConsumedKwh := theoreticalEnergyKwh
	if energyToFullKwh.LessThan(theoreticalEnergyKwh) {
		energyConsumedKwh = energyToFullKwh
	}

	costOfPower := energyConsumedKwh.
		Mul(e.tariff.CostPerKwh).
		RoundBank(interimScale)

	return costOfPower.Add(e.tariff.ConnectionFee).RoundBank(costScale)
}
