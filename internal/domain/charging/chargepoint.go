package charging

import (
	"github.com/chargehub/backend/internal/domain/shared"
)

// ChargePointStatus indicates availability of a charge point on the network
type ChargePointStatus string

const (
	// ChargePointActive means vehicles can find the charge point and charge at it
	ChargePointActive ChargePointStatus = "ACTIVE"
	// ChargePointOutOfService means the charge point is not active on the charging network
	ChargePointOutOfService ChargePointStatus = "OUT_OF_SERVICE"
)

// IsValid checks if the status is a known value
func (s ChargePointStatus) IsValid() bool {
	return s == ChargePointActive || s == ChargePointOutOfService
}

// ChargePoint represents a physical charger on the charging network.
//
// ChargingPowerKw is the rate at which it delivers energy to a connected
// battery, in kilowatts.
type ChargePoint struct {
	shared.BaseEntity
	ManufacturerModel string
	ChargingPowerKw   float64
	Latitude          string
	Longitude         string
	Status            ChargePointStatus
}

// NewChargePoint creates a new active charge point with validation
func NewChargePoint(manufacturerModel string, chargingPowerKw float64, latitude, longitude string) (*ChargePoint, error) {
	if manufacturerModel == "" {
		return nil, shared.NewDomainError("INVALID_MANUFACTURER_MODEL", "Manufacturer model cannot be empty")
	}
	if chargingPowerKw <= 0 {
		return nil, shared.NewDomainError("INVALID_CHARGING_POWER", "Charging power must be positive")
	}

	return &ChargePoint{
		BaseEntity:        shared.NewBaseEntity(),
		ManufacturerModel: manufacturerModel,
		ChargingPowerKw:   chargingPowerKw,
		Latitude:          latitude,
		Longitude:         longitude,
		Status:            ChargePointActive,
	}, nil
}

// TakeOutOfService removes the charge point from the charging network
func (p *ChargePoint) TakeOutOfService() {
	p.Status = ChargePointOutOfService
}

// IsAvailable reports whether vehicles can charge at this charge point
func (p *ChargePoint) IsAvailable() bool {
	return p.Status == ChargePointActive
}
