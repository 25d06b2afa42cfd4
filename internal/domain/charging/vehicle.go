package charging

import (
	"github.com/chargehub/backend/internal/domain/shared"
)

// VehicleStatus indicates whether a vehicle is the active vehicle on its account
type VehicleStatus string

const (
	// VehicleActive means the vehicle is active on the system for the user account
	VehicleActive VehicleStatus = "ACTIVE"
	// VehicleNotActive means the user account has activated a different vehicle
	VehicleNotActive VehicleStatus = "NOT_ACTIVE"
)

// IsValid checks if the status is a known value
func (s VehicleStatus) IsValid() bool {
	return s == VehicleActive || s == VehicleNotActive
}

// Vehicle represents an electric vehicle registered on the charging network.
//
// BatteryCapacityKwh is the maximum amount of energy the battery can store,
// in kilowatt-hours. BatteryLevelPercent is the state of charge at the time
// the vehicle was last observed, as a percentage of capacity.
type Vehicle struct {
	shared.BaseEntity
	LicensePlate        string
	Status              VehicleStatus
	BatteryCapacityKwh  float64
	BatteryLevelPercent float64
}

// NewVehicle creates a new active vehicle with validation
func NewVehicle(licensePlate string, batteryCapacityKwh, batteryLevelPercent float64) (*Vehicle, error) {
	if licensePlate == "" {
		return nil, shared.NewDomainError("INVALID_LICENSE_PLATE", "License plate cannot be empty")
	}
	if batteryCapacityKwh <= 0 {
		return nil, shared.NewDomainError("INVALID_BATTERY_CAPACITY", "Battery capacity must be positive")
	}
	if batteryLevelPercent < 0 || batteryLevelPercent > 100 {
		return nil, shared.NewDomainError("INVALID_BATTERY_LEVEL", "Battery level must be between 0 and 100 percent")
	}

	return &Vehicle{
		BaseEntity:          shared.NewBaseEntity(),
		LicensePlate:        licensePlate,
		Status:              VehicleActive,
		BatteryCapacityKwh:  batteryCapacityKwh,
		BatteryLevelPercent: batteryLevelPercent,
	}, nil
}

// Deactivate marks the vehicle as no longer active on the account
func (v *Vehicle) Deactivate() {
	v.Status = VehicleNotActive
}

// EnergyToFullKwh returns the energy in kWh required to charge the battery
// from its recorded level to 100 percent.
func (v *Vehicle) EnergyToFullKwh() float64 {
	return v.BatteryCapacityKwh * (100 - v.BatteryLevelPercent) / 100
}

// IsFullyCharged reports whether the battery was at capacity when last observed
func (v *Vehicle) IsFullyCharged() bool {
	return v.BatteryLevelPercent >= 100
}
