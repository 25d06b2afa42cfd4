package models

import (
	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleModel is the persistence model for the Vehicle domain entity.
type VehicleModel struct {
	BaseModel
	LicensePlate        string                 `gorm:"type:varchar(20);not null;uniqueIndex"`
	Status              charging.VehicleStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	BatteryCapacityKwh  float64                `gorm:"not null"`
	BatteryLevelPercent float64                `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts the persistence model to a domain Vehicle entity.
func (m *VehicleModel) ToDomain() *charging.Vehicle {
	return &charging.Vehicle{
		BaseEntity:          m.BaseModel.ToDomain(),
		LicensePlate:        m.LicensePlate,
		Status:              m.Status,
		BatteryCapacityKwh:  m.BatteryCapacityKwh,
		BatteryLevelPercent: m.BatteryLevelPercent,
	}
}

// VehicleModelFromDomain builds the persistence model for a domain vehicle
func VehicleModelFromDomain(v *charging.Vehicle) *VehicleModel {
	model := &VehicleModel{
		LicensePlate:        v.LicensePlate,
		Status:              v.Status,
		BatteryCapacityKwh:  v.BatteryCapacityKwh,
		BatteryLevelPercent: v.BatteryLevelPercent,
	}
	model.FromDomainBaseEntity(v.BaseEntity)
	return model
}

// ChargePointModel is the persistence model for the ChargePoint domain entity.
type ChargePointModel struct {
	BaseModel
	ManufacturerModel string                     `gorm:"type:varchar(200);not null"`
	ChargingPowerKw   float64                    `gorm:"not null"`
	Latitude          string                     `gorm:"type:varchar(20)"`
	Longitude         string                     `gorm:"type:varchar(20)"`
	Status            charging.ChargePointStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
}

// TableName returns the table name for GORM
func (ChargePointModel) TableName() string {
	return "charge_points"
}

// ToDomain converts the persistence model to a domain ChargePoint entity.
func (m *ChargePointModel) ToDomain() *charging.ChargePoint {
	return &charging.ChargePoint{
		BaseEntity:        m.BaseModel.ToDomain(),
		ManufacturerModel: m.ManufacturerModel,
		ChargingPowerKw:   m.ChargingPowerKw,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		Status:            m.Status,
	}
}

// ChargePointModelFromDomain builds the persistence model for a domain charge point
func ChargePointModelFromDomain(p *charging.ChargePoint) *ChargePointModel {
	model := &ChargePointModel{
		ManufacturerModel: p.ManufacturerModel,
		ChargingPowerKw:   p.ChargingPowerKw,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Status:            p.Status,
	}
	model.FromDomainBaseEntity(p.BaseEntity)
	return model
}

// ChargeSessionModel is the persistence model for the ChargeSession domain
// entity. EndTime and TotalCost are nullable and are set together when the
// session closes; TotalCost keeps eight decimal places.
type ChargeSessionModel struct {
	BaseModel
	Token         string           `gorm:"type:varchar(36);not null;uniqueIndex"`
	VehicleID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	ChargePointID uuid.UUID        `gorm:"type:uuid;not null;index"`
	StartTime     int64            `gorm:"not null"`
	EndTime       *int64           `gorm:"index"`
	TotalCost     *decimal.Decimal `gorm:"type:decimal(18,8)"`
}

// TableName returns the table name for GORM
func (ChargeSessionModel) TableName() string {
	return "charge_sessions"
}

// ToDomain converts the persistence model to a domain ChargeSession entity.
func (m *ChargeSessionModel) ToDomain() (*charging.ChargeSession, error) {
	return charging.RestoreChargeSession(
		m.BaseModel.ToDomain(),
		m.Token,
		m.VehicleID,
		m.ChargePointID,
		m.StartTime,
		m.EndTime,
		m.TotalCost,
	)
}

// ChargeSessionModelFromDomain builds the persistence model for a domain session
func ChargeSessionModelFromDomain(s *charging.ChargeSession) *ChargeSessionModel {
	model := &ChargeSessionModel{
		Token:         s.Token,
		VehicleID:     s.VehicleID,
		ChargePointID: s.ChargePointID,
		StartTime:     s.StartTime,
	}
	model.FromDomainBaseEntity(s.BaseEntity)
	if endTime, totalCost, closed := s.Closure(); closed {
		model.EndTime = &endTime
		model.TotalCost = &totalCost
	}
	return model
}
