package charging

import (
	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeSessionView is the read model returned for a charge session.
// EndTime and TotalCost are nil while the session is open.
type ChargeSessionView struct {
	ID            uuid.UUID        `json:"id"`
	SessionID     string           `json:"sessionId"`
	StartTime     int64            `json:"startTime"`
	EndTime       *int64           `json:"endTime"`
	TotalCost     *decimal.Decimal `json:"totalCost"`
	VehicleID     uuid.UUID        `json:"vehicleId"`
	ChargePointID uuid.UUID        `json:"chargePointId"`
}

// NewChargeSessionView converts a domain session into its read model
func NewChargeSessionView(session *charging.ChargeSession) *ChargeSessionView {
	view := &ChargeSessionView{
		ID:            session.ID,
		SessionID:     session.Token,
		StartTime:     session.StartTime,
		VehicleID:     session.VehicleID,
		ChargePointID: session.ChargePointID,
	}
	if endTime, totalCost, closed := session.Closure(); closed {
		view.EndTime = &endTime
		view.TotalCost = &totalCost
	}
	return view
}

// NewChargeSessionViews converts a slice of domain sessions, keeping order
func NewChargeSessionViews(sessions []*charging.ChargeSession) []*ChargeSessionView {
	views := make([]*ChargeSessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, NewChargeSessionView(session))
	}
	return views
}

// VehicleView is the read model returned for a vehicle
type VehicleView struct {
	ID                  uuid.UUID `json:"id"`
	LicensePlate        string    `json:"licensePlate"`
	Status              string    `json:"status"`
	BatteryCapacityKwh  float64   `json:"batteryCapacityKwh"`
	BatteryLevelPercent float64   `json:"batteryLevelPercent"`
}

// NewVehicleView converts a domain vehicle into its read model
func NewVehicleView(vehicle *charging.Vehicle) *VehicleView {
	return &VehicleView{
		ID:                  vehicle.ID,
		LicensePlate:        vehicle.LicensePlate,
		Status:              string(vehicle.Status),
		BatteryCapacityKwh:  vehicle.BatteryCapacityKwh,
		BatteryLevelPercent: vehicle.BatteryLevelPercent,
	}
}

// CreateVehicleRequest carries the data needed to register a vehicle
type CreateVehicleRequest struct {
	LicensePlate        string  `json:"licensePlate" binding:"required"`
	BatteryCapacityKwh  float64 `json:"batteryCapacityKwh" binding:"required,gt=0"`
	BatteryLevelPercent float64 `json:"batteryLevelPercent" binding:"gte=0,lte=100"`
}

// ChargePointView is the read model returned for a charge point
type ChargePointView struct {
	ID                uuid.UUID `json:"id"`
	ManufacturerModel string    `json:"manufacturerModel"`
	ChargingPowerKw   float64   `json:"chargingPowerKw"`
	Latitude          string    `json:"latitude"`
	Longitude         string    `json:"longitude"`
	Status            string    `json:"status"`
}

// NewChargePointView converts a domain charge point into its read model
func NewChargePointView(point *charging.ChargePoint) *ChargePointView {
	return &ChargePointView{
		ID:                point.ID,
		ManufacturerModel: point.ManufacturerModel,
		ChargingPowerKw:   point.ChargingPowerKw,
		Latitude:          point.Latitude,
		Longitude:         point.Longitude,
		Status:            string(point.Status),
	}
}

// CreateChargePointRequest carries the data needed to register a charge point
type CreateChargePointRequest struct {
	ManufacturerModel string  `json:"manufacturerModel" binding:"required"`
	ChargingPowerKw   float64 `json:"chargingPowerKw" binding:"required,gt=0"`
	Latitude          string  `json:"latitude"`
	Longitude         string  `json:"longitude"`
}
