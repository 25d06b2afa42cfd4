package charging

import (
	"github.com/chargehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Charging domain error codes
const (
	CodeVehicleNotFound       = "RECORD_NOT_FOUND_FOR_VEHICLE"
	CodeChargePointNotFound   = "RECORD_NOT_FOUND_FOR_CHARGE_POINT"
	CodeChargeSessionNotFound = "RECORD_NOT_FOUND_FOR_CHARGE_SESSION"
	CodeSaveSessionIncomplete = "SAVE_SESSION_INCOMPLETE"
	CodeInvalidSortParameter  = "INVALID_SORT_PARAMETER"
)

// Charging domain errors without an entity id
var (
	ErrSaveSessionIncomplete = shared.NewDomainError(CodeSaveSessionIncomplete, "Session could not be saved. Both a vehicle id and a charge point id are required")
	ErrInvalidSortParameter  = shared.NewDomainError(CodeInvalidSortParameter, "Sort parameter is not supported. Allowed values are startTime, -startTime, endTime and -endTime")
)

// NewVehicleNotFound reports that no vehicle exists with the given id
func NewVehicleNotFound(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainErrorf(CodeVehicleNotFound, "No record found for vehicle with id %s", id)
}

// NewChargePointNotFound reports that no charge point exists with the given id
func NewChargePointNotFound(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainErrorf(CodeChargePointNotFound, "No record found for charge point with id %s", id)
}

// NewChargeSessionNotFound reports that no charge session exists with the given id
func NewChargeSessionNotFound(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainErrorf(CodeChargeSessionNotFound, "No record found for charge session with id %s", id)
}
