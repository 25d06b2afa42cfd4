package charging

import (
	"context"

	"github.com/google/uuid"
)

// ActiveSessionIndex tracks which charge sessions are currently open so
// operational tooling can look them up without scanning the database.
//
// The index is advisory. Failures to update it are logged and never fail
// the charging operation; the database remains the source of truth.
type ActiveSessionIndex interface {
	// Add records a session as open
	Add(ctx context.Context, session *ChargeSessionView) error

	// Remove drops a session from the open set
	Remove(ctx context.Context, id uuid.UUID) error
}
