package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperatorStatus represents the state of an operator account.
type OperatorStatus string

const (
	OperatorStatusActive      OperatorStatus = "ACTIVE"
	OperatorStatusSuspended   OperatorStatus = "SUSPENDED"
	OperatorStatusDeactivated OperatorStatus = "DEACTIVATED"
)

// Operator is a human (or service) identity that authenticates against
// exactly one tenant's billing realm to drive the REST surface. Operators
// are the AR engine's only notion of "user" — there is no self-service
// signup; accounts are provisioned out of band.
type Operator struct {
	ID           uuid.UUID      `json:"id"`
	TenantID     uuid.UUID      `json:"tenant_id"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	Role         string         `json:"role"`
	Status       OperatorStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsActive returns true if the operator account may authenticate.
func (o *Operator) IsActive() bool {
	return o.Status == OperatorStatusActive
}
