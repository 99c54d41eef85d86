package domain

import (
	"time"

	"github.com/google/uuid"
)

// TenantStatus represents the state of a billing realm.
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "ACTIVE"
	TenantStatusSuspended TenantStatus = "SUSPENDED"
)

// Tenant is an independent billing realm. Every other entity in the system
// is scoped to exactly one tenant; identity/auth beyond this anchor is out
// of scope for the core.
type Tenant struct {
	ID                 uuid.UUID    `json:"id"`
	Slug               string       `json:"slug"`
	ProcessorAccountID string       `json:"-"`
	Status             TenantStatus `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// IsActive returns true if the tenant may transact.
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}
