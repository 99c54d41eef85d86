package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus mirrors the processor's subscription lifecycle so the
// AR engine can reconcile billing-period boundaries without re-deriving
// them locally.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

// Subscription is a read-mostly mirror of processor subscription state,
// used to correlate invoices to billing periods and to drive the
// cancel-at-period-end reconciliation rule (spec §9 open question).
type Subscription struct {
	ID                    uuid.UUID          `json:"id"`
	TenantID              uuid.UUID          `json:"tenant_id"`
	CustomerID            uuid.UUID          `json:"customer_id"`
	PlanCode              string             `json:"plan_code"`
	Status                SubscriptionStatus `json:"status"`
	CurrentPeriodStart    time.Time          `json:"current_period_start"`
	CurrentPeriodEnd      time.Time          `json:"current_period_end"`
	CancelAtPeriodEnd     bool               `json:"cancel_at_period_end"`
	ProcessorSubscriptionID string           `json:"processor_subscription_id"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// IsActive reports whether the subscription should still generate
// invoices. A subscription flagged CancelAtPeriodEnd remains active until
// its current period actually elapses.
func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionActive
}
