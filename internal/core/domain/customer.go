package domain

import (
	"time"

	"github.com/google/uuid"
)

// DelinquencyState tracks a customer's collections status.
type DelinquencyState string

const (
	DelinquencyNone       DelinquencyState = "NONE"
	DelinquencyDelinquent DelinquencyState = "DELINQUENT"
	DelinquencyGrace      DelinquencyState = "GRACE"
	DelinquencySuspended  DelinquencyState = "SUSPENDED"
)

// AgingBuckets partitions outstanding receivables by days past due.
type AgingBuckets struct {
	Current int64 `json:"current"`
	Days30  int64 `json:"days_30"`
	Days60  int64 `json:"days_60"`
	Days90  int64 `json:"days_90"`
	Days90P int64 `json:"days_90_plus"`
}

// Sum returns the total of all buckets; must equal ARBalanceCents.
func (b AgingBuckets) Sum() int64 {
	return b.Current + b.Days30 + b.Days60 + b.Days90 + b.Days90P
}

// Customer is the billing identity within a tenant.
type Customer struct {
	ID                      uuid.UUID         `json:"id"`
	TenantID                uuid.UUID         `json:"tenant_id"`
	ExternalCustomerID      string            `json:"external_customer_id"`
	Email                   string            `json:"email"`
	DisplayName             string            `json:"display_name"`
	DefaultPaymentMethodID  *uuid.UUID        `json:"default_payment_method_id,omitempty"`
	ARBalanceCents          int64             `json:"ar_balance_cents"`
	Aging                   AgingBuckets      `json:"aging"`
	Delinquency             DelinquencyState  `json:"delinquency"`
	RetryCount              int               `json:"retry_count"`
	NextRetryAt             *time.Time        `json:"next_retry_at,omitempty"`
	GracePeriodEnd          *time.Time        `json:"grace_period_end,omitempty"`
	CreatedAt               time.Time         `json:"created_at"`
	UpdatedAt               time.Time         `json:"updated_at"`
	DeletedAt               *time.Time        `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the customer has been soft-deleted.
func (c *Customer) IsDeleted() bool {
	return c.DeletedAt != nil
}

// IsSuspended reports whether collections has suspended this customer.
func (c *Customer) IsSuspended() bool {
	return c.Delinquency == DelinquencySuspended
}
