package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookRecordStatus is the processing state of an inbound processor
// event. Transitions are forward-only except admin-requested dead-letter
// revival.
type WebhookRecordStatus string

const (
	WebhookReceived  WebhookRecordStatus = "RECEIVED"
	WebhookProcessing WebhookRecordStatus = "PROCESSING"
	WebhookProcessed WebhookRecordStatus = "PROCESSED"
	WebhookFailed    WebhookRecordStatus = "FAILED"
)

// WebhookRecord is keyed unique on (tenant, event_id); the unique
// violation on insert is the dedupe mechanism for C6 — it is checked
// before signature verification runs.
type WebhookRecord struct {
	ID            uuid.UUID           `json:"id"`
	TenantID      uuid.UUID           `json:"tenant_id"`
	EventID       string              `json:"event_id"`
	EventType     string              `json:"event_type"`
	Status        WebhookRecordStatus `json:"status"`
	AttemptCount  int                 `json:"attempt_count"`
	LastAttemptAt *time.Time          `json:"last_attempt_at,omitempty"`
	NextAttemptAt *time.Time          `json:"next_attempt_at,omitempty"`
	DeadAt        *time.Time          `json:"dead_at,omitempty"`
	Payload       []byte              `json:"-"`
	Error         string              `json:"error,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// IsDead reports whether the webhook has exhausted retries.
func (w *WebhookRecord) IsDead() bool {
	return w.DeadAt != nil
}
