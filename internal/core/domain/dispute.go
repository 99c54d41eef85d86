package domain

import (
	"time"

	"github.com/google/uuid"
)

// DisputeStatus mirrors the processor-side chargeback lifecycle.
type DisputeStatus string

const (
	DisputeOpened            DisputeStatus = "OPENED"
	DisputeEvidenceSubmitted DisputeStatus = "EVIDENCE_SUBMITTED"
	DisputeExpired           DisputeStatus = "EXPIRED"
	DisputeClosedWon         DisputeStatus = "CLOSED_WON"
	DisputeClosedLost        DisputeStatus = "CLOSED_LOST"
	DisputeClosedAccepted    DisputeStatus = "CLOSED_ACCEPTED"
)

// IsTerminal reports whether the dispute has reached a closed state.
func (s DisputeStatus) IsTerminal() bool {
	switch s {
	case DisputeExpired, DisputeClosedWon, DisputeClosedLost, DisputeClosedAccepted:
		return true
	default:
		return false
	}
}

// Dispute is mirrored from the processor. It does not by itself change
// ledger balance; closure in the "lost" state emits an adjustment.
type Dispute struct {
	ID                  uuid.UUID     `json:"id"`
	TenantID             uuid.UUID     `json:"tenant_id"`
	ChargeID             uuid.UUID     `json:"charge_id"`
	ProcessorDisputeID   string        `json:"processor_dispute_id"`
	AmountCents          int64         `json:"amount_cents"`
	Status               DisputeStatus `json:"status"`
	CreatedAt            time.Time     `json:"created_at"`
	ClosedAt             *time.Time    `json:"closed_at,omitempty"`
}
