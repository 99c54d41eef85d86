package ports

import (
	"context"
	"time"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
)

// ChargeResult is the processor's response to a charge attempt.
type ChargeResult struct {
	ProcessorChargeID string
	Status            string // succeeded, pending, failed
	FailureCode       string
	FailureMessage    string
}

// RefundResult is the processor's response to a refund attempt.
type RefundResult struct {
	ProcessorRefundID string
	Status            string
}

// ProcessorCharge requests a charge against a stored payment method token.
type ProcessorChargeRequest struct {
	ProcessorToken string
	AmountCents    int64
	Currency       string
	ReferenceID    string // idempotency key passed through to the processor
}

// ProcessorRefundRequest requests a refund of a previously settled charge.
type ProcessorRefundRequest struct {
	ProcessorChargeID string
	AmountCents       int64
	ReferenceID       string
}

// ProcessorEvent is the decoded, verified shape of an inbound webhook
// event, independent of which concrete processor produced it.
type ProcessorEvent struct {
	EventID   string
	EventType string
	Payload   []byte
}

// PaymentMethodDetails is the processor's canonical view of a stored
// payment method token, fetched as part of the attach round-trip so the
// engine never persists client-supplied card metadata unverified.
type PaymentMethodDetails struct {
	ProcessorToken string
	Type           string
	Brand          string
	Last4          string
	ExpiryMonth    int
	ExpiryYear     int
}

// ChargeSnapshot is the processor's current view of a charge, used by
// reconciliation to diff the processor's ledger against the local one.
type ChargeSnapshot struct {
	ProcessorChargeID string
	AmountCents       int64
	Status            string
	CreatedAt         time.Time
}

// ProcessorClient is the boundary the AR engine treats as opaque (C4): it
// knows how to attempt charges, issue refunds, fetch payment method and
// charge state, and verify/decode inbound webhook payloads for one
// processor account. Concrete implementations live under
// internal/adapter/processor.
type ProcessorClient interface {
	Charge(ctx context.Context, req ProcessorChargeRequest) (*ChargeResult, error)
	Refund(ctx context.Context, req ProcessorRefundRequest) (*RefundResult, error)
	VerifyAndDecode(rawBody []byte, signatureHeader string) (*ProcessorEvent, error)
	GetPaymentMethod(ctx context.Context, processorToken string) (*PaymentMethodDetails, error)
	GetCharge(ctx context.Context, processorChargeID string) (*ChargeSnapshot, error)
	ListCharges(ctx context.Context, since time.Time) ([]ChargeSnapshot, error)
}

// ProcessorClientFactory resolves the configured ProcessorClient for a
// tenant, since each tenant authenticates against the processor with its
// own account/secret pair.
type ProcessorClientFactory interface {
	ForTenant(tenantSlug string) (ProcessorClient, error)
}

// GLPostResult is the external GL service's verdict on a posted journal
// intent.
type GLPostResult struct {
	Accepted bool
	Reason   string // populated when Accepted is false
}

// GLPublisher is the transport boundary to the external general-ledger
// service (spec §6.5). Implementations deliver a balanced journal intent
// and report whether the GL service accepted or rejected it; they never
// decide accounting correctness themselves.
type GLPublisher interface {
	Post(ctx context.Context, tenantID uuid.UUID, entry domain.GLPostingQueueEntry) (*GLPostResult, error)
}
