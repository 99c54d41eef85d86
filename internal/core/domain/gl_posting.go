package domain

import (
	"time"

	"github.com/google/uuid"
)

// GLQueueStatus tracks the outcome of a posting intent round-trip with the
// external GL service.
type GLQueueStatus string

const (
	GLQueuePending  GLQueueStatus = "PENDING"
	GLQueueAccepted GLQueueStatus = "ACCEPTED"
	GLQueueRejected GLQueueStatus = "REJECTED"
)

// JournalLine is one side of a double-entry posting.
type JournalLine struct {
	AccountCode  string `json:"account_code"`
	DebitCents   int64  `json:"debit_cents"`
	CreditCents  int64  `json:"credit_cents"`
}

// JournalIntent is a balanced journal entry awaiting GL acknowledgement.
// Σ debits must equal Σ credits before it is ever queued; a mismatch is a
// programmer error, never an external failure (spec §4.9).
type JournalIntent struct {
	PostingDate   time.Time     `json:"posting_date"`
	Currency      string        `json:"currency"`
	SourceDocType string        `json:"source_doc_type"`
	SourceDocID   uuid.UUID     `json:"source_doc_id"`
	Lines         []JournalLine `json:"lines"`
}

// Balanced reports whether the intent's debits and credits match.
func (j JournalIntent) Balanced() bool {
	var debits, credits int64
	for _, l := range j.Lines {
		debits += l.DebitCents
		credits += l.CreditCents
	}
	return debits == credits && len(j.Lines) >= 2
}

// GLPostingQueueEntry tracks at-least-once delivery of a journal intent to
// the external GL service.
type GLPostingQueueEntry struct {
	ID            uuid.UUID     `json:"id"`
	TenantID      uuid.UUID     `json:"tenant_id"`
	EventID       uuid.UUID     `json:"event_id"`
	SourceDocType string        `json:"source_doc_type"`
	SourceDocID   uuid.UUID     `json:"source_doc_id"`
	Intent        JournalIntent `json:"intent"`
	Status        GLQueueStatus `json:"status"`
	Reason        string        `json:"reason,omitempty"`
	AttemptCount  int           `json:"attempt_count"`
	NextAttemptAt *time.Time    `json:"next_attempt_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ARTrigger maps an AR ledger event to the default DR/CR account codes per
// spec §4.9. Account-code mapping is itself tenant-configurable and owned
// by the GL service; these are the defaults the core ships.
var ARTrigger = map[LedgerEventType]struct{ DR, CR string }{
	LedgerEventInvoiceIssued:  {DR: "RECEIVABLE", CR: "REVENUE"},
	LedgerEventPaymentApplied: {DR: "CASH", CR: "RECEIVABLE"},
	LedgerEventCreditIssued:   {DR: "SALES_RETURNS", CR: "RECEIVABLE"},
	LedgerEventWriteOff:       {DR: "BAD_DEBT", CR: "RECEIVABLE"},
	LedgerEventRefundRecorded: {DR: "SALES_RETURNS", CR: "CASH"},
	LedgerEventDisputeLost:    {DR: "DISPUTE_LOSS", CR: "RECEIVABLE"},
}
