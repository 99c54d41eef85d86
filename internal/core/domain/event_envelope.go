package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventEnvelope wraps every outbound domain event published by the AR
// engine (ledger events, GL posting intents, webhook-ingest outcomes) so
// downstream consumers get a stable header regardless of payload shape
// (spec §6.3).
type EventEnvelope struct {
	EventID        uuid.UUID       `json:"event_id"`
	EventType      string          `json:"event_type"`
	OccurredAt     time.Time       `json:"occurred_at"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	SourceModule   string          `json:"source_module"`
	SourceVersion  string          `json:"source_version"`
	CorrelationID  string          `json:"correlation_id"`
	CausationID    *uuid.UUID      `json:"causation_id,omitempty"`
	Payload        json.RawMessage `json:"payload"`
}

// Subject formats the routing key a message-bus publisher would use:
// "<module>.events.<event-type>".
func (e EventEnvelope) Subject() string {
	return fmt.Sprintf("%s.events.%s", e.SourceModule, e.EventType)
}
