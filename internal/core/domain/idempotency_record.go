package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecord backs the HTTP idempotency-key layer of C3. Unique on
// (tenant, key). RequestHash is the RFC 8785 canonical-JSON SHA-256 digest
// of the original request body (see pkg/idempotency).
type IdempotencyRecord struct {
	TenantID     uuid.UUID `json:"tenant_id"`
	Key          string    `json:"key"`
	RequestHash  string    `json:"request_hash"`
	StatusCode   int       `json:"status_code"`
	ResponseBody []byte    `json:"response_body"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}
