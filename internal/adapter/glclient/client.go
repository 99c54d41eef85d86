package glclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"

	"github.com/google/uuid"
)

// HTTPClient is the subset of *http.Client the GL publisher needs,
// generalized from the teacher's webhook_service.go HTTPClient seam so
// tests can substitute a stub transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.GLPublisher as a single HTTP POST per journal
// intent. The at-least-once retry ladder lives one layer up in
// gl_posting_service.go / the GL posting outbox — this type performs one
// delivery attempt and reports its outcome.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

// New creates a new GL service HTTP client.
func New(baseURL string, httpClient HTTPClient) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type postingRequest struct {
	EventID       uuid.UUID            `json:"event_id"`
	TenantID      uuid.UUID            `json:"tenant_id"`
	SourceDocType string                `json:"source_doc_type"`
	SourceDocID   uuid.UUID            `json:"source_doc_id"`
	Intent        domain.JournalIntent `json:"intent"`
}

type postingResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
}

// Post delivers a balanced journal intent to the GL service's posting
// endpoint and returns its accept/reject verdict.
func (c *Client) Post(ctx context.Context, tenantID uuid.UUID, entry domain.GLPostingQueueEntry) (*ports.GLPostResult, error) {
	if !entry.Intent.Balanced() {
		return nil, fmt.Errorf("glclient: refusing to post unbalanced journal intent for event %s", entry.EventID)
	}

	body, err := json.Marshal(postingRequest{
		EventID:       entry.EventID,
		TenantID:      tenantID,
		SourceDocType: entry.SourceDocType,
		SourceDocID:   entry.SourceDocID,
		Intent:        entry.Intent,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal gl posting request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/postings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build gl posting request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", entry.EventID.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gl posting request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("gl posting request: server error %d", resp.StatusCode)
	}

	var decoded postingResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode gl posting response: %w", err)
	}

	return &ports.GLPostResult{Accepted: decoded.Accepted, Reason: decoded.Reason}, nil
}

// DefaultTimeout is the bounded deadline applied to GL posting calls per
// spec §5's 30s default processor/external-call timeout.
const DefaultTimeout = 30 * time.Second
