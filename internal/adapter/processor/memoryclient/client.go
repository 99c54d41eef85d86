package memoryclient

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"ar-engine/internal/core/ports"
	"ar-engine/pkg/websign"

	"github.com/google/uuid"
)

// Client is an in-memory ports.ProcessorClient double for tests and the
// processor.sandbox local-development mode, where no real Stripe account
// is configured. It signs events with the same "t=...,v1=..." scheme as
// pkg/websign so webhook-ingestion tests can exercise the real
// verification path end to end.
type Client struct {
	webhookSecret string

	mu        sync.Mutex
	charges   map[string]*ports.ChargeResult
	amounts   map[string]int64
	createdAt map[string]time.Time

	// NextChargeResult and NextChargeErr let callers script the outcome of
	// the next Charge invocation; nil means succeed.
	NextChargeResult *ports.ChargeResult
	NextChargeErr    error
	NextRefundResult *ports.RefundResult
	NextRefundErr    error
}

// New creates a new in-memory processor client double.
func New(webhookSecret string) *Client {
	return &Client{
		webhookSecret: webhookSecret,
		charges:       make(map[string]*ports.ChargeResult),
		amounts:       make(map[string]int64),
		createdAt:     make(map[string]time.Time),
	}
}

// Charge records a deterministic synthetic charge unless a scripted
// result/error has been set via NextChargeResult/NextChargeErr.
func (c *Client) Charge(ctx context.Context, req ports.ProcessorChargeRequest) (*ports.ChargeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.NextChargeErr != nil {
		err := c.NextChargeErr
		c.NextChargeErr = nil
		return nil, err
	}
	if c.NextChargeResult != nil {
		result := c.NextChargeResult
		c.NextChargeResult = nil
		c.charges[req.ReferenceID] = result
		c.amounts[result.ProcessorChargeID] = req.AmountCents
		c.createdAt[result.ProcessorChargeID] = time.Now().UTC()
		return result, nil
	}

	result, ok := c.charges[req.ReferenceID]
	if ok {
		return result, nil
	}

	result = &ports.ChargeResult{
		ProcessorChargeID: "mem_ch_" + uuid.New().String(),
		Status:            "succeeded",
	}
	c.charges[req.ReferenceID] = result
	c.amounts[result.ProcessorChargeID] = req.AmountCents
	c.createdAt[result.ProcessorChargeID] = time.Now().UTC()
	return result, nil
}

// Refund records a deterministic synthetic refund unless a scripted
// result/error has been set.
func (c *Client) Refund(ctx context.Context, req ports.ProcessorRefundRequest) (*ports.RefundResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.NextRefundErr != nil {
		err := c.NextRefundErr
		c.NextRefundErr = nil
		return nil, err
	}
	if c.NextRefundResult != nil {
		result := c.NextRefundResult
		c.NextRefundResult = nil
		return result, nil
	}

	return &ports.RefundResult{
		ProcessorRefundID: "mem_re_" + uuid.New().String(),
		Status:            "succeeded",
	}, nil
}

// VerifyAndDecode parses the raw event payload and checks its HMAC
// signature against webhookSecret, via the same "t=<unix>,v1=<hex>" HMAC
// scheme (pkg/websign) the real processor adapters verify against.
func (c *Client) VerifyAndDecode(rawBody []byte, signatureHeader string) (*ports.ProcessorEvent, error) {
	if err := websign.Verify(c.webhookSecret, rawBody, signatureHeader, websign.DefaultTolerance, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("memoryclient: %w", err)
	}

	var envelope struct {
		EventID   string `json:"event_id"`
		EventType string `json:"event_type"`
	}
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		return nil, fmt.Errorf("memoryclient: decode event envelope: %w", err)
	}

	return &ports.ProcessorEvent{
		EventID:   envelope.EventID,
		EventType: envelope.EventType,
		Payload:   rawBody,
	}, nil
}

// GetPaymentMethod returns synthetic-but-stable payment method metadata for
// any token, so tests exercising the attach round-trip get a deterministic
// fixture instead of trusting caller-supplied values.
func (c *Client) GetPaymentMethod(ctx context.Context, processorToken string) (*ports.PaymentMethodDetails, error) {
	return &ports.PaymentMethodDetails{
		ProcessorToken: processorToken,
		Type:           "card",
		Brand:          "visa",
		Last4:          "4242",
		ExpiryMonth:    12,
		ExpiryYear:     time.Now().UTC().Year() + 2,
	}, nil
}

// GetCharge returns the tracked snapshot for a previously charged
// processor charge ID.
func (c *Client) GetCharge(ctx context.Context, processorChargeID string) (*ports.ChargeSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, result := range c.charges {
		if result.ProcessorChargeID == processorChargeID {
			return &ports.ChargeSnapshot{
				ProcessorChargeID: result.ProcessorChargeID,
				AmountCents:       c.amounts[result.ProcessorChargeID],
				Status:            result.Status,
				CreatedAt:         c.createdAt[result.ProcessorChargeID],
			}, nil
		}
	}
	return nil, fmt.Errorf("memoryclient: charge not found: %s", processorChargeID)
}

// ListCharges returns a snapshot of every tracked charge created at or
// after since.
func (c *Client) ListCharges(ctx context.Context, since time.Time) ([]ports.ChargeSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []ports.ChargeSnapshot
	for _, result := range c.charges {
		createdAt := c.createdAt[result.ProcessorChargeID]
		if createdAt.Before(since) {
			continue
		}
		out = append(out, ports.ChargeSnapshot{
			ProcessorChargeID: result.ProcessorChargeID,
			AmountCents:       c.amounts[result.ProcessorChargeID],
			Status:            result.Status,
			CreatedAt:         createdAt,
		})
	}
	return out, nil
}

// Sign produces the signature header a test harness should attach to a
// synthetic webhook request for rawBody.
func (c *Client) Sign(rawBody []byte) string {
	return websign.Sign(c.webhookSecret, rawBody, time.Now().UTC())
}
