package stripeclient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ar-engine/internal/core/ports"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Client implements ports.ProcessorClient against the Stripe API for a
// single tenant's Stripe account, grounded on the
// ksingh-scogo-crosslogic-ai-iaas control-plane's webhook.ConstructEvent
// usage and stripe-go's paymentintent/refund resource clients.
type Client struct {
	sc              *client.API
	webhookSecret   string
	idempotencyKeys bool
}

// New creates a Stripe-backed ProcessorClient scoped to one tenant's
// secret key and webhook signing secret.
func New(secretKey, webhookSecret string) *Client {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Client{sc: sc, webhookSecret: webhookSecret}
}

// Charge attempts a payment intent confirmation against a previously
// attached payment method. The reference ID is passed through as the
// Stripe idempotency key so a retried request with the same reference
// never double-charges at the processor boundary.
func (c *Client) Charge(ctx context.Context, req ports.ProcessorChargeRequest) (*ports.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.ProcessorToken),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
	}
	params.SetIdempotencyKey(req.ReferenceID)
	params.Context = ctx

	pi, err := c.sc.PaymentIntents.New(params)
	if err != nil {
		return processorError(err)
	}

	result := &ports.ChargeResult{
		ProcessorChargeID: pi.ID,
		Status:            mapPaymentIntentStatus(pi.Status),
	}
	if pi.LastPaymentError != nil {
		result.FailureCode = string(pi.LastPaymentError.Code)
		result.FailureMessage = pi.LastPaymentError.Msg
	}
	return result, nil
}

// Refund issues a refund against a previously settled charge.
func (c *Client) Refund(ctx context.Context, req ports.ProcessorRefundRequest) (*ports.RefundResult, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.ProcessorChargeID),
		Amount:        stripe.Int64(req.AmountCents),
	}
	params.SetIdempotencyKey(req.ReferenceID)
	params.Context = ctx

	rf, err := c.sc.Refunds.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe refund: %w", err)
	}

	return &ports.RefundResult{
		ProcessorRefundID: rf.ID,
		Status:            string(rf.Status),
	}, nil
}

// VerifyAndDecode verifies the Stripe-Signature header and returns the
// decoded event envelope. Signature verification is delegated entirely to
// stripe-go's webhook package rather than reimplemented.
func (c *Client) VerifyAndDecode(rawBody []byte, signatureHeader string) (*ports.ProcessorEvent, error) {
	event, err := webhook.ConstructEvent(rawBody, signatureHeader, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("stripe signature verification: %w", err)
	}
	return &ports.ProcessorEvent{
		EventID:   event.ID,
		EventType: string(event.Type),
		Payload:   event.Data.Raw,
	}, nil
}

// GetPaymentMethod fetches the processor's canonical view of a stored
// payment method token, used by the attach round-trip (spec §4.5) so the
// engine never trusts client-supplied card metadata unverified.
func (c *Client) GetPaymentMethod(ctx context.Context, processorToken string) (*ports.PaymentMethodDetails, error) {
	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	pm, err := c.sc.PaymentMethods.Get(processorToken, params)
	if err != nil {
		return nil, fmt.Errorf("stripe get payment method: %w", err)
	}

	details := &ports.PaymentMethodDetails{
		ProcessorToken: pm.ID,
		Type:           string(pm.Type),
	}
	if pm.Card != nil {
		details.Brand = string(pm.Card.Brand)
		details.Last4 = pm.Card.Last4
		details.ExpiryMonth = int(pm.Card.ExpMonth)
		details.ExpiryYear = int(pm.Card.ExpYear)
	}
	return details, nil
}

// GetCharge fetches the processor's current view of a payment intent, used
// by reconciliation to diff a single charge against the local record.
func (c *Client) GetCharge(ctx context.Context, processorChargeID string) (*ports.ChargeSnapshot, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.sc.PaymentIntents.Get(processorChargeID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe get charge: %w", err)
	}
	return &ports.ChargeSnapshot{
		ProcessorChargeID: pi.ID,
		AmountCents:       pi.Amount,
		Status:            mapPaymentIntentStatus(pi.Status),
		CreatedAt:         time.Unix(pi.Created, 0).UTC(),
	}, nil
}

// ListCharges lists payment intents created at or after since, the remote
// side of the reconciliation snapshot diff.
func (c *Client) ListCharges(ctx context.Context, since time.Time) ([]ports.ChargeSnapshot, error) {
	params := &stripe.PaymentIntentListParams{}
	params.Context = ctx
	params.Filters.AddFilter("created", "gte", strconv.FormatInt(since.Unix(), 10))

	var out []ports.ChargeSnapshot
	iter := c.sc.PaymentIntents.List(params)
	for iter.Next() {
		pi := iter.PaymentIntent()
		out = append(out, ports.ChargeSnapshot{
			ProcessorChargeID: pi.ID,
			AmountCents:       pi.Amount,
			Status:            mapPaymentIntentStatus(pi.Status),
			CreatedAt:         time.Unix(pi.Created, 0).UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("stripe list charges: %w", err)
	}
	return out, nil
}

func mapPaymentIntentStatus(status stripe.PaymentIntentStatus) string {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return "succeeded"
	case stripe.PaymentIntentStatusProcessing:
		return "pending"
	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation:
		return "pending"
	default:
		return "failed"
	}
}

func processorError(err error) (*ports.ChargeResult, error) {
	if stripeErr, ok := err.(*stripe.Error); ok {
		return &ports.ChargeResult{
			Status:         "failed",
			FailureCode:    string(stripeErr.Code),
			FailureMessage: stripeErr.Msg,
		}, nil
	}
	return nil, fmt.Errorf("stripe charge: %w", err)
}
