package main

import (
	"context"
	"time"

	"ar-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// startBackgroundWorkers launches the periodic jobs spec §5 requires
// alongside the HTTP server: webhook/payment/GL retry sweeps, the
// subscription due-invoice scan and a daily per-tenant reconciliation
// sweep. Each runs on its own ticker so a slow
// pass in one never delays another. The returned channel stops every
// worker when closed.
func startBackgroundWorkers(
	ctx context.Context,
	webhookSvc ports.WebhookIngestService,
	paymentRetrySvc ports.PaymentRetryService,
	glSvc ports.GLPostingService,
	reconciliationSvc ports.ReconciliationService,
	tenantRepo ports.TenantRepository,
	subscriptionSvc ports.SubscriptionService,
	log zerolog.Logger,
) chan struct{} {
	stop := make(chan struct{})

	go runTicker(stop, 30*time.Second, func() {
		asOf := time.Now().UTC()
		n, err := webhookSvc.RetryDue(ctx, asOf)
		if err != nil {
			log.Error().Err(err).Msg("webhook retry sweep failed")
			return
		}
		if n > 0 {
			log.Info().Int("count", n).Msg("webhook retry sweep processed records")
		}
	})

	go runTicker(stop, time.Minute, func() {
		asOf := time.Now().UTC()
		n, err := paymentRetrySvc.RetryDue(ctx, asOf)
		if err != nil {
			log.Error().Err(err).Msg("payment retry sweep failed")
			return
		}
		if n > 0 {
			log.Info().Int("count", n).Msg("payment retry sweep processed customers")
		}
	})

	go runTicker(stop, 30*time.Second, func() {
		asOf := time.Now().UTC()
		n, err := glSvc.RetryDue(ctx, asOf)
		if err != nil {
			log.Error().Err(err).Msg("GL posting retry sweep failed")
			return
		}
		if n > 0 {
			log.Info().Int("count", n).Msg("GL posting retry sweep processed entries")
		}
	})

	go runTicker(stop, time.Hour, func() {
		n, err := subscriptionSvc.GenerateDueInvoices(ctx, time.Now().UTC())
		if err != nil {
			log.Error().Err(err).Msg("subscription due-invoice scan failed")
			return
		}
		if n > 0 {
			log.Info().Int("count", n).Msg("subscriptions due for invoicing")
		}
	})

	go runTicker(stop, 24*time.Hour, func() {
		tenants, err := tenantRepo.ListActive(ctx)
		if err != nil {
			log.Error().Err(err).Msg("reconciliation sweep: failed to list tenants")
			return
		}
		for _, tenant := range tenants {
			if _, err := reconciliationSvc.RunReconciliation(ctx, tenant.ID, 24*time.Hour); err != nil {
				log.Error().Err(err).Str("tenant_id", tenant.ID.String()).Msg("reconciliation run failed")
			}
		}
	})

	return stop
}

// runTicker invokes fn immediately and then every interval until stop is
// closed.
func runTicker(stop <-chan struct{}, interval time.Duration, fn func()) {
	fn()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fn()
		case <-stop:
			return
		}
	}
}
