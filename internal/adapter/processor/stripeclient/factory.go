package stripeclient

import (
	"fmt"
	"sync"

	"ar-engine/config"
	"ar-engine/internal/core/ports"
)

// Factory implements ports.ProcessorClientFactory, resolving a
// tenant-scoped Stripe client from the per-tenant secret/webhook-signing
// key maps loaded by config.Load. Clients are constructed lazily and
// cached since client.API holds no per-request state worth discarding.
type Factory struct {
	secretKeys     map[string]string
	webhookSecrets map[string]string

	mu      sync.Mutex
	clients map[string]*Client
}

// NewFactory creates a tenant-scoped Stripe client factory.
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		secretKeys:     cfg.TenantProcessorKeys,
		webhookSecrets: cfg.TenantWebhookSecrets,
		clients:        make(map[string]*Client),
	}
}

// ForTenant resolves (or lazily builds) the Stripe client for tenantSlug.
func (f *Factory) ForTenant(tenantSlug string) (ports.ProcessorClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.clients[tenantSlug]; ok {
		return c, nil
	}

	secretKey, ok := f.secretKeys[tenantSlug]
	if !ok || secretKey == "" {
		return nil, fmt.Errorf("no processor secret key configured for tenant %q", tenantSlug)
	}
	webhookSecret := f.webhookSecrets[tenantSlug]

	c := New(secretKey, webhookSecret)
	f.clients[tenantSlug] = c
	return c, nil
}
