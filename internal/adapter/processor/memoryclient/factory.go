package memoryclient

import (
	"sync"

	"ar-engine/internal/core/ports"
)

// Factory implements ports.ProcessorClientFactory by handing each tenant
// slug its own in-memory client, created on first use. Every client signs
// webhook fixtures with the same secret.
type Factory struct {
	secret string

	mu      sync.Mutex
	clients map[string]*Client
}

// NewFactory creates an in-memory processor client factory for tests and
// processor.sandbox local development.
func NewFactory(secret string) *Factory {
	return &Factory{secret: secret, clients: make(map[string]*Client)}
}

// ForTenant returns (creating if necessary) the in-memory client for
// tenantSlug.
func (f *Factory) ForTenant(tenantSlug string) (ports.ProcessorClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[tenantSlug]; ok {
		return c, nil
	}
	c := New(f.secret)
	f.clients[tenantSlug] = c
	return c, nil
}
