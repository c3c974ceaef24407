// internal/domain/catalog/provider.go
package catalog

import (
	"context"

	"github.com/your-org/storefront/internal/domain/product"
)

// Provider composes the query engine behind the single consumption contract
// used by list and detail views. It adds no logic beyond wiring.
type Provider struct {
	engine *Engine
}

// NewProvider creates a provider over the given engine. A nil engine is a
// programming error.
func NewProvider(engine *Engine) *Provider {
	if engine == nil {
		panic("catalog: NewProvider called with nil engine")
	}
	return &Provider{engine: engine}
}

// State returns the engine's current snapshot
func (p *Provider) State() State {
	return p.engine.State()
}

// LoadProducts delegates to the engine
func (p *Provider) LoadProducts(ctx context.Context, filters *product.Filter) State {
	return p.engine.LoadProducts(ctx, filters)
}

// LoadMore delegates to the engine
func (p *Provider) LoadMore(ctx context.Context) State {
	return p.engine.LoadMore(ctx)
}

// Refresh delegates to the engine
func (p *Provider) Refresh(ctx context.Context) State {
	return p.engine.Refresh(ctx)
}

// Close releases the engine's in-flight fetch when the provider scope ends
func (p *Provider) Close() {
	p.engine.Close()
}

type providerKey struct{}

// WithProvider establishes a provider scope on the context
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider established on the context. Calling it
// outside a provider scope is a programming error and panics rather than
// returning a recoverable fault.
func FromContext(ctx context.Context) *Provider {
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok {
		panic("catalog: FromContext must be called within a provider scope")
	}
	return p
}
