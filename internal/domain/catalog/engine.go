// internal/domain/catalog/engine.go
package catalog

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/product"
)

// defaultPageSize matches the backend's default listing limit
const defaultPageSize = 12

// Fetcher fetches one page of products for a filter set. Implemented by the
// API client; tests substitute fakes.
type Fetcher interface {
	GetProducts(ctx context.Context, filter product.Filter) (*product.Page, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, filter product.Filter) (*product.Page, error)

// GetProducts implements Fetcher
func (f FetcherFunc) GetProducts(ctx context.Context, filter product.Filter) (*product.Page, error) {
	return f(ctx, filter)
}

// State is a snapshot of the engine's observable fields. Fetch faults are
// surfaced here as Err, never returned to the triggering caller.
type State struct {
	Products    []product.Product
	Loading     bool
	Err         error
	HasMore     bool
	CurrentPage int
}

// Engine fetches filtered, sorted, paginated product pages from the backend
// and accumulates load-more results. Each completed fetch carries the request
// sequence number it was issued under; completions from a superseded request
// are discarded, so a slow response can never overwrite a newer one. Issuing
// a new load also cancels the previous in-flight fetch.
type Engine struct {
	fetcher Fetcher
	logger  *logrus.Logger

	mu          sync.Mutex
	products    []product.Product
	loading     bool
	err         error
	hasMore     bool
	currentPage int
	filters     product.Filter
	seq         uint64
	requestCtx  context.Context
	cancel      context.CancelFunc
}

// NewEngine creates a query engine with the given initial filter set
func NewEngine(fetcher Fetcher, initialFilters product.Filter, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	initialFilters.Normalize(defaultPageSize)

	return &Engine{
		fetcher: fetcher,
		logger:  logger,
		filters: initialFilters,
		hasMore: true,
	}
}

// LoadProducts replaces the active filter set (keeping the last-used filters
// when filters is nil), resets the page to 1 and replaces the accumulated
// products with the fetched page. On failure the fault is stored in the
// returned state's Err and the previously loaded products are left untouched.
func (e *Engine) LoadProducts(ctx context.Context, filters *product.Filter) State {
	e.mu.Lock()
	if filters != nil {
		f := *filters
		f.Normalize(defaultPageSize)
		e.filters = f
	}
	request := e.filters
	request.Page = 1

	seq := e.beginRequestLocked(ctx)
	e.currentPage = 1
	fctx := e.requestCtx
	e.mu.Unlock()

	page, err := e.fetcher.GetProducts(fctx, request)

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.seq {
		// Superseded while in flight; a newer request owns the state now.
		return e.snapshotLocked()
	}

	e.loading = false
	if err != nil {
		e.err = err
		e.logger.WithError(err).WithField("page", 1).Warn("product load failed")
		return e.snapshotLocked()
	}

	e.products = append([]product.Product(nil), page.Products...)
	e.hasMore = page.HasMore(1, request.Limit)
	return e.snapshotLocked()
}

// LoadMore fetches the next page with the current active filters and appends
// the results. No-op while a load is in progress or when no further pages
// remain.
func (e *Engine) LoadMore(ctx context.Context) State {
	e.mu.Lock()
	if !e.hasMore || e.loading {
		defer e.mu.Unlock()
		return e.snapshotLocked()
	}

	nextPage := e.currentPage + 1
	request := e.filters
	request.Page = nextPage

	seq := e.beginRequestLocked(ctx)
	fctx := e.requestCtx
	e.mu.Unlock()

	page, err := e.fetcher.GetProducts(fctx, request)

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.seq {
		return e.snapshotLocked()
	}

	e.loading = false
	if err != nil {
		e.err = err
		e.logger.WithError(err).WithField("page", nextPage).Warn("product load failed")
		return e.snapshotLocked()
	}

	e.products = append(e.products, page.Products...)
	e.currentPage = nextPage
	e.hasMore = page.HasMore(nextPage, request.Limit)
	return e.snapshotLocked()
}

// Refresh re-issues page 1 with the last-applied filter set, replacing the
// accumulated products
func (e *Engine) Refresh(ctx context.Context) State {
	return e.LoadProducts(ctx, nil)
}

// State returns a snapshot of the engine's observable fields
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Filters returns a copy of the active filter set
func (e *Engine) Filters() product.Filter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filters
}

// Close cancels any in-flight fetch. The engine stays usable; Close exists so
// a consumer can release the engine's fetch when its own scope ends.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// beginRequestLocked advances the request sequence, marks the engine loading,
// clears the stored fault and rebinds the in-flight fetch context. Caller
// must hold the lock.
func (e *Engine) beginRequestLocked(ctx context.Context) uint64 {
	e.seq++
	e.loading = true
	e.err = nil

	if e.cancel != nil {
		e.cancel()
	}
	fctx, cancel := context.WithCancel(ctx)
	e.requestCtx = fctx
	e.cancel = cancel

	return e.seq
}

func (e *Engine) snapshotLocked() State {
	products := make([]product.Product, len(e.products))
	copy(products, e.products)

	return State{
		Products:    products,
		Loading:     e.loading,
		Err:         e.err,
		HasMore:     e.hasMore,
		CurrentPage: e.currentPage,
	}
}
